package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"inventory-sync/core/catalog"
	"inventory-sync/core/config"
	"inventory-sync/core/database"
	"inventory-sync/core/logger"
	"inventory-sync/core/reconcile"
	"inventory-sync/core/storage"
	"inventory-sync/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncAdapter string
	syncVendor  string
)

// syncCmd performs a one-shot reconciliation pass without the server.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one reconciliation pass across configured vendors",
	Long: `Run one reconciliation pass: fetch every configured vendor feed,
reconcile it against the catalog, and print the per-vendor summaries.

Examples:
  # Reconcile every configured vendor
  inventory-sync sync

  # Only wholecell-class vendors
  inventory-sync sync --adapter wholecell`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncAdapter, "adapter", "", "Limit the run to one adapter class (generic or wholecell)")
	syncCmd.Flags().StringVar(&syncVendor, "vendor", "", "Limit the run to one vendor id")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting reconciliation run")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to catalog database: %w", err)
	}

	store := catalog.NewStore(db)
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	var images *catalog.ImageFinder
	if client, err := storage.NewClient(cfg.Storage); err != nil {
		l.Warn("Optional storage connection failed, product images disabled", zap.Error(err))
	} else {
		images = catalog.NewImageFinder(client, cfg.Storage.Bucket, cfg.Sync.ImagePrefix)
	}

	vendors, err := config.LoadVendors(cfg.Sync.VendorsFile)
	if err != nil {
		return fmt.Errorf("failed to load vendors file: %w", err)
	}
	if syncVendor != "" {
		vendors = filterVendors(vendors, syncVendor)
		if len(vendors) == 0 {
			return fmt.Errorf("no configured vendor with id %q", syncVendor)
		}
	}

	resolver := catalog.NewResolver(store, images, l)
	pipeline := reconcile.NewPipeline(resolver, store, l)
	orchestrator := reconcile.NewOrchestrator(pipeline, l)
	service := inventory.NewService(orchestrator, store, vendors, l)

	summaries, err := service.Sync(ctx, syncAdapter)
	if err != nil {
		return err
	}

	printSummaries(l, summaries)

	// The run summary goes to stdout as JSON so it can be piped.
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summaries)
}

func filterVendors(vendors []config.Vendor, id string) []config.Vendor {
	filtered := make([]config.Vendor, 0, 1)
	for _, vendor := range vendors {
		if vendor.ID == id {
			filtered = append(filtered, vendor)
		}
	}
	return filtered
}

// printSummaries logs each vendor's outcome through the structured logger.
func printSummaries(l *zap.Logger, summaries []reconcile.VendorSummary) {
	for _, s := range summaries {
		if s.Error != "" {
			l.Error("Vendor reconciliation failed",
				zap.String("vendor", s.VendorID),
				zap.String("error", s.Error),
				zap.Int("created", s.NewRecords),
				zap.Int("updated", s.UpdatedRecords),
				zap.Int("zeroed", s.MarkedOutOfStock),
			)
			continue
		}
		l.Info("Vendor reconciliation finished",
			zap.String("vendor", s.VendorID),
			zap.Int("fetched", s.TotalFetched),
			zap.Int("groups", s.GroupsProcessed),
			zap.Int("skipped", s.SkippedProducts),
			zap.Int("created", s.NewRecords),
			zap.Int("updated", s.UpdatedRecords),
			zap.Int("zeroed", s.MarkedOutOfStock),
			zap.Int("operations", s.TotalOperations),
		)
	}
}
