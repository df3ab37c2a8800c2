package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"inventory-sync/core/catalog"
	"inventory-sync/core/config"
	"inventory-sync/core/database"
	"inventory-sync/core/loader"
	"inventory-sync/core/logger"
	"inventory-sync/core/middleware/auth"
	"inventory-sync/core/middleware/rayid"
	"inventory-sync/core/reconcile"
	"inventory-sync/core/storage"

	"inventory-sync/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "inventory-sync/docs/swagger"
)

// @title Inventory Sync API
// @version 1.0
// @description API for reconciling vendor inventory feeds into the catalog.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory sync server",
	Long:  `Starts the HTTP server exposing the reconciliation triggers and listing reads.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the catalog database. Unlike storage, the
		// database is not optional: every pipeline stage needs it.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to catalog database", zap.Error(err))
		}

		store := catalog.NewStore(db)
		if err := store.Migrate(); err != nil {
			logg.Fatal("Failed to migrate catalog schema", zap.Error(err))
		}

		// 4. Initialize Storage (Optional). Without it, auto-created
		// products simply get no images.
		var images *catalog.ImageFinder
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage connection failed, product images disabled", zap.Error(err))
		} else {
			images = catalog.NewImageFinder(client, cfg.Storage.Bucket, cfg.Sync.ImagePrefix)
		}

		// 5. Load the configured vendor list
		vendors, err := config.LoadVendors(cfg.Sync.VendorsFile)
		if err != nil {
			logg.Fatal("Failed to load vendors file", zap.Error(err))
		}
		logg.Info("Loaded vendor configuration", zap.Int("vendors", len(vendors)))

		// 6. Wire the reconciliation engine
		resolver := catalog.NewResolver(store, images, logg)
		pipeline := reconcile.NewPipeline(resolver, store, logg)
		orchestrator := reconcile.NewOrchestrator(pipeline, logg)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 8. Register Features
		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(orchestrator, store, vendors, logg))

		// Middleware Registration
		// RayID must be first so everything after it is traceable.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
