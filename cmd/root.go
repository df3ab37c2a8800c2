package cmd

import (
	"fmt"
	"os"

	"inventory-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inventory-sync",
	Short: "Inventory Reconciliation Service",
	Long: `Inventory Sync reconciles heterogeneous vendor inventory feeds into a
canonical catalog of vendor-scoped product records. It can run as an HTTP
service or perform one-shot reconciliation passes from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI users expect readable console output with timestamps, so
		// error reporting uses the debug/console logger configuration.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
