package cmd

import (
	"fmt"
	"os"

	"github.com/bibz/challenge-mini-vouchers/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Shared input/output flags for the dataset commands
	barcodesPath string
	ordersPath   string
	outputPath   string
	fromStorage  bool
)

// RootCmd represents the base command when called without any subcommands.
// Running it without a subcommand prints the vouchers, the default action.
var RootCmd = &cobra.Command{
	Use:   "mini-vouchers",
	Short: "Mini Vouchers reconciliation tool",
	Long: `Mini Vouchers reconciles barcode and order exports into a consistent
voucher view: every valid order with its attributed barcodes, plus the pool
of barcodes still available.

Without a subcommand it behaves like 'print'.`,
	Args:          cobra.NoArgs,
	RunE:          runPrint,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&barcodesPath, "barcodes", "",
		"Barcode export CSV: unique barcodes optionally mapped to an order_id (default from config: barcodes.csv)")
	RootCmd.PersistentFlags().StringVar(&ordersPath, "orders", "",
		"Order export CSV: unique order_ids each mapped to a customer_id (default from config: orders.csv)")
	RootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "",
		"Output file (defaults to stdout)")
	RootCmd.PersistentFlags().BoolVar(&fromStorage, "from-storage", false,
		"Fetch both exports from the configured storage bucket instead of local files")
}
