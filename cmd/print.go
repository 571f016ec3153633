package cmd

import (
	"github.com/bibz/challenge-mini-vouchers/feature/report"

	"github.com/spf13/cobra"
)

// printCmd prints every voucher in the system, one order per line.
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print all vouchers in the system",
	Long: `Print one line per valid order, sorted by customer and order id:

  customer_id, order_id, barcode[, barcode...]

Orders that ended up without barcodes are excluded during reconciliation and
never appear here.`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	RootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	system, _, l, err := buildSystem(cmd.Context())
	if err != nil {
		return err
	}
	defer l.Sync()

	service := report.NewService(system, l)
	return renderTo(service.WriteVouchers)
}
