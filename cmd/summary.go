package cmd

import (
	"github.com/bibz/challenge-mini-vouchers/feature/report"

	"github.com/spf13/cobra"
)

// summaryCmd briefly describes the reconciled dataset.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Briefly describe the dataset",
	Long: `Print the total amount of orders, customers, available barcodes and
barcodes known to the system.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	RootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	system, _, l, err := buildSystem(cmd.Context())
	if err != nil {
		return err
	}
	defer l.Sync()

	service := report.NewService(system, l)
	return renderTo(service.WriteSummary)
}
