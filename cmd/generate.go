package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/bibz/challenge-mini-vouchers/core/config"
	"github.com/bibz/challenge-mini-vouchers/core/logger"
	"github.com/bibz/challenge-mini-vouchers/core/storage"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the generate command
	genOrders    int
	genCustomers int
	genBarcodes  int
	genSeed      int64
	genUpload    bool
)

// generateCmd writes a sample pair of export files for local experiments.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sample barcode and order exports",
	Long: `Generate a random but well-formed pair of CSV exports. Most barcodes are
attributed to a random order; the rest stay available. Use --upload to also
publish both files to the configured storage bucket.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genOrders, "count-orders", 50, "Number of orders to generate")
	generateCmd.Flags().IntVar(&genCustomers, "count-customers", 10, "Number of distinct customers")
	generateCmd.Flags().IntVar(&genBarcodes, "count-barcodes", 200, "Number of barcodes to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 seeds from the clock)")
	generateCmd.Flags().BoolVar(&genUpload, "upload", false, "Also upload both exports to the storage bucket")

	RootCmd.AddCommand(generateCmd)
}

// validateGenerateCounts rejects count flag values the generators cannot
// honour. Customers must exist as soon as there is an order to own.
func validateGenerateCounts(orders, customers, barcodes int) error {
	if orders < 0 {
		return fmt.Errorf("count-orders must be non-negative, got %d", orders)
	}
	if barcodes < 0 {
		return fmt.Errorf("count-barcodes must be non-negative, got %d", barcodes)
	}
	if orders > 0 && customers <= 0 {
		return fmt.Errorf("count-customers must be positive when generating orders, got %d", customers)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := validateGenerateCounts(genOrders, genCustomers, genBarcodes); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	orders := renderOrders(rng, genOrders, genCustomers)
	barcodes := renderBarcodes(rng, genBarcodes, genOrders)

	ordersFile := ordersPath
	if ordersFile == "" {
		ordersFile = cfg.Input.Orders
	}
	barcodesFile := barcodesPath
	if barcodesFile == "" {
		barcodesFile = cfg.Input.Barcodes
	}

	if err := os.WriteFile(ordersFile, orders.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write order export: %w", err)
	}
	if err := os.WriteFile(barcodesFile, barcodes.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write barcode export: %w", err)
	}

	l.Info("Generated sample exports",
		zap.String("orders", ordersFile),
		zap.String("barcodes", barcodesFile),
		zap.Int("order_count", genOrders),
		zap.Int("barcode_count", genBarcodes),
		zap.Int64("seed", seed),
	)

	if !genUpload {
		return nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	ctx := cmd.Context()
	bucket := cfg.Storage.Bucket
	if err := storage.UploadExport(ctx, client, bucket, cfg.Input.OrdersObject,
		bytes.NewReader(orders.Bytes()), int64(orders.Len())); err != nil {
		return err
	}
	if err := storage.UploadExport(ctx, client, bucket, cfg.Input.BarcodesObject,
		bytes.NewReader(barcodes.Bytes()), int64(barcodes.Len())); err != nil {
		return err
	}

	l.Info("Uploaded exports", zap.String("bucket", bucket))
	return nil
}

// renderOrders produces the order export: ids 1..orders, each owned by a
// random customer. Counts must already be validated.
func renderOrders(rng *rand.Rand, orders, customers int) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"order_id", "customer_id"})
	for id := 1; id <= orders; id++ {
		customer := rng.Intn(customers) + 1
		_ = w.Write([]string{strconv.Itoa(id), strconv.Itoa(customer)})
	}
	w.Flush()
	return &buf
}

// renderBarcodes produces the barcode export. Roughly one barcode in five
// stays unattributed so the available pool is never empty.
func renderBarcodes(rng *rand.Rand, barcodes, orders int) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"barcode", "order_id"})
	for i := 0; i < barcodes; i++ {
		orderID := ""
		if orders > 0 && rng.Intn(5) != 0 {
			orderID = strconv.Itoa(rng.Intn(orders) + 1)
		}
		_ = w.Write([]string{uuid.NewString(), orderID})
	}
	w.Flush()
	return &buf
}
