package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bibz/challenge-mini-vouchers/core/config"
	"github.com/bibz/challenge-mini-vouchers/core/export"
	"github.com/bibz/challenge-mini-vouchers/core/logger"
	"github.com/bibz/challenge-mini-vouchers/core/storage"
	"github.com/bibz/challenge-mini-vouchers/core/voucher"

	"go.uber.org/zap"
)

// buildSystem loads configuration, reads both exports and populates a fresh
// voucher system. It is the shared front half of every dataset command.
func buildSystem(ctx context.Context) (*voucher.System, *config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	barcodesIn, ordersIn, err := openExports(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	defer barcodesIn.Close()
	defer ordersIn.Close()

	barcodes, err := export.ParseBarcodes(barcodesIn)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse barcode export: %w", err)
	}
	orders, err := export.ParseOrders(ordersIn)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse order export: %w", err)
	}

	system := voucher.New(voucher.WithLogger(l))
	system.Populate(barcodes, orders)

	return system, cfg, l, nil
}

// openExports opens the two export streams, either from local files or from
// the configured storage bucket when --from-storage is set.
func openExports(ctx context.Context, cfg *config.Config) (io.ReadCloser, io.ReadCloser, error) {
	if fromStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
		}

		barcodesIn, err := storage.FetchExport(ctx, client, cfg.Storage.Bucket, cfg.Input.BarcodesObject)
		if err != nil {
			return nil, nil, err
		}
		ordersIn, err := storage.FetchExport(ctx, client, cfg.Storage.Bucket, cfg.Input.OrdersObject)
		if err != nil {
			barcodesIn.Close()
			return nil, nil, err
		}
		return barcodesIn, ordersIn, nil
	}

	barcodesFile := barcodesPath
	if barcodesFile == "" {
		barcodesFile = cfg.Input.Barcodes
	}
	ordersFile := ordersPath
	if ordersFile == "" {
		ordersFile = cfg.Input.Orders
	}

	barcodesIn, err := os.Open(barcodesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open barcode export: %w", err)
	}
	ordersIn, err := os.Open(ordersFile)
	if err != nil {
		barcodesIn.Close()
		return nil, nil, fmt.Errorf("failed to open order export: %w", err)
	}
	return barcodesIn, ordersIn, nil
}

// openOutput resolves the --output flag; stdout when unset. The returned
// close function is a no-op for stdout.
func openOutput() (io.Writer, func() error, error) {
	if outputPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// renderTo runs render against the --output target. Close failures count as
// command failures: buffered writes can still be lost at close time.
func renderTo(render func(io.Writer) error) error {
	out, closeOut, err := openOutput()
	if err != nil {
		return err
	}

	if err := render(out); err != nil {
		_ = closeOut()
		return err
	}

	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to finalize output file: %w", err)
	}
	return nil
}
