package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bibz/challenge-mini-vouchers/core/logger"
	"github.com/bibz/challenge-mini-vouchers/core/middleware/rayid"
	"github.com/bibz/challenge-mini-vouchers/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd exposes the reconciled dataset as a read-only JSON API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the vouchers over a read-only HTTP API",
	Long: `Reconcile the exports once at startup, then serve the resulting view:

  GET /vouchers        every valid order with its barcodes
  GET /summary         dataset aggregates
  GET /customers/top   customers ranked by barcode count (?limit=N)

The dataset is immutable once loaded; restart the server to pick up new
exports.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	system, cfg, l, err := buildSystem(cmd.Context())
	if err != nil {
		return err
	}
	defer l.Sync()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// RayID first so every request is traceable
	app.Use(rayid.New())

	// Request logging with Zap + RayID
	app.Use(func(c *fiber.Ctx) error {
		rl := logger.WithRayID(l, c)
		rl.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			rl.Error("Request error", zap.Error(err))
		}
		return err
	})

	service := report.NewService(system, l)
	report.NewHandler(service, cfg.Server.TopLimit).RegisterRoutes(app)

	go func() {
		l.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	l.Info("Shutting down server...")
	return app.Shutdown()
}
