package report

import (
	"strconv"

	"github.com/bibz/challenge-mini-vouchers/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the read-only voucher views.
type Handler struct {
	service  *Service
	topLimit int
}

// NewHandler creates a new HTTP handler. topLimit is the default limit for
// the top-customers endpoint when the query parameter is absent.
func NewHandler(service *Service, topLimit int) *Handler {
	return &Handler{service: service, topLimit: topLimit}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/vouchers", h.HandleVouchers)
	app.Get("/summary", h.HandleSummary)
	app.Get("/customers/top", h.HandleTopCustomers)
}

// HandleVouchers returns every valid order with its barcodes.
func (h *Handler) HandleVouchers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Debug("Listing vouchers")

	return c.JSON(fiber.Map{"vouchers": h.service.Vouchers()})
}

// HandleSummary returns the dataset aggregates.
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	return c.JSON(h.service.Summarize())
}

// HandleTopCustomers returns the customers ranked by barcode count.
// The limit query parameter caps the ranking; it must be non-negative.
func (h *Handler) HandleTopCustomers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := h.topLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be an integer"})
		}
		limit = parsed
	}

	top, err := h.service.TopCustomers(limit)
	if err != nil {
		l.Warn("Rejecting top-customers request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"customers": top})
}
