package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bibz/challenge-mini-vouchers/core/voucher"

	"go.uber.org/zap"
)

// Service renders read-only views of a populated voucher system.
type Service struct {
	system *voucher.System
	logger *zap.Logger
}

// NewService creates a new reporting service.
func NewService(system *voucher.System, logger *zap.Logger) *Service {
	return &Service{
		system: system,
		logger: logger,
	}
}

// Voucher is the presentation of one valid order and its barcodes.
type Voucher struct {
	CustomerID int      `json:"customer_id"`
	OrderID    int      `json:"order_id"`
	Barcodes   []string `json:"barcodes"`
}

// Summary describes the reconciled dataset in aggregate.
type Summary struct {
	// Orders is the number of valid orders.
	Orders int `json:"orders"`
	// Customers is the number of distinct customers with a valid order.
	Customers int `json:"customers"`
	// AvailableBarcodes is the number of unattributed barcodes.
	AvailableBarcodes int `json:"available_barcodes"`
	// TotalBarcodes is the pool size, attributed and available combined.
	TotalBarcodes int `json:"total_barcodes"`
}

// Vouchers returns one entry per valid order, sorted by customer id then
// order id, each with its barcodes sorted ascending.
func (s *Service) Vouchers() []Voucher {
	orders := s.system.Orders(func(a, b voucher.Order) bool {
		if a.CustomerID != b.CustomerID {
			return a.CustomerID < b.CustomerID
		}
		return a.OrderID < b.OrderID
	})

	vouchers := make([]Voucher, 0, len(orders))
	for _, order := range orders {
		vouchers = append(vouchers, Voucher{
			CustomerID: order.CustomerID,
			OrderID:    order.OrderID,
			Barcodes:   order.BarcodeValues(),
		})
	}
	return vouchers
}

// WriteVouchers prints one line per voucher to w, in the form:
//
//	customer_id, order_id, barcode[, barcode...]
func (s *Service) WriteVouchers(w io.Writer) error {
	for _, v := range s.Vouchers() {
		line := fmt.Sprintf("%d, %d, %s\n", v.CustomerID, v.OrderID, strings.Join(v.Barcodes, ", "))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("failed to write voucher line: %w", err)
		}
	}
	return nil
}

// Summarize computes the dataset aggregates.
func (s *Service) Summarize() Summary {
	customers := make(map[int]struct{})
	attributed := 0

	orders := s.system.Orders(nil)
	for _, order := range orders {
		customers[order.CustomerID] = struct{}{}
		attributed += len(order.Barcodes)
	}

	available := len(s.system.AvailableBarcodes())

	return Summary{
		Orders:            len(orders),
		Customers:         len(customers),
		AvailableBarcodes: available,
		TotalBarcodes:     attributed + available,
	}
}

// WriteSummary prints the human-readable dataset description to w.
func (s *Service) WriteSummary(w io.Writer) error {
	summary := s.Summarize()
	_, err := fmt.Fprintf(w,
		"The dataset contains %d orders from %d customers.\n"+
			"There are %d barcodes available out of a total of %d barcodes.\n",
		summary.Orders, summary.Customers, summary.AvailableBarcodes, summary.TotalBarcodes,
	)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// TopCustomers ranks customers by attributed barcode count.
func (s *Service) TopCustomers(limit int) ([]voucher.CustomerTally, error) {
	return s.system.TopCustomers(limit)
}
