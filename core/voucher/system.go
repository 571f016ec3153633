package voucher

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// System is the in-memory reconciliation engine for barcode and order
// exports. It owns two indices: the barcode pool (value -> optional order id)
// and the order map (order id -> order). All mutation happens inside
// Populate; queries only ever hand out fresh copies.
//
// The System is not safe for concurrent use.
type System struct {
	// barcodes maps each known barcode value to its order id.
	// A nil entry means the barcode is available.
	barcodes map[string]*int

	// orders indexes the valid orders by their identifier.
	orders map[int]*Order

	logger *zap.Logger
}

// Option configures a System.
type Option func(*System)

// WithLogger sets the diagnostics sink for ingestion anomalies.
// Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *System) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty voucher system.
func New(opts ...Option) *System {
	s := &System{
		barcodes: make(map[string]*int),
		orders:   make(map[int]*Order),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Populate ingests the two export record sets.
//
// The data is first cleaned (duplicates dropped) and then validated (bad
// states dropped), in three passes:
//
//  1. Orders: the first record seen for an order id wins; later records with
//     the same id are discarded.
//  2. Barcodes: the first record seen for a barcode value wins; later records
//     are discarded entirely, their order linkage included. A barcode
//     referencing an order id the system does not know (never exported, or
//     dropped as a duplicate) stays in the pool unattributed.
//  3. Validation: orders left without a single barcode are removed.
//
// None of these conditions is an error; each is excluded from the model and
// reported to the diagnostics sink only. Calling Populate again extends the
// state under the same first-wins rules.
func (s *System) Populate(barcodes []ExportedBarcode, orders []ExportedOrder) {
	for _, record := range orders {
		if _, exists := s.orders[record.OrderID]; exists {
			s.logger.Warn("discarding duplicate order",
				zap.Int("order_id", record.OrderID),
				zap.Int("customer_id", record.CustomerID),
			)
			continue
		}
		s.logger.Debug("adding new order",
			zap.Int("order_id", record.OrderID),
			zap.Int("customer_id", record.CustomerID),
		)
		s.orders[record.OrderID] = &Order{
			OrderID:    record.OrderID,
			CustomerID: record.CustomerID,
			Barcodes:   make(map[string]struct{}),
		}
	}

	for _, record := range barcodes {
		if _, exists := s.barcodes[record.Barcode]; exists {
			s.logger.Warn("discarding duplicate barcode",
				zap.String("barcode", record.Barcode),
			)
			continue
		}

		s.logger.Debug("adding new barcode", zap.String("barcode", record.Barcode))

		if record.OrderID == nil {
			s.barcodes[record.Barcode] = nil
			continue
		}

		order, known := s.orders[*record.OrderID]
		if !known {
			// The referenced order was never exported or was dropped as a
			// duplicate; either way the barcode stays available.
			s.logger.Warn("discarding barcode attribution to unknown order",
				zap.String("barcode", record.Barcode),
				zap.Int("order_id", *record.OrderID),
			)
			s.barcodes[record.Barcode] = nil
			continue
		}

		orderID := *record.OrderID
		s.barcodes[record.Barcode] = &orderID
		order.Barcodes[record.Barcode] = struct{}{}
	}

	for id, order := range s.orders {
		if len(order.Barcodes) == 0 {
			s.logger.Warn("discarding order without barcodes",
				zap.Int("order_id", id),
				zap.Int("customer_id", order.CustomerID),
			)
			delete(s.orders, id)
		}
	}
}

// AvailableBarcodes returns the barcodes with no order attribution, sorted
// ascending by value. The slice is freshly allocated on every call.
func (s *System) AvailableBarcodes() []string {
	available := make([]string, 0, len(s.barcodes))
	for barcode, orderID := range s.barcodes {
		if orderID == nil {
			available = append(available, barcode)
		}
	}
	sort.Strings(available)
	return available
}

// Orders returns the valid orders sorted with less. A nil less sorts
// ascending by order id. Every order is a deep copy.
func (s *System) Orders(less func(a, b Order) bool) []Order {
	if less == nil {
		less = func(a, b Order) bool { return a.OrderID < b.OrderID }
	}

	orders := make([]Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, order.clone())
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return less(orders[i], orders[j])
	})
	return orders
}

// TopCustomers ranks customers by how many barcodes they were attributed
// across all their valid orders, descending. Ties are broken by ascending
// customer id. At most limit entries are returned; a limit of zero yields an
// empty slice.
func (s *System) TopCustomers(limit int) ([]CustomerTally, error) {
	if limit < 0 {
		return nil, fmt.Errorf("limit must be non-negative, got %d", limit)
	}

	totals := make(map[int]int)
	for _, order := range s.orders {
		totals[order.CustomerID] += len(order.Barcodes)
	}

	ranking := make([]CustomerTally, 0, len(totals))
	for customerID, count := range totals {
		ranking = append(ranking, CustomerTally{CustomerID: customerID, Barcodes: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Barcodes != ranking[j].Barcodes {
			return ranking[i].Barcodes > ranking[j].Barcodes
		}
		return ranking[i].CustomerID < ranking[j].CustomerID
	})

	if limit < len(ranking) {
		ranking = ranking[:limit]
	}
	return ranking, nil
}
