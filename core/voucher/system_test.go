package voucher_test

import (
	"testing"

	"github.com/bibz/challenge-mini-vouchers/core/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSystem_Populate(t *testing.T) {
	t.Run("EndToEnd", func(t *testing.T) {
		system := voucher.New()
		system.Populate(
			[]voucher.ExportedBarcode{voucher.Attributed("a", 10), voucher.Available("z")},
			[]voucher.ExportedOrder{{OrderID: 10, CustomerID: 7}},
		)

		assert.Equal(t, []string{"z"}, system.AvailableBarcodes())

		orders := system.Orders(nil)
		require.Len(t, orders, 1)
		assert.Equal(t, 10, orders[0].OrderID)
		assert.Equal(t, 7, orders[0].CustomerID)
		assert.Equal(t, []string{"a"}, orders[0].BarcodeValues())
	})

	t.Run("DuplicateOrderFirstWins", func(t *testing.T) {
		system := voucher.New()
		system.Populate(
			[]voucher.ExportedBarcode{voucher.Attributed("a", 10)},
			[]voucher.ExportedOrder{
				{OrderID: 10, CustomerID: 7},
				{OrderID: 10, CustomerID: 5},
			},
		)

		orders := system.Orders(nil)
		require.Len(t, orders, 1)
		assert.Equal(t, 7, orders[0].CustomerID)
	})

	t.Run("DuplicateBarcodeIgnoresLaterAttribution", func(t *testing.T) {
		system := voucher.New()
		system.Populate(
			[]voucher.ExportedBarcode{voucher.Available("a"), voucher.Attributed("a", 1)},
			[]voucher.ExportedOrder{{OrderID: 1, CustomerID: 2}},
		)

		assert.Equal(t, []string{"a"}, system.AvailableBarcodes())
		// Order 1 never received a barcode, so it must have been dropped.
		assert.Empty(t, system.Orders(nil))
	})

	t.Run("BarcodeForUnknownOrderStaysAvailable", func(t *testing.T) {
		system := voucher.New()
		system.Populate(
			[]voucher.ExportedBarcode{voucher.Attributed("a", 99)},
			nil,
		)

		assert.Equal(t, []string{"a"}, system.AvailableBarcodes())
		assert.Empty(t, system.Orders(nil))
	})

	t.Run("BarcodeForDiscardedDuplicateOrderStaysAvailable", func(t *testing.T) {
		// The duplicate order record is dropped wholesale; barcodes keep
		// linking to the surviving first record only.
		system := voucher.New()
		system.Populate(
			[]voucher.ExportedBarcode{voucher.Attributed("a", 10)},
			[]voucher.ExportedOrder{
				{OrderID: 10, CustomerID: 7},
				{OrderID: 10, CustomerID: 5},
			},
		)

		orders := system.Orders(nil)
		require.Len(t, orders, 1)
		assert.Equal(t, []string{"a"}, orders[0].BarcodeValues())
		assert.Empty(t, system.AvailableBarcodes())
	})

	t.Run("OrderWithoutBarcodesIsDropped", func(t *testing.T) {
		system := voucher.New()
		system.Populate(nil, []voucher.ExportedOrder{{OrderID: 10, CustomerID: 7}})

		assert.Empty(t, system.Orders(nil))
	})

	t.Run("RepeatedPopulateExtendsState", func(t *testing.T) {
		system := voucher.New()
		system.Populate(
			[]voucher.ExportedBarcode{voucher.Attributed("a", 10)},
			[]voucher.ExportedOrder{{OrderID: 10, CustomerID: 7}},
		)
		system.Populate(
			[]voucher.ExportedBarcode{voucher.Attributed("a", 11), voucher.Attributed("b", 10)},
			[]voucher.ExportedOrder{{OrderID: 10, CustomerID: 9}},
		)

		orders := system.Orders(nil)
		require.Len(t, orders, 1)
		assert.Equal(t, 7, orders[0].CustomerID)
		assert.Equal(t, []string{"a", "b"}, orders[0].BarcodeValues())
	})

	t.Run("AnomaliesAreLoggedNotRaised", func(t *testing.T) {
		observed, logs := observer.New(zap.WarnLevel)
		system := voucher.New(voucher.WithLogger(zap.New(observed)))

		system.Populate(
			[]voucher.ExportedBarcode{
				voucher.Available("a"),
				voucher.Available("a"),      // duplicate barcode
				voucher.Attributed("b", 99), // unknown order
			},
			[]voucher.ExportedOrder{
				{OrderID: 10, CustomerID: 7},
				{OrderID: 10, CustomerID: 5}, // duplicate order
			},
		)

		messages := make([]string, 0, logs.Len())
		for _, entry := range logs.All() {
			messages = append(messages, entry.Message)
		}
		assert.Contains(t, messages, "discarding duplicate order")
		assert.Contains(t, messages, "discarding duplicate barcode")
		assert.Contains(t, messages, "discarding barcode attribution to unknown order")
		assert.Contains(t, messages, "discarding order without barcodes")
	})
}

func TestSystem_Queries(t *testing.T) {
	newPopulated := func() *voucher.System {
		system := voucher.New()
		system.Populate(
			[]voucher.ExportedBarcode{
				voucher.Attributed("a", 10),
				voucher.Attributed("b", 10),
				voucher.Attributed("c", 20),
				voucher.Available("z"),
				voucher.Available("y"),
			},
			[]voucher.ExportedOrder{
				{OrderID: 20, CustomerID: 3},
				{OrderID: 10, CustomerID: 7},
			},
		)
		return system
	}

	t.Run("AvailableBarcodesSorted", func(t *testing.T) {
		system := newPopulated()
		assert.Equal(t, []string{"y", "z"}, system.AvailableBarcodes())
	})

	t.Run("QueriesAreIdempotent", func(t *testing.T) {
		system := newPopulated()
		assert.Equal(t, system.AvailableBarcodes(), system.AvailableBarcodes())
		assert.Equal(t, system.Orders(nil), system.Orders(nil))
	})

	t.Run("OrdersDefaultSortByID", func(t *testing.T) {
		system := newPopulated()
		orders := system.Orders(nil)
		require.Len(t, orders, 2)
		assert.Equal(t, 10, orders[0].OrderID)
		assert.Equal(t, 20, orders[1].OrderID)
	})

	t.Run("OrdersCustomSort", func(t *testing.T) {
		system := newPopulated()
		orders := system.Orders(func(a, b voucher.Order) bool {
			return a.CustomerID < b.CustomerID
		})
		require.Len(t, orders, 2)
		assert.Equal(t, 3, orders[0].CustomerID)
		assert.Equal(t, 7, orders[1].CustomerID)
	})

	t.Run("OrdersAreDefensiveCopies", func(t *testing.T) {
		system := newPopulated()
		orders := system.Orders(nil)
		orders[0].Barcodes["injected"] = struct{}{}

		fresh := system.Orders(nil)
		assert.NotContains(t, fresh[0].Barcodes, "injected")
	})

	t.Run("BarcodesNeverBothAvailableAndAttributed", func(t *testing.T) {
		system := newPopulated()
		attributed := make(map[string]struct{})
		for _, order := range system.Orders(nil) {
			for barcode := range order.Barcodes {
				// No two orders share a barcode.
				_, seen := attributed[barcode]
				assert.False(t, seen, "barcode %q attributed twice", barcode)
				attributed[barcode] = struct{}{}
			}
		}
		for _, barcode := range system.AvailableBarcodes() {
			assert.NotContains(t, attributed, barcode)
		}
	})
}

func TestSystem_TopCustomers(t *testing.T) {
	// Customer 33 gets 4 barcodes, 44 gets 19, 55 gets 9, one per order.
	buildFixture := func() *voucher.System {
		var barcodes []voucher.ExportedBarcode
		var orders []voucher.ExportedOrder
		add := func(customerID, base, count int, prefix string) {
			for i := 1; i <= count; i++ {
				value := prefix
				for j := 0; j < i; j++ {
					value += prefix
				}
				barcodes = append(barcodes, voucher.Attributed(value, base+i))
				orders = append(orders, voucher.ExportedOrder{OrderID: base + i, CustomerID: customerID})
			}
		}
		add(33, 100, 4, "a")
		add(44, 200, 19, "b")
		add(55, 300, 9, "c")

		system := voucher.New()
		system.Populate(barcodes, orders)
		return system
	}

	t.Run("RanksByBarcodeCount", func(t *testing.T) {
		system := buildFixture()
		top, err := system.TopCustomers(2)
		require.NoError(t, err)
		assert.Equal(t, []voucher.CustomerTally{
			{CustomerID: 44, Barcodes: 19},
			{CustomerID: 55, Barcodes: 9},
		}, top)
	})

	t.Run("LimitLargerThanCustomers", func(t *testing.T) {
		system := buildFixture()
		top, err := system.TopCustomers(10)
		require.NoError(t, err)
		assert.Len(t, top, 3)
	})

	t.Run("ZeroLimit", func(t *testing.T) {
		system := buildFixture()
		top, err := system.TopCustomers(0)
		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("NegativeLimit", func(t *testing.T) {
		system := buildFixture()
		_, err := system.TopCustomers(-1)
		assert.Error(t, err)
	})

	t.Run("TiesBreakOnCustomerID", func(t *testing.T) {
		system := voucher.New()
		system.Populate(
			[]voucher.ExportedBarcode{
				voucher.Attributed("a", 1),
				voucher.Attributed("b", 2),
			},
			[]voucher.ExportedOrder{
				{OrderID: 1, CustomerID: 9},
				{OrderID: 2, CustomerID: 4},
			},
		)

		top, err := system.TopCustomers(2)
		require.NoError(t, err)
		assert.Equal(t, []voucher.CustomerTally{
			{CustomerID: 4, Barcodes: 1},
			{CustomerID: 9, Barcodes: 1},
		}, top)
	})
}
