package voucher

import "sort"

// ExportedBarcode is a barcode record as found in an export.
// A nil OrderID means the barcode was exported unattributed; the pointer is
// the single encoding of "unset" so a zero order id is never ambiguous.
type ExportedBarcode struct {
	// Barcode is the unique barcode value.
	Barcode string `json:"barcode"`

	// OrderID is the optional order the barcode claims to belong to.
	OrderID *int `json:"order_id,omitempty"`
}

// Attributed returns a barcode record linked to an order.
func Attributed(barcode string, orderID int) ExportedBarcode {
	return ExportedBarcode{Barcode: barcode, OrderID: &orderID}
}

// Available returns an unattributed barcode record.
func Available(barcode string) ExportedBarcode {
	return ExportedBarcode{Barcode: barcode}
}

// ExportedOrder is an order record as found in an export.
type ExportedOrder struct {
	// OrderID is the unique order identifier.
	OrderID int `json:"order_id"`

	// CustomerID is the customer who placed the order.
	CustomerID int `json:"customer_id"`
}

// Order is a validated order with its attributed barcodes.
// Instances returned by queries are deep copies; mutating them never affects
// the system state.
type Order struct {
	// OrderID is the unique order identifier.
	OrderID int `json:"order_id"`

	// CustomerID is the customer who placed the order.
	CustomerID int `json:"customer_id"`

	// Barcodes is the set of barcode values attributed to the order.
	Barcodes map[string]struct{} `json:"-"`
}

// BarcodeValues returns the attributed barcode values sorted ascending.
func (o Order) BarcodeValues() []string {
	values := make([]string, 0, len(o.Barcodes))
	for barcode := range o.Barcodes {
		values = append(values, barcode)
	}
	sort.Strings(values)
	return values
}

// clone returns a deep copy of the order.
func (o Order) clone() Order {
	barcodes := make(map[string]struct{}, len(o.Barcodes))
	for barcode := range o.Barcodes {
		barcodes[barcode] = struct{}{}
	}
	return Order{OrderID: o.OrderID, CustomerID: o.CustomerID, Barcodes: barcodes}
}

// CustomerTally is one row of a top-customers ranking.
type CustomerTally struct {
	// CustomerID is the customer identifier.
	CustomerID int `json:"customer_id"`

	// Barcodes is the total number of barcodes attributed to the customer
	// across all their valid orders.
	Barcodes int `json:"barcodes"`
}
