package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bibz/challenge-mini-vouchers/core/voucher"
)

// Column names expected in the export headers.
const (
	ColumnBarcode    = "barcode"
	ColumnOrderID    = "order_id"
	ColumnCustomerID = "customer_id"
)

// ParseBarcodes reads a barcode export from r.
//
// The first row is the header; column order is irrelevant, columns are
// matched by name. Rows with an empty barcode value are skipped. A non-empty
// order_id cell must be a base-10 integer; anything else fails the whole
// parse.
func ParseBarcodes(r io.Reader) ([]voucher.ExportedBarcode, error) {
	rows, header, err := readRows(r)
	if err != nil {
		return nil, err
	}

	barcodeCol, ok := header[ColumnBarcode]
	if !ok {
		return nil, fmt.Errorf("missing %q column in barcode export header", ColumnBarcode)
	}
	orderCol, ok := header[ColumnOrderID]
	if !ok {
		return nil, fmt.Errorf("missing %q column in barcode export header", ColumnOrderID)
	}

	records := make([]voucher.ExportedBarcode, 0, len(rows))
	for i, row := range rows {
		barcode := cell(row, barcodeCol)
		if barcode == "" {
			continue
		}

		rawOrderID := cell(row, orderCol)
		if rawOrderID == "" {
			records = append(records, voucher.Available(barcode))
			continue
		}

		orderID, err := strconv.Atoi(rawOrderID)
		if err != nil {
			return nil, fmt.Errorf("barcode export row %d: invalid order id %q: %w", i+2, rawOrderID, err)
		}
		records = append(records, voucher.Attributed(barcode, orderID))
	}

	return records, nil
}

// ParseOrders reads an order export from r.
//
// The first row is the header; column order is irrelevant. Rows missing
// either identifier are skipped. Present identifiers must be base-10
// integers; anything else fails the whole parse.
func ParseOrders(r io.Reader) ([]voucher.ExportedOrder, error) {
	rows, header, err := readRows(r)
	if err != nil {
		return nil, err
	}

	orderCol, ok := header[ColumnOrderID]
	if !ok {
		return nil, fmt.Errorf("missing %q column in order export header", ColumnOrderID)
	}
	customerCol, ok := header[ColumnCustomerID]
	if !ok {
		return nil, fmt.Errorf("missing %q column in order export header", ColumnCustomerID)
	}

	records := make([]voucher.ExportedOrder, 0, len(rows))
	for i, row := range rows {
		rawOrderID := cell(row, orderCol)
		rawCustomerID := cell(row, customerCol)
		if rawOrderID == "" || rawCustomerID == "" {
			continue
		}

		orderID, err := strconv.Atoi(rawOrderID)
		if err != nil {
			return nil, fmt.Errorf("order export row %d: invalid order id %q: %w", i+2, rawOrderID, err)
		}
		customerID, err := strconv.Atoi(rawCustomerID)
		if err != nil {
			return nil, fmt.Errorf("order export row %d: invalid customer id %q: %w", i+2, rawCustomerID, err)
		}

		records = append(records, voucher.ExportedOrder{OrderID: orderID, CustomerID: customerID})
	}

	return records, nil
}

// readRows reads all CSV rows from r and maps header names to column indices.
func readRows(r io.Reader) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Exports sometimes truncate trailing empty cells; tolerate ragged rows.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read export: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("export is empty, expected a header row")
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}

	return rows[1:], header, nil
}

// cell returns the trimmed value at column idx, or "" when the row is short.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
