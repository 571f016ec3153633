// Package voucher provides the in-memory reconciliation engine for the
// voucher system.
//
// The engine ingests two independently-sourced record sets: barcode exports
// (a unique barcode value, optionally claiming an order) and order exports
// (an order id mapped to a customer id). The two sets may disagree: exports
// can repeat records or reference orders that were never exported. Populate
// cross-links the sets into a consistent model by dropping duplicates
// first-wins, leaving orphaned barcodes available, and discarding orders that
// end up with no barcodes at all.
//
// # Queries
//
// Once populated, the System answers three read-only queries:
//
//   - AvailableBarcodes: the pool of unattributed barcodes, sorted by value.
//   - Orders: the valid orders, sorted by a caller-supplied key.
//   - TopCustomers: customers ranked by total attributed barcodes.
//
// Queries return fresh, deeply-copied values on every call; callers cannot
// mutate engine state through a result.
//
// # Diagnostics
//
// Ingestion anomalies (duplicates, unknown order references, empty orders)
// are never errors. They are reported to an injectable zap logger so the
// engine stays free of global state:
//
//	system := voucher.New(voucher.WithLogger(logger))
//	system.Populate(barcodes, orders)
package voucher
