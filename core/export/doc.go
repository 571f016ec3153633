// Package export reads barcode and order exports from CSV streams.
//
// Exports are line-oriented CSV with a header row. Column order is
// irrelevant; columns are matched by name (barcode, order_id, customer_id).
//
// # Error tiers
//
// The reader distinguishes two failure classes, mirroring the rest of the
// system:
//
//   - Structurally incomplete rows (no barcode value, missing identifiers)
//     are skipped silently; the reconciliation engine never sees them.
//   - Malformed numeric fields are fatal: the parse fails as a whole and no
//     partial record set is returned.
//
// # Configuration
//
// The Config struct carries the default input locations (local CSV paths and
// their object names in the storage bucket) and is embedded in the
// application configuration under the "input" section.
package export
