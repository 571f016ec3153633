// Package report presents the reconciled voucher system to the outside
// world.
//
// The Service renders the two CLI views (the per-order voucher listing and
// the dataset summary) and the customer ranking. The Handler exposes the
// same views as a read-only JSON API for the serve command.
//
// The package only ever queries the engine; it holds no state of its own and
// cannot mutate the system.
package report
