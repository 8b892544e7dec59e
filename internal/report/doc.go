// Package report renders the operator-facing console output: the startup
// banner, periodic progress blocks, the final summary, dataset statistics,
// and a sample listing.
//
// Output is purely observational and never feeds back into the data model.
package report
