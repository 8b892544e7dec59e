// Package export serializes a completed fetch run to the two dataset files:
// a two-column CSV and a flat JSON object, both sorted by dataset key.
//
// The two exporters are independent: a failure writing one file is reported
// by the caller and never prevents the other from being written.
package export
