// Package cli implements the command-line interface for anniv-fetch.
//
// The cli package provides the Cobra-based root command and coordinates the
// calendar, fetcher, store, export, and report packages to fetch the full
// 365-day anniversary dataset, write the CSV and JSON output files, and
// report progress to the operator. A bare invocation runs with the fixed
// defaults; flags and environment variables only adjust paths and pacing.
package cli
