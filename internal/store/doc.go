// Package store accumulates the results of one fetch run: the text obtained
// for every dataset key plus a record of each failed fetch.
//
// The store is the explicit accumulator the fetch loop writes into. It is
// created fresh per run, written by a single goroutine, and discarded after
// export; nothing persists between runs.
package store
