// Package calendar generates the fixed 365-day sequence of (month, day) pairs
// used to key the anniversary dataset.
//
// The sequence follows a non-leap reference year, so February 29 never appears
// and every run produces the same ordered set of keys. Keys use the canonical
// zero-padded "MM-DD" form; request path segments use the compact "MMDD" form.
package calendar
