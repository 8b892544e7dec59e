// Package fetcher drives the serial fetch loop against the anniversary API.
//
// One GET is issued per calendar day, with a fixed delay between requests as
// a deliberate throttle toward the external service. There are no retries:
// transport errors and non-2xx responses are recorded as failures and the
// loop moves on to the next day.
package fetcher
