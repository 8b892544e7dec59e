// Package extract derives a single display string from an anniversary API
// response body, whatever shape the body has.
//
// The upstream API is loosely specified: depending on the date it may return a
// JSON array of names, a JSON object carrying a list under one of several
// keys, a bare JSON scalar, or plain text. Text never fails; every anomaly
// degrades to returning the trimmed raw body.
package extract
