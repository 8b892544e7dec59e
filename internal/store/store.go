package store

import (
	"sort"
	"strings"
)

// Failure records one failed fetch: the dataset key it was for and a
// human-readable reason.
type Failure struct {
	Key    string
	Reason string
}

// Store maps dataset keys to their anniversary text and keeps the ordered
// list of fetch failures. Each key is written exactly once, by the single
// fetch loop; failed keys hold the empty string.
type Store struct {
	texts    map[string]string
	failures []Failure
}

// New creates an empty store.
func New() *Store {
	return &Store{
		texts: make(map[string]string),
	}
}

// SetText records the text obtained for key.
func (s *Store) SetText(key, text string) {
	s.texts[key] = text
}

// RecordFailure records a failed fetch for key: the key maps to the empty
// string and the reason is appended to the failure list.
func (s *Store) RecordFailure(key, reason string) {
	s.texts[key] = ""
	s.failures = append(s.failures, Failure{Key: key, Reason: reason})
}

// Text returns the text stored for key, or the empty string if the key has
// not been recorded.
func (s *Store) Text(key string) string {
	return s.texts[key]
}

// SortedKeys returns every recorded key in ascending order. For "MM-DD" keys
// ascending lexical order is chronological order.
func (s *Store) SortedKeys() []string {
	keys := make([]string, 0, len(s.texts))
	for key := range s.texts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Failures returns the fetch failures in the order they occurred.
func (s *Store) Failures() []Failure {
	return s.failures
}

// Len returns the number of recorded keys.
func (s *Store) Len() int {
	return len(s.texts)
}

// FailureCount returns the number of failed fetches.
func (s *Store) FailureCount() int {
	return len(s.failures)
}

// SuccessCount returns the number of keys recorded by a successful fetch.
func (s *Store) SuccessCount() int {
	return len(s.texts) - len(s.failures)
}

// WithData returns the number of keys holding non-blank text. A successful
// fetch can still yield a blank text, so this can be lower than SuccessCount.
func (s *Store) WithData() int {
	n := 0
	for _, text := range s.texts {
		if strings.TrimSpace(text) != "" {
			n++
		}
	}
	return n
}
