package calendar

import (
	"regexp"
	"testing"
)

func TestDaysCount(t *testing.T) {
	days := Days()
	if len(days) != DayCount {
		t.Fatalf("Days() returned %d days, want %d", len(days), DayCount)
	}
}

func TestDaysKeysAreWellFormed(t *testing.T) {
	keyPattern := regexp.MustCompile(`^\d{2}-\d{2}$`)

	seen := make(map[string]bool)
	for _, d := range Days() {
		key := d.Key()

		if !keyPattern.MatchString(key) {
			t.Errorf("key %q does not match MM-DD format", key)
		}
		if key == "02-29" {
			t.Error("sequence must not contain February 29")
		}
		if seen[key] {
			t.Errorf("duplicate key %q", key)
		}
		seen[key] = true
	}

	if len(seen) != DayCount {
		t.Errorf("got %d distinct keys, want %d", len(seen), DayCount)
	}
}

func TestDaysChronologicalOrder(t *testing.T) {
	days := Days()

	first := days[0]
	if first.Month != 1 || first.Day != 1 {
		t.Errorf("first day = %02d-%02d, want 01-01", first.Month, first.Day)
	}

	last := days[len(days)-1]
	if last.Month != 12 || last.Day != 31 {
		t.Errorf("last day = %02d-%02d, want 12-31", last.Month, last.Day)
	}

	// Lexical order of MM-DD keys matches chronological order.
	for i := 1; i < len(days); i++ {
		if days[i-1].Key() >= days[i].Key() {
			t.Fatalf("keys out of order at index %d: %s >= %s", i, days[i-1].Key(), days[i].Key())
		}
	}
}

func TestDaysRestartable(t *testing.T) {
	a := Days()
	b := Days()

	if len(a) != len(b) {
		t.Fatalf("sequence lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequence differs at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestKeyFormatting(t *testing.T) {
	tests := []struct {
		name  string
		month int
		day   int
		key   string
		mmdd  string
	}{
		{name: "single digit month and day", month: 1, day: 5, key: "01-05", mmdd: "0105"},
		{name: "double digit month and day", month: 12, day: 31, key: "12-31", mmdd: "1231"},
		{name: "mixed digits", month: 9, day: 10, key: "09-10", mmdd: "0910"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.month, tt.day); got != tt.key {
				t.Errorf("Key(%d, %d) = %q, want %q", tt.month, tt.day, got, tt.key)
			}
			if got := MMDD(tt.month, tt.day); got != tt.mmdd {
				t.Errorf("MMDD(%d, %d) = %q, want %q", tt.month, tt.day, got, tt.mmdd)
			}
		})
	}
}
