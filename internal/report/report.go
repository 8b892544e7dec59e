package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ASecCraft/anniv-fetch/internal/calendar"
	"github.com/ASecCraft/anniv-fetch/internal/logger"
	"github.com/ASecCraft/anniv-fetch/internal/store"
)

const (
	// DefaultSampleSize is the number of leading dataset entries shown in the
	// sample listing.
	DefaultSampleSize = 15

	// sampleLimit caps the text shown per sample row.
	sampleLimit = 80

	// maxFailureDetails is how many failure reasons the summary lists.
	maxFailureDetails = 3
)

// Reporter writes human-readable run output to a single destination.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Banner prints the startup banner with the configured throttle delay and a
// rough duration estimate.
func (r *Reporter) Banner(delay time.Duration) {
	estimate := time.Duration(calendar.DayCount) * delay

	fmt.Fprintln(r.w, "=== Anniversary dataset fetch: 365 days ===")
	fmt.Fprintf(r.w, "Request interval: %s\n", delay)
	fmt.Fprintf(r.w, "Estimated duration: about %d min\n", int(estimate.Minutes()))
	fmt.Fprintln(r.w, "Requests are spaced out to go easy on the external API.")
	fmt.Fprintln(r.w)
}

// Progress prints the periodic progress block with cumulative counts.
func (r *Reporter) Progress(done, total, succeeded, failed int) {
	pct := float64(done) / float64(total) * 100

	fmt.Fprintf(r.w, "\n--- progress: %d/%d (%.1f%%) ---\n", done, total, pct)
	fmt.Fprintf(r.w, "succeeded: %d, failed: %d\n\n", succeeded, failed)
}

// Summary prints the final success/failure counts and the first few failure
// reasons, if any.
func (r *Reporter) Summary(st *store.Store) {
	fmt.Fprintln(r.w, "\n=== Fetch complete ===")
	fmt.Fprintf(r.w, "Succeeded: %d/%d\n", st.SuccessCount(), st.Len())
	fmt.Fprintf(r.w, "Failed: %d\n", st.FailureCount())

	failures := st.Failures()
	if len(failures) == 0 {
		return
	}

	fmt.Fprintf(r.w, "\nFirst failures (up to %d):\n", maxFailureDetails)
	for i, f := range failures {
		if i == maxFailureDetails {
			break
		}
		fmt.Fprintf(r.w, "  - %s: %s\n", f.Key, f.Reason)
	}
}

// Statistics prints the dataset coverage table.
func (r *Reporter) Statistics(st *store.Store) {
	total := st.Len()
	withData := st.WithData()

	coverage := 0.0
	if total > 0 {
		coverage = float64(withData) / float64(total) * 100
	}

	fmt.Fprintln(r.w, "\n=== Statistics ===")

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.AppendRows([]table.Row{
		{"Total days", total},
		{"Days with data", withData},
		{"Days without data", total - withData},
		{"Coverage", fmt.Sprintf("%.1f%%", coverage)},
	})
	t.Render()
}

// Sample prints the first n dataset entries in key order, texts truncated for
// display.
func (r *Reporter) Sample(st *store.Store, n int) {
	if n <= 0 {
		n = DefaultSampleSize
	}

	fmt.Fprintf(r.w, "\n=== Sample: first %d entries ===\n", n)

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.AppendHeader(table.Row{"Date", "Anniversary"})
	for i, key := range st.SortedKeys() {
		if i == n {
			break
		}
		t.AppendRow(table.Row{key, truncate(st.Text(key), sampleLimit)})
	}
	t.Render()
}

// ExportResult prints the outcome of one file export. Errors are reported but
// never propagated; the exporters are independent of each other.
func (r *Reporter) ExportResult(label, path string, err error) {
	if err != nil {
		fmt.Fprintf(r.w, "✗ %s export failed: %v\n", label, err)
		logger.Error("export failed", logger.Fields{
			"format": label,
			"path":   path,
		}, err)
		return
	}
	fmt.Fprintf(r.w, "✓ %s saved: %s\n", label, path)
}

// Done prints the completion notice with the generated file paths.
func (r *Reporter) Done(csvPath, jsonPath string) {
	fmt.Fprintln(r.w, "\n✓ Run complete.")
	fmt.Fprintln(r.w, "Generated files:")
	fmt.Fprintf(r.w, "  - %s (CSV)\n", csvPath)
	fmt.Fprintf(r.w, "  - %s (JSON)\n", jsonPath)
}

// truncate shortens text to limit runes, marking the cut with an ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
