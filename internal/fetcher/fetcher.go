package fetcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ASecCraft/anniv-fetch/internal/calendar"
	"github.com/ASecCraft/anniv-fetch/internal/extract"
	"github.com/ASecCraft/anniv-fetch/internal/logger"
	"github.com/ASecCraft/anniv-fetch/internal/store"
)

const (
	// DefaultBaseURL is the fixed anniversary API endpoint; the MMDD path
	// segment is appended per request.
	DefaultBaseURL = "https://api.whatistoday.cyou/index.cgi/v3/anniv"

	// DefaultTimeout bounds each individual request.
	DefaultTimeout = 15 * time.Second

	// DefaultDelay is the throttle inserted between consecutive requests.
	DefaultDelay = 1 * time.Second

	// UserAgent identifies the tool toward the external API.
	UserAgent = "anniv-fetch/1.0 (github.com/ASecCraft/anniv-fetch)"

	// previewLimit caps the text shown on a per-date progress line.
	previewLimit = 50

	// progressInterval is the number of processed days between periodic
	// progress reports.
	progressInterval = 30
)

// Config carries the knobs for one fetch run. Zero values fall back to the
// package defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Delay   time.Duration

	// Out receives the per-date progress lines. Defaults to os.Stdout.
	Out io.Writer

	// OnProgress, if set, is invoked after every progressInterval processed
	// days with cumulative counts.
	OnProgress func(done, total, succeeded, failed int)
}

// Fetcher issues one request per calendar day and records the outcome into a
// result store.
type Fetcher struct {
	client     *resty.Client
	baseURL    string
	delay      time.Duration
	out        io.Writer
	onProgress func(done, total, succeeded, failed int)
}

// New creates a Fetcher from cfg, applying package defaults for unset fields.
func New(cfg Config) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", UserAgent)

	return &Fetcher{
		client:     client,
		baseURL:    cfg.BaseURL,
		delay:      cfg.Delay,
		out:        cfg.Out,
		onProgress: cfg.OnProgress,
	}
}

// FetchAll runs the serial loop over every calendar day, recording one result
// per day into st. Individual fetch failures never stop the loop; the only
// error path is cancellation of ctx, checked at day boundaries so an
// interrupt never cuts a request in half.
func (f *Fetcher) FetchAll(ctx context.Context, st *store.Store) error {
	days := calendar.Days()

	for i, d := range days {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("fetch loop interrupted at %s: %w", d.Key(), err)
		}

		f.fetchOne(d, st)

		done := i + 1
		if f.onProgress != nil && done%progressInterval == 0 {
			f.onProgress(done, len(days), st.SuccessCount(), st.FailureCount())
		}

		// Throttle between requests, but not after the last one.
		if i < len(days)-1 {
			if err := f.wait(ctx); err != nil {
				return fmt.Errorf("fetch loop interrupted after %s: %w", d.Key(), err)
			}
		}
	}

	return nil
}

// fetchOne performs the single GET for one day and records the outcome.
func (f *Fetcher) fetchOne(d calendar.Day, st *store.Store) {
	key := d.Key()
	url := f.baseURL + "/" + calendar.MMDD(d.Month, d.Day)

	resp, err := f.client.R().Get(url)
	if err != nil {
		f.fail(st, key, err.Error())
		return
	}
	if !resp.IsSuccess() {
		f.fail(st, key, fmt.Sprintf("unexpected status: %s", resp.Status()))
		return
	}

	text := extract.Text(resp.Body())
	st.SetText(key, text)
	fmt.Fprintf(f.out, "✓ %s: %s\n", key, preview(text))

	logger.Debug("fetched", logger.Fields{
		"date_key": key,
		"length":   len(text),
	})
}

// fail records a failed fetch and prints the failure progress line.
func (f *Fetcher) fail(st *store.Store, key, reason string) {
	st.RecordFailure(key, reason)
	fmt.Fprintf(f.out, "✗ %s: %s\n", key, reason)

	logger.Warn("fetch failed", logger.Fields{
		"date_key": key,
		"reason":   reason,
	})
}

// wait sleeps the configured delay, returning early if ctx is cancelled.
func (f *Fetcher) wait(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}

	t := time.NewTimer(f.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// preview truncates text to previewLimit runes for the progress line.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
