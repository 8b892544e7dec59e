package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ASecCraft/anniv-fetch/internal/export"
	"github.com/ASecCraft/anniv-fetch/internal/fetcher"
	"github.com/ASecCraft/anniv-fetch/internal/logger"
	"github.com/ASecCraft/anniv-fetch/internal/report"
	"github.com/ASecCraft/anniv-fetch/internal/store"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Default output paths; overridable by flag or environment.
const (
	DefaultCSVPath  = "anniversaries.csv"
	DefaultJSONPath = "anniversaries.json"
)

// Environment variables that seed flag defaults.
const (
	EnvBaseURL  = "ANNIV_BASE_URL"
	EnvCSVPath  = "ANNIV_CSV_PATH"
	EnvJSONPath = "ANNIV_JSON_PATH"
)

var (
	flagBaseURL string
	flagCSVPath string
	flagJSON    string
	flagDelay   time.Duration
	flagTimeout time.Duration
	flagSample  int
	flagVerbose bool
)

// NewRootCmd creates the root command. Flag defaults come from the
// environment where set, so a bare invocation can still be steered by a .env
// file.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anniv-fetch",
		Short: "Fetch the 365-day anniversary dataset",
		Long: `Fetches a short anniversary text for every day of a non-leap year from the
whatistoday API, one throttled request per day, then writes the results as
anniversaries.csv and anniversaries.json.`,
		RunE:          runFetch,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagBaseURL, "base-url", envOr(EnvBaseURL, fetcher.DefaultBaseURL), "Anniversary API base URL")
	cmd.Flags().StringVar(&flagCSVPath, "csv", envOr(EnvCSVPath, DefaultCSVPath), "CSV output path")
	cmd.Flags().StringVar(&flagJSON, "json", envOr(EnvJSONPath, DefaultJSONPath), "JSON output path")
	cmd.Flags().DurationVar(&flagDelay, "delay", fetcher.DefaultDelay, "Throttle delay between requests")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", fetcher.DefaultTimeout, "Per-request timeout")
	cmd.Flags().IntVar(&flagSample, "sample", report.DefaultSampleSize, "Number of sample entries to display")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose structured diagnostics on stderr")

	return cmd
}

// runFetch is the main command logic: fetch loop, report, exports.
func runFetch(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, cmd.ErrOrStderr()))
	}

	out := cmd.OutOrStdout()
	rep := report.New(out)
	st := store.New()

	f := fetcher.New(fetcher.Config{
		BaseURL:    flagBaseURL,
		Timeout:    flagTimeout,
		Delay:      flagDelay,
		Out:        out,
		OnProgress: rep.Progress,
	})

	rep.Banner(flagDelay)

	if err := f.FetchAll(cmd.Context(), st); err != nil {
		return fmt.Errorf("fetching anniversaries: %w", err)
	}

	rep.Summary(st)
	rep.Statistics(st)
	rep.Sample(st, flagSample)

	// The two exports are independent: a failure in one is reported and must
	// not suppress the other.
	rep.ExportResult("CSV", flagCSVPath, export.CSV(st, flagCSVPath))
	rep.ExportResult("JSON", flagJSON, export.JSON(st, flagJSON))

	rep.Done(flagCSVPath, flagJSON)
	return nil
}

// envOr returns the environment value for key if set, otherwise fallback.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Execute runs the CLI. A .env file in the working directory, if present, is
// loaded before flag defaults are computed.
func Execute(ctx context.Context) {
	_ = godotenv.Load()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
