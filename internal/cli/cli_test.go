package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFullPipeline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		mmdd := parts[len(parts)-1]
		if mmdd == "0213" {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"anniv": ["記念日%s"]}`, mmdd)
	}))
	defer srv.Close()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "anniversaries.csv")
	jsonPath := filepath.Join(dir, "anniversaries.json")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--base-url", srv.URL,
		"--delay", "0s",
		"--csv", csvPath,
		"--json", jsonPath,
		"--sample", "3",
	})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	// CSV: header plus 365 rows.
	csvRaw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(csvRaw), "\n"), "\n")
	assert.Len(t, lines, 366)
	assert.Equal(t, "date,name", lines[0])

	// JSON: 365 keys, failed date empty.
	jsonRaw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var data map[string]string
	require.NoError(t, json.Unmarshal(jsonRaw, &data))
	assert.Len(t, data, 365)
	assert.Equal(t, "", data["02-13"])
	assert.Equal(t, "記念日0101", data["01-01"])

	// Console narrative.
	text := out.String()
	assert.Contains(t, text, "=== Anniversary dataset fetch: 365 days ===")
	assert.Contains(t, text, "Succeeded: 364/365")
	assert.Contains(t, text, "✗ 02-13:")
	assert.Contains(t, text, "✓ CSV saved:")
	assert.Contains(t, text, "✓ JSON saved:")
	assert.Contains(t, text, "Run complete")
}

func TestExportFailureDoesNotAbortOtherExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["ok"]`)
	}))
	defer srv.Close()

	dir := t.TempDir()
	badCSV := filepath.Join(dir, "missing", "out.csv")
	jsonPath := filepath.Join(dir, "anniversaries.json")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--base-url", srv.URL,
		"--delay", "0s",
		"--csv", badCSV,
		"--json", jsonPath,
	})

	require.NoError(t, cmd.ExecuteContext(context.Background()), "export failures must not fail the run")

	assert.Contains(t, out.String(), "✗ CSV export failed")
	assert.FileExists(t, jsonPath, "JSON export must proceed despite the CSV failure")
}

func TestEnvSeedsFlagDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://example.test/anniv")
	t.Setenv(EnvCSVPath, "/tmp/custom.csv")

	cmd := NewRootCmd()

	baseURL, err := cmd.Flags().GetString("base-url")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/anniv", baseURL)

	csvPath, err := cmd.Flags().GetString("csv")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.csv", csvPath)

	jsonPath, err := cmd.Flags().GetString("json")
	require.NoError(t, err)
	assert.Equal(t, DefaultJSONPath, jsonPath, "unset env falls back to the default")
}

func TestEnvOr(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback string
		want     string
	}{
		{name: "env set", value: "from-env", fallback: "default", want: "from-env"},
		{name: "env empty", value: "", fallback: "default", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "ANNIV_TEST_ENV_OR"
			if tt.value != "" {
				t.Setenv(key, tt.value)
			} else {
				t.Setenv(key, "")
			}
			if got := envOr(key, tt.fallback); got != tt.want {
				t.Errorf("envOr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCancelledContextFailsRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["ok"]`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--base-url", srv.URL,
		"--delay", "0s",
		"--csv", filepath.Join(dir, "out.csv"),
		"--json", filepath.Join(dir, "out.json"),
	})

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
