package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ASecCraft/anniv-fetch/internal/store"
)

// CSV writes the dataset as a comma-separated file with a "date,name" header
// and one row per key in ascending key order.
func CSV(st *store.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "name"}); err != nil {
		f.Close()
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, key := range st.SortedKeys() {
		if err := w.Write([]string{key, st.Text(key)}); err != nil {
			f.Close()
			return fmt.Errorf("writing CSV row %s: %w", key, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing CSV file: %w", err)
	}
	return nil
}

// JSON writes the dataset as a single flat JSON object with keys in ascending
// order, two-space indentation, and non-ASCII characters emitted literally.
func JSON(st *store.Store, path string) error {
	data := make(map[string]string, st.Len())
	for _, key := range st.SortedKeys() {
		data[key] = st.Text(key)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing JSON file: %w", err)
	}
	return nil
}
