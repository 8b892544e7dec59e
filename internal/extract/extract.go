package extract

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/ASecCraft/anniv-fetch/internal/logger"
)

// separator joins list entries the way the upstream dataset does, with the
// ideographic comma used in Japanese enumerations.
const separator = "、"

// candidateKeys is the ordered priority list of object keys that may carry the
// anniversary list. The first key present wins; reordering changes output for
// responses exposing more than one, so the order is fixed.
var candidateKeys = []string{"events", "data", "anniv", "anniversaries", "items"}

// Text derives the display string for a response body. It is deterministic and
// never fails: non-JSON bodies and any internal anomaly fall back to the
// trimmed raw body text.
func Text(body []byte) (text string) {
	raw := strings.TrimSpace(string(body))

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("anomaly while extracting text, falling back to raw body", logger.Fields{
				"panic": r,
			})
			text = raw
		}
	}()

	value, ok := parse(body)
	if !ok {
		return raw
	}

	switch v := value.(type) {
	case []any:
		return joinList(v)
	case map[string]any:
		return fromObject(v)
	default:
		return stringify(v)
	}
}

// parse decodes body as a single JSON value. Numbers are kept as json.Number
// so their literal form survives stringification. Trailing non-whitespace
// content disqualifies the body from being treated as JSON.
func parse(body []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return value, true
}

// fromObject resolves an object body: the first candidate key present decides
// the result; otherwise the whole object is re-serialized as JSON text.
func fromObject(obj map[string]any) string {
	for _, key := range candidateKeys {
		items, present := obj[key]
		if !present {
			continue
		}
		if list, isList := items.([]any); isList {
			return joinList(list)
		}
		return stringify(items)
	}
	return marshalLiteral(obj)
}

// joinList stringifies every non-empty element and joins them with the
// ideographic comma. Empty elements (null, "", 0, false, empty collections)
// are skipped.
func joinList(list []any) string {
	names := make([]string, 0, len(list))
	for _, item := range list {
		if isEmpty(item) {
			continue
		}
		names = append(names, stringify(item))
	}
	return strings.Join(names, separator)
}

// isEmpty reports whether a decoded JSON value counts as "no entry".
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	default:
		return false
	}
}

// stringify converts a decoded JSON value to its display form: strings are
// taken verbatim, everything else keeps its JSON literal form.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case json.Number:
		return x.String()
	default:
		return marshalLiteral(x)
	}
}

// marshalLiteral re-serializes a decoded value as JSON text with non-ASCII
// characters and HTML metacharacters emitted literally.
func marshalLiteral(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// Decoded JSON values always re-encode; reaching here means the
		// value is malformed beyond what the contract anticipates.
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
