package kvstore

import (
	"encoding/json"
	"regexp"
	"time"
)

// Stored documents keep their date values through a round trip by replacing
// every timestamp with a tagged object:
//
//	{"__type": "Date", "iso": "2024-01-15T10:30:00Z"}
//
// Tagging is applied recursively to the whole document, nested collections
// included. Any other value is stored as-is.
const (
	dateTypeTag = "Date"
	typeField   = "__type"
	isoField    = "iso"
)

// Timestamps serialize as RFC3339; a date-only string like "2024-01-15" is
// not a timestamp and stays untouched.
var isoTimestampRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+\-]\d{2}:\d{2})$`)

// MarshalTagged encodes v as JSON with all timestamp values tagged.
func MarshalTagged(v any) ([]byte, error) {
	plain, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var tree any
	if err := json.Unmarshal(plain, &tree); err != nil {
		return nil, err
	}

	return json.Marshal(tagDates(tree))
}

// UnmarshalTagged decodes data produced by MarshalTagged into v. Tagged date
// objects collapse back to RFC3339 strings first, so time.Time fields parse
// them natively.
func UnmarshalTagged(data []byte, v any) error {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return err
	}

	plain, err := json.Marshal(untagDates(tree))
	if err != nil {
		return err
	}

	return json.Unmarshal(plain, v)
}

func tagDates(node any) any {
	switch n := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, v := range n {
			out[k] = tagDates(v)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, v := range n {
			out[i] = tagDates(v)
		}
		return out
	case string:
		if isTimestamp(n) {
			return map[string]any{typeField: dateTypeTag, isoField: n}
		}
		return n
	default:
		return node
	}
}

func untagDates(node any) any {
	switch n := node.(type) {
	case map[string]any:
		if iso, ok := taggedDate(n); ok {
			return iso
		}
		out := make(map[string]any, len(n))
		for k, v := range n {
			out[k] = untagDates(v)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, v := range n {
			out[i] = untagDates(v)
		}
		return out
	default:
		return node
	}
}

func taggedDate(m map[string]any) (string, bool) {
	if len(m) != 2 {
		return "", false
	}
	if tag, ok := m[typeField].(string); !ok || tag != dateTypeTag {
		return "", false
	}
	iso, ok := m[isoField].(string)
	return iso, ok
}

func isTimestamp(s string) bool {
	if !isoTimestampRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.RFC3339Nano, s)
	return err == nil
}
