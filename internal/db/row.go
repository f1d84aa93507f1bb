package db

import (
	"fmt"
	"strings"
)

// Row is a single result row keyed by column name. Column values keep
// their driver type; the accessors below convert on read so callers never
// parse textual representations themselves.
type Row map[string]any

// normalizeValue maps driver values to the small set Row works with.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	default:
		return v
	}
}

// String returns the column as text, or the empty string when the column
// is NULL or missing.
func (r Row) String(column string) string {
	s, _ := r.NullString(column)
	return s
}

// NullString returns the column as text and whether it held a non-NULL
// value.
func (r Row) NullString(column string) (string, bool) {
	v, ok := r[column]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Bool returns the column as a boolean. NULL and missing columns read as
// false. Numeric and textual driver representations are accepted.
func (r Row) Bool(column string) bool {
	v, ok := r[column]
	if !ok || v == nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case string:
		switch strings.ToLower(x) {
		case "t", "true", "1":
			return true
		}
	}
	return false
}
