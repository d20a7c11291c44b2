// Package coerce converts loosely typed raw values into warehouse column types.
// Nothing here returns an error: values that cannot be read become nil (or
// false for booleans).
package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bool reads boolean-like values. nil and anything unparseable are false.
func Bool(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	}

	f := Float(v)
	return f != nil && *f != 0
}

// Int reads integral ids. Fractional, non-finite and unparseable values are nil.
func Int(v any) *int64 {
	switch t := v.(type) {
	case nil:
		return nil
	case int64:
		return &t
	case int:
		n := int64(t)
		return &n
	case int32:
		n := int64(t)
		return &n
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return &n
		}
		return integral(Float(t))
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &n
		}
		return integral(Float(s))
	case bool:
		return nil
	}
	return integral(Float(v))
}

func integral(f *float64) *int64 {
	if f == nil || *f != math.Trunc(*f) || *f >= 1<<63 || *f < -(1<<63) {
		return nil
	}
	n := int64(*f)
	return &n
}

// Float reads numeric values. NaN, infinities and unparseable values are nil.
func Float(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int64:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// String renders scalars as text. nil and empty strings stay nil.
func String(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case json.Number:
		s = t.String()
	case bool:
		s = strconv.FormatBool(t)
	case float64:
		if math.IsNaN(t) {
			return nil
		}
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		s = fmt.Sprint(t)
	}
	if s == "" {
		return nil
	}
	return &s
}

// Text is String with nil as "".
func Text(v any) string {
	if s := String(v); s != nil {
		return *s
	}
	return ""
}

// IsNull reports whether v carries no value.
func IsNull(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(t)
	case string:
		return t == ""
	}
	return false
}
