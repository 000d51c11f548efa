// Package jsonvalue canonicalises decoded documents so every driver hands the
// validators the same shapes: nil, bool, string, int64, float64, []any and
// map[string]any.
package jsonvalue

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Number classifies a JSON number literal: integral text becomes int64,
// anything else float64. Integral text that overflows int64 falls back to float64.
func Number(text string) (any, error) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("jsonvalue: invalid number %q", text)
	}
	return f, nil
}

// Normalize walks v and converts numbers and non-string-keyed maps into the
// canonical representation.
func Normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, string, int64, float64:
		return x, nil
	case json.Number:
		return Number(string(x))
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > 1<<63-1 {
			return float64(x), nil
		}
		return int64(x), nil
	case float32:
		return float64(x), nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			n, err := Normalize(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			n, err := Normalize(e)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			n, err := Normalize(e)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	}
	// Decoders that define their own Number string type.
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String && rv.Type().Name() == "Number" {
		return Number(rv.String())
	}
	return nil, fmt.Errorf("jsonvalue: unsupported decoded type %T", v)
}

// Depth reports the container nesting depth of a canonical value. Scalars
// have depth 0, an empty array or object has depth 1.
func Depth(v any) int {
	switch x := v.(type) {
	case []any:
		d := 0
		for _, e := range x {
			if n := Depth(e); n > d {
				d = n
			}
		}
		return d + 1
	case map[string]any:
		d := 0
		for _, e := range x {
			if n := Depth(e); n > d {
				d = n
			}
		}
		return d + 1
	}
	return 0
}
