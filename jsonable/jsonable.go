// Package jsonable defines the closed, JSON-serialisable value tree used for
// validation errors.
//
// A Value is one of String, Int, Float, Bool, Null, List or Map. The set is
// sealed: only this package can add variants.
package jsonable

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Value is a JSON-serialisable value.
type Value interface {
	jsonable()
}

type (
	String string
	Int    int64
	Float  float64
	Bool   bool
	Null   struct{}
	List   []Value
	Map    map[string]Value
)

func (String) jsonable() {}
func (Int) jsonable()    {}
func (Float) jsonable()  {}
func (Bool) jsonable()   {}
func (Null) jsonable()   {}
func (List) jsonable()   {}
func (Map) jsonable()    {}

// Strings builds a List of String values.
func Strings(ss ...string) List {
	out := make(List, len(ss))
	for i, s := range ss {
		out[i] = String(s)
	}
	return out
}

// From wraps a plain Go value. Supported inputs are strings, bools, nil, every
// integer and float kind, json.Number, []any, []string, map[string]any,
// map[string]string and values that are already a Value.
func From(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(x), nil
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("jsonable: %d overflows int64", x)
		}
		return Int(x), nil
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return Int(i), nil
		}
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return nil, fmt.Errorf("jsonable: invalid number %q", x)
		}
		return Float(f), nil
	case []string:
		return Strings(x...), nil
	case []any:
		out := make(List, len(x))
		for i, e := range x {
			w, err := From(e)
			if err != nil {
				return nil, err
			}
			out[i] = w
		}
		return out, nil
	case map[string]string:
		out := make(Map, len(x))
		for k, e := range x {
			out[k] = String(e)
		}
		return out, nil
	case map[string]any:
		out := make(Map, len(x))
		for k, e := range x {
			w, err := From(e)
			if err != nil {
				return nil, err
			}
			out[k] = w
		}
		return out, nil
	}
	return nil, fmt.Errorf("jsonable: unsupported type %T", v)
}

// MustFrom is like From but panics on unsupported input.
func MustFrom(v any) Value {
	w, err := From(v)
	if err != nil {
		panic(err)
	}
	return w
}

// Unwrap converts a Value back into plain Go values: string, int64, float64,
// bool, nil, []any and map[string]any.
func Unwrap(v Value) any {
	switch x := v.(type) {
	case String:
		return string(x)
	case Int:
		return int64(x)
	case Float:
		return float64(x)
	case Bool:
		return bool(x)
	case Null, nil:
		return nil
	case List:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Unwrap(e)
		}
		return out
	case Map:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Unwrap(e)
		}
		return out
	}
	return nil
}

// Equal reports structural equality. A nil Value equals Null.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	return reflect.DeepEqual(normalizeNil(a), normalizeNil(b))
}

func normalizeNil(v Value) Value {
	switch x := v.(type) {
	case List:
		out := make(List, len(x))
		for i, e := range x {
			if e == nil {
				e = Null{}
			}
			out[i] = normalizeNil(e)
		}
		return out
	case Map:
		out := make(Map, len(x))
		for k, e := range x {
			if e == nil {
				e = Null{}
			}
			out[k] = normalizeNil(e)
		}
		return out
	}
	return v
}

// Marshal renders v as compact JSON with object keys sorted.
func Marshal(v Value) ([]byte, error) {
	return gojson.Marshal(Unwrap(v))
}

// MarshalIndent renders v as indented JSON with object keys sorted.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(Unwrap(v), prefix, indent)
}

// Keys returns the keys of m in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToString renders the value as JSON, falling back to fmt formatting.
func ToString(v Value) string {
	b, err := Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", Unwrap(v))
	}
	return string(b)
}
