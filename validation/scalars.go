package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/reoring/koda"
	"github.com/reoring/koda/i18n"
	"github.com/reoring/koda/jsonable"
)

// DateLayout is the only layout Date accepts.
const DateLayout = "2006-01-02"

// scalar is shared by every leaf validator: a type check producing T, then
// every predicate with all failures collected.
type scalar[T any] struct {
	kind  nodeKind
	code  string
	check func(v any) (T, bool)
	preds []Predicate[T]
}

func newScalar[T any](kind nodeKind, code string, check func(any) (T, bool), preds []Predicate[T]) scalar[T] {
	predsAsAny(preds)
	return scalar[T]{kind: kind, code: code, check: check, preds: preds}
}

func (s scalar[T]) Validate(v any) koda.Result[T, jsonable.Value] {
	t, ok := s.check(v)
	if !ok {
		return koda.Err[T](FailList(i18n.T(s.code, nil)))
	}
	if fails := checkAll(t, s.preds); len(fails) > 0 {
		return koda.Err[T, jsonable.Value](fails)
	}
	return koda.Ok[T, jsonable.Value](t)
}

func (s scalar[T]) describe() node { return node{kind: s.kind, preds: predsAsAny(s.preds)} }

// String accepts strings.
func String(preds ...Predicate[string]) Validator[string] {
	return newScalar(kindString, i18n.CodeExpectedString, asString, preds)
}

// Integer accepts integers. Booleans, floats (even whole ones like 5.0) and
// numeric strings are rejected.
func Integer(preds ...Predicate[int]) Validator[int] {
	return newScalar(kindInteger, i18n.CodeExpectedInteger, asInt, preds)
}

// Float accepts floating point numbers only; integers are rejected.
func Float(preds ...Predicate[float64]) Validator[float64] {
	return newScalar(kindFloat, i18n.CodeExpectedFloat, asFloat, preds)
}

// Boolean accepts true and false.
func Boolean(preds ...Predicate[bool]) Validator[bool] {
	return newScalar(kindBoolean, i18n.CodeExpectedBoolean, asBool, preds)
}

// Null accepts only null.
func Null() Validator[struct{}] {
	return newScalar[struct{}](kindNull, i18n.CodeExpectedNull, asNull, nil)
}

// Date accepts strings formatted as yyyy-mm-dd and yields the date at UTC midnight.
func Date(preds ...Predicate[time.Time]) Validator[time.Time] {
	return newScalar(kindDate, i18n.CodeExpectedDate, asDate, preds)
}

// DateTime accepts RFC 3339 timestamps (fractional seconds optional).
func DateTime(preds ...Predicate[time.Time]) Validator[time.Time] {
	return newScalar(kindDateTime, i18n.CodeExpectedDateTime, asDateTime, preds)
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asNull(v any) (struct{}, bool) { return struct{}{}, v == nil }

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case json.Number:
		i, err := strconv.ParseInt(string(x), 10, 0)
		return int(i), err == nil
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case json.Number:
		// Integral literals are integers, not floats.
		if _, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return 0, false
		}
		f, err := strconv.ParseFloat(string(x), 64)
		return f, err == nil
	}
	return 0, false
}

func asDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	return t, err == nil
}

func asDateTime(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, true
		}
		return time.Time{}, false
	}
	return t, true
}
