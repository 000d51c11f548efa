package validation

import (
	"github.com/reoring/koda"
	"github.com/reoring/koda/i18n"
	"github.com/reoring/koda/jsonable"
)

// TupleCheck inspects a fully built tuple. A failure is reported under
// "__array__" unless it is already an error map.
type TupleCheck[T any] func(T) koda.Result[T, jsonable.Value]

type tuple struct{ slots []any }

func (t tuple) describe() node { return node{kind: kindTuple, variants: t.slots} }

// tupleInput checks the array shape shared by every tuple arity.
func tupleInput(v any, n int) ([]any, jsonable.Value) {
	in, ok := v.([]any)
	if !ok || len(in) != n {
		text := i18n.T(i18n.CodeTupleLength, map[string]string{"n": itoa(n)})
		return nil, jsonable.Map{InvalidTypeKey: FailList(text)}
	}
	return in, nil
}

func slot[T any](v Validator[T], in []any, i int) koda.Result[T, keyedError] {
	return koda.MapErr(v.Validate(in[i]), func(e jsonable.Value) keyedError {
		return keyedError{key: indexKey(i), err: e}
	})
}

func finishTuple[T any](res koda.Result[T, []keyedError], checks []TupleCheck[T]) koda.Result[T, jsonable.Value] {
	out, ok := res.Get()
	if !ok {
		errs, _ := res.GetErr()
		var tb treeBuilder
		tb.addAll(errs)
		return koda.Err[T](tb.value())
	}
	for _, check := range checks {
		if check == nil {
			continue
		}
		r := check(out)
		if e, bad := r.GetErr(); bad {
			return koda.Err[T](underKey(ArrayErrorsKey, e))
		}
		out, _ = r.Get()
	}
	return koda.Ok[T, jsonable.Value](out)
}

type tuple2[A, B any] struct {
	tuple
	v1     Validator[A]
	v2     Validator[B]
	checks []TupleCheck[koda.Tuple2[A, B]]
}

// Tuple2 validates a two-element array positionally. Wrong shapes fail under
// "invalid type"; slot failures are keyed "index {i}".
func Tuple2[A, B any](v1 Validator[A], v2 Validator[B], checks ...TupleCheck[koda.Tuple2[A, B]]) Validator[koda.Tuple2[A, B]] {
	mustValidator(v1, "Tuple2 slot")
	mustValidator(v2, "Tuple2 slot")
	return tuple2[A, B]{tuple: tuple{slots: []any{v1, v2}}, v1: v1, v2: v2, checks: checks}
}

func (t tuple2[A, B]) Validate(v any) koda.Result[koda.Tuple2[A, B], jsonable.Value] {
	in, bad := tupleInput(v, 2)
	if bad != nil {
		return koda.Err[koda.Tuple2[A, B]](bad)
	}
	res := ValidateAndMap2(slot(t.v1, in, 0), slot(t.v2, in, 1), func(a A, b B) koda.Tuple2[A, B] {
		return koda.Tuple2[A, B]{V1: a, V2: b}
	})
	return finishTuple(res, t.checks)
}

type tuple3[A, B, C any] struct {
	tuple
	v1     Validator[A]
	v2     Validator[B]
	v3     Validator[C]
	checks []TupleCheck[koda.Tuple3[A, B, C]]
}

// Tuple3 is Tuple2 for three-element arrays.
func Tuple3[A, B, C any](v1 Validator[A], v2 Validator[B], v3 Validator[C], checks ...TupleCheck[koda.Tuple3[A, B, C]]) Validator[koda.Tuple3[A, B, C]] {
	mustValidator(v1, "Tuple3 slot")
	mustValidator(v2, "Tuple3 slot")
	mustValidator(v3, "Tuple3 slot")
	return tuple3[A, B, C]{tuple: tuple{slots: []any{v1, v2, v3}}, v1: v1, v2: v2, v3: v3, checks: checks}
}

func (t tuple3[A, B, C]) Validate(v any) koda.Result[koda.Tuple3[A, B, C], jsonable.Value] {
	in, bad := tupleInput(v, 3)
	if bad != nil {
		return koda.Err[koda.Tuple3[A, B, C]](bad)
	}
	res := ValidateAndMap3(slot(t.v1, in, 0), slot(t.v2, in, 1), slot(t.v3, in, 2), func(a A, b B, c C) koda.Tuple3[A, B, C] {
		return koda.Tuple3[A, B, C]{V1: a, V2: b, V3: c}
	})
	return finishTuple(res, t.checks)
}
