package validation

import (
	"github.com/reoring/koda"
	"github.com/reoring/koda/i18n"
	"github.com/reoring/koda/jsonable"
)

type nullable[T any] struct{ inner Validator[T] }

// Nullable maps null to Nothing and delegates anything else to inner, wrapping
// a success in Just.
func Nullable[T any](inner Validator[T]) Validator[koda.Maybe[T]] {
	mustValidator(inner, "Nullable validator")
	return nullable[T]{inner: inner}
}

func (n nullable[T]) Validate(v any) koda.Result[koda.Maybe[T], jsonable.Value] {
	if v == nil {
		return koda.Ok[koda.Maybe[T], jsonable.Value](koda.Nothing[T]())
	}
	return koda.MapResult(n.inner.Validate(v), koda.Just[T])
}

func (n nullable[T]) describe() node { return node{kind: kindNullable, inner: n.inner} }

type arrayOf[T any] struct {
	item  Validator[T]
	preds []Predicate[[]any]
}

// ArrayOf validates every element with item. List predicates such as
// MinItems see the raw input slice. Element failures are keyed "index {i}"
// and list failures "__array__".
func ArrayOf[T any](item Validator[T], preds ...Predicate[[]any]) Validator[[]T] {
	mustValidator(item, "ArrayOf item validator")
	predsAsAny(preds)
	return arrayOf[T]{item: item, preds: preds}
}

func (a arrayOf[T]) Validate(v any) koda.Result[[]T, jsonable.Value] {
	in, ok := v.([]any)
	if !ok {
		return koda.Err[[]T](jsonable.Value(jsonable.Map{InvalidTypeKey: FailList(i18n.T(i18n.CodeExpectedArray, nil))}))
	}
	var errs treeBuilder
	if fails := checkAll(in, a.preds); len(fails) > 0 {
		errs.add(ArrayErrorsKey, fails)
	}
	out := make([]T, 0, len(in))
	for i, e := range in {
		r := a.item.Validate(e)
		if t, ok := r.Get(); ok {
			out = append(out, t)
			continue
		}
		err, _ := r.GetErr()
		errs.add(indexKey(i), err)
	}
	if !errs.empty() {
		return koda.Err[[]T](errs.value())
	}
	return koda.Ok[[]T, jsonable.Value](out)
}

func (a arrayOf[T]) describe() node {
	return node{kind: kindArray, inner: a.item, preds: predsAsAny(a.preds)}
}

type mapOf[K comparable, V any] struct {
	key   Validator[K]
	val   Validator[V]
	preds []Predicate[map[string]any]
}

// MapOf validates every entry: keys with key (failures under "{k} (key)") and
// values with val (failures under "{k}"). Map predicates report under
// "__object__" first. Colliding labels keep every error.
func MapOf[K comparable, V any](key Validator[K], val Validator[V], preds ...Predicate[map[string]any]) Validator[map[K]V] {
	mustValidator(key, "MapOf key validator")
	mustValidator(val, "MapOf value validator")
	predsAsAny(preds)
	return mapOf[K, V]{key: key, val: val, preds: preds}
}

func (m mapOf[K, V]) Validate(v any) koda.Result[map[K]V, jsonable.Value] {
	in, ok := v.(map[string]any)
	if !ok {
		return koda.Err[map[K]V](jsonable.Value(jsonable.Map{InvalidTypeKey: FailList(i18n.T(i18n.CodeExpectedMap, nil))}))
	}
	var errs treeBuilder
	if fails := checkAll(in, m.preds); len(fails) > 0 {
		errs.add(ObjectErrorsKey, fails)
	}
	out := make(map[K]V, len(in))
	for _, k := range sortedKeys(in) {
		kr := m.key.Validate(k)
		vr := m.val.Validate(in[k])
		if e, bad := kr.GetErr(); bad {
			errs.add(k+" (key)", e)
		}
		if e, bad := vr.GetErr(); bad {
			errs.add(k, e)
		}
		kk, kok := kr.Get()
		vv, vok := vr.Get()
		if kok && vok {
			out[kk] = vv
		}
	}
	if !errs.empty() {
		return koda.Err[map[K]V](errs.value())
	}
	return koda.Ok[map[K]V, jsonable.Value](out)
}

func (m mapOf[K, V]) describe() node {
	return node{kind: kindMap, key: m.key, inner: m.val, preds: predsAsAny(m.preds)}
}
