package validation

import (
	"fmt"

	"github.com/reoring/koda"
	"github.com/reoring/koda/jsonable"
)

type labeled[T any] struct {
	name  string
	inner Validator[T]
}

// Labeled names a validator so OneOf failures are reported under name instead
// of "variant {i}". Validation is delegated unchanged.
func Labeled[T any](name string, v Validator[T]) Validator[T] {
	mustValidator(v, "Labeled validator")
	return labeled[T]{name: name, inner: v}
}

func (l labeled[T]) Validate(v any) koda.Result[T, jsonable.Value] { return l.inner.Validate(v) }
func (l labeled[T]) label() string                                 { return l.name }

func (l labeled[T]) describe() node {
	if d, ok := l.inner.(describer); ok {
		return d.describe()
	}
	// Unknown inner validators surface as unhandled during schema generation.
	return node{}
}

func variantLabel(v any, i int) string {
	if l, ok := v.(labeler); ok {
		return l.label()
	}
	return fmt.Sprintf("variant %d", i)
}

// oneOf holds the variant validators in declaration order.
type oneOf struct{ variants []any }

func (o oneOf) describe() node { return node{kind: kindOneOf, variants: o.variants} }

// OneOf2 tries each validator in order; the first success wins and is tagged
// with its position. When every variant fails, all failures are reported,
// keyed by label ("variant 1", "variant 2", ... unless Labeled).
func OneOf2[A, B any](v1 Validator[A], v2 Validator[B]) Validator[koda.Either[A, B]] {
	mustValidator(v1, "OneOf2 variant")
	mustValidator(v2, "OneOf2 variant")
	return oneOf2[A, B]{oneOf: oneOf{variants: []any{v1, v2}}, v1: v1, v2: v2}
}

type oneOf2[A, B any] struct {
	oneOf
	v1 Validator[A]
	v2 Validator[B]
}

func (o oneOf2[A, B]) Validate(v any) koda.Result[koda.Either[A, B], jsonable.Value] {
	var errs treeBuilder
	r1 := o.v1.Validate(v)
	if x, ok := r1.Get(); ok {
		return koda.Ok[koda.Either[A, B], jsonable.Value](koda.First[A, B](x))
	}
	e1, _ := r1.GetErr()
	errs.add(variantLabel(o.v1, 1), e1)
	r2 := o.v2.Validate(v)
	if x, ok := r2.Get(); ok {
		return koda.Ok[koda.Either[A, B], jsonable.Value](koda.Second[A, B](x))
	}
	e2, _ := r2.GetErr()
	errs.add(variantLabel(o.v2, 2), e2)
	return koda.Err[koda.Either[A, B]](errs.value())
}

// OneOf3 is OneOf2 over 3 variants.
func OneOf3[A, B, C any](v1 Validator[A], v2 Validator[B], v3 Validator[C]) Validator[koda.Either3[A, B, C]] {
	mustValidator(v1, "OneOf3 variant")
	mustValidator(v2, "OneOf3 variant")
	mustValidator(v3, "OneOf3 variant")
	return oneOf3[A, B, C]{oneOf: oneOf{variants: []any{v1, v2, v3}}, v1: v1, v2: v2, v3: v3}
}

type oneOf3[A, B, C any] struct {
	oneOf
	v1 Validator[A]
	v2 Validator[B]
	v3 Validator[C]
}

func (o oneOf3[A, B, C]) Validate(v any) koda.Result[koda.Either3[A, B, C], jsonable.Value] {
	var errs treeBuilder
	r1 := o.v1.Validate(v)
	if x, ok := r1.Get(); ok {
		return koda.Ok[koda.Either3[A, B, C], jsonable.Value](koda.First3[A, B, C](x))
	}
	e1, _ := r1.GetErr()
	errs.add(variantLabel(o.v1, 1), e1)
	r2 := o.v2.Validate(v)
	if x, ok := r2.Get(); ok {
		return koda.Ok[koda.Either3[A, B, C], jsonable.Value](koda.Second3[A, B, C](x))
	}
	e2, _ := r2.GetErr()
	errs.add(variantLabel(o.v2, 2), e2)
	r3 := o.v3.Validate(v)
	if x, ok := r3.Get(); ok {
		return koda.Ok[koda.Either3[A, B, C], jsonable.Value](koda.Third3[A, B, C](x))
	}
	e3, _ := r3.GetErr()
	errs.add(variantLabel(o.v3, 3), e3)
	return koda.Err[koda.Either3[A, B, C]](errs.value())
}

// OneOf4 is OneOf2 over 4 variants.
func OneOf4[A, B, C, D any](v1 Validator[A], v2 Validator[B], v3 Validator[C], v4 Validator[D]) Validator[koda.Either4[A, B, C, D]] {
	mustValidator(v1, "OneOf4 variant")
	mustValidator(v2, "OneOf4 variant")
	mustValidator(v3, "OneOf4 variant")
	mustValidator(v4, "OneOf4 variant")
	return oneOf4[A, B, C, D]{oneOf: oneOf{variants: []any{v1, v2, v3, v4}}, v1: v1, v2: v2, v3: v3, v4: v4}
}

type oneOf4[A, B, C, D any] struct {
	oneOf
	v1 Validator[A]
	v2 Validator[B]
	v3 Validator[C]
	v4 Validator[D]
}

func (o oneOf4[A, B, C, D]) Validate(v any) koda.Result[koda.Either4[A, B, C, D], jsonable.Value] {
	var errs treeBuilder
	r1 := o.v1.Validate(v)
	if x, ok := r1.Get(); ok {
		return koda.Ok[koda.Either4[A, B, C, D], jsonable.Value](koda.First4[A, B, C, D](x))
	}
	e1, _ := r1.GetErr()
	errs.add(variantLabel(o.v1, 1), e1)
	r2 := o.v2.Validate(v)
	if x, ok := r2.Get(); ok {
		return koda.Ok[koda.Either4[A, B, C, D], jsonable.Value](koda.Second4[A, B, C, D](x))
	}
	e2, _ := r2.GetErr()
	errs.add(variantLabel(o.v2, 2), e2)
	r3 := o.v3.Validate(v)
	if x, ok := r3.Get(); ok {
		return koda.Ok[koda.Either4[A, B, C, D], jsonable.Value](koda.Third4[A, B, C, D](x))
	}
	e3, _ := r3.GetErr()
	errs.add(variantLabel(o.v3, 3), e3)
	r4 := o.v4.Validate(v)
	if x, ok := r4.Get(); ok {
		return koda.Ok[koda.Either4[A, B, C, D], jsonable.Value](koda.Fourth4[A, B, C, D](x))
	}
	e4, _ := r4.GetErr()
	errs.add(variantLabel(o.v4, 4), e4)
	return koda.Err[koda.Either4[A, B, C, D]](errs.value())
}

// OneOf5 is OneOf2 over 5 variants.
func OneOf5[A, B, C, D, E any](v1 Validator[A], v2 Validator[B], v3 Validator[C], v4 Validator[D], v5 Validator[E]) Validator[koda.Either5[A, B, C, D, E]] {
	mustValidator(v1, "OneOf5 variant")
	mustValidator(v2, "OneOf5 variant")
	mustValidator(v3, "OneOf5 variant")
	mustValidator(v4, "OneOf5 variant")
	mustValidator(v5, "OneOf5 variant")
	return oneOf5[A, B, C, D, E]{oneOf: oneOf{variants: []any{v1, v2, v3, v4, v5}}, v1: v1, v2: v2, v3: v3, v4: v4, v5: v5}
}

type oneOf5[A, B, C, D, E any] struct {
	oneOf
	v1 Validator[A]
	v2 Validator[B]
	v3 Validator[C]
	v4 Validator[D]
	v5 Validator[E]
}

func (o oneOf5[A, B, C, D, E]) Validate(v any) koda.Result[koda.Either5[A, B, C, D, E], jsonable.Value] {
	var errs treeBuilder
	r1 := o.v1.Validate(v)
	if x, ok := r1.Get(); ok {
		return koda.Ok[koda.Either5[A, B, C, D, E], jsonable.Value](koda.First5[A, B, C, D, E](x))
	}
	e1, _ := r1.GetErr()
	errs.add(variantLabel(o.v1, 1), e1)
	r2 := o.v2.Validate(v)
	if x, ok := r2.Get(); ok {
		return koda.Ok[koda.Either5[A, B, C, D, E], jsonable.Value](koda.Second5[A, B, C, D, E](x))
	}
	e2, _ := r2.GetErr()
	errs.add(variantLabel(o.v2, 2), e2)
	r3 := o.v3.Validate(v)
	if x, ok := r3.Get(); ok {
		return koda.Ok[koda.Either5[A, B, C, D, E], jsonable.Value](koda.Third5[A, B, C, D, E](x))
	}
	e3, _ := r3.GetErr()
	errs.add(variantLabel(o.v3, 3), e3)
	r4 := o.v4.Validate(v)
	if x, ok := r4.Get(); ok {
		return koda.Ok[koda.Either5[A, B, C, D, E], jsonable.Value](koda.Fourth5[A, B, C, D, E](x))
	}
	e4, _ := r4.GetErr()
	errs.add(variantLabel(o.v4, 4), e4)
	r5 := o.v5.Validate(v)
	if x, ok := r5.Get(); ok {
		return koda.Ok[koda.Either5[A, B, C, D, E], jsonable.Value](koda.Fifth5[A, B, C, D, E](x))
	}
	e5, _ := r5.GetErr()
	errs.add(variantLabel(o.v5, 5), e5)
	return koda.Err[koda.Either5[A, B, C, D, E]](errs.value())
}
