package validation

import (
	"github.com/reoring/koda"
	"github.com/reoring/koda/jsonable"
)

type lazy[T any] struct {
	fn        func() Validator[T]
	recurrent bool
}

// Lazy defers building a validator until it is used, which lets a validator
// refer to itself:
//
//	var comment validation.Validator[Comment]
//	comment = validation.Obj2(
//	    validation.Key("name", validation.String()),
//	    validation.Key("replies", validation.ArrayOf(validation.Lazy(func() validation.Validator[Comment] { return comment }, true))),
//	    newComment)
//
// fn is called on every validation. recurrent only affects schema
// generation: a recurrent Lazy is emitted as a $ref to the schema being
// generated instead of being expanded.
func Lazy[T any](fn func() Validator[T], recurrent bool) Validator[T] {
	if fn == nil {
		panic("validation: nil Lazy thunk")
	}
	return lazy[T]{fn: fn, recurrent: recurrent}
}

func (l lazy[T]) Validate(v any) koda.Result[T, jsonable.Value] { return l.fn().Validate(v) }

func (l lazy[T]) describe() node {
	return node{kind: kindLazy, recur: l.recurrent, thunk: func() any { return l.fn() }}
}
