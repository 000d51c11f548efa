// Package koda provides small algebraic containers for explicit absence and
// failure handling:
//
// - Maybe[A]: a value that may be absent (Just / Nothing)
// - Result[A, E]: a success or a failure (Ok / Err)
// - Either..Either5: exactly one of several typed slots
//
// Transformations that introduce a new type parameter are package functions
// (MapMaybe, FlatMapResult, ...) because Go methods cannot declare their own
// type parameters.
//
// Design policy:
// - Keep only containers and small helpers in the root package.
// - Put JSON validation under validation/, error values under jsonable/ and
//   OpenAPI output under openapi/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	age := koda.MappingGet(form, "age")
//	r := koda.MaybeToResult(age, "age missing")
//	n := koda.FlatMapResult(r, parseAge)
package koda
