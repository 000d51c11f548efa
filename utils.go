package koda

import (
	"fmt"
	"sync"
)

// Identity returns its argument.
func Identity[A any](a A) A { return a }

// Always returns a function that ignores its argument and returns a.
func Always[A, B any](a A) func(B) A { return func(B) A { return a } }

// Compose returns g after f.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// LoadOnce wraps fn so it runs at most once; later calls return the cached value.
// Safe for concurrent use.
func LoadOnce[A any](fn func() A) func() A {
	var (
		once sync.Once
		val  A
	)
	return func() A {
		once.Do(func() { val = fn() })
		return val
	}
}

// SafeTry runs fn and converts a panic into an Err. A returned error is also Err.
func SafeTry[A any](fn func() (A, error)) (res Result[A, error]) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				res = Err[A](e)
				return
			}
			res = Err[A](fmt.Errorf("panic: %v", r))
		}
	}()
	a, err := fn()
	if err != nil {
		return Err[A](err)
	}
	return Ok[A, error](a)
}

// MaybeToResult converts Nothing into Err(fail).
func MaybeToResult[A, E any](m Maybe[A], fail E) Result[A, E] {
	if m.just {
		return Ok[A, E](m.val)
	}
	return Err[A](fail)
}

// ResultToMaybe drops the failure value of r.
func ResultToMaybe[A, E any](r Result[A, E]) Maybe[A] { return r.ToMaybe() }

// ToMaybe turns a nil pointer into Nothing and a non-nil one into Just(*p).
func ToMaybe[A any](p *A) Maybe[A] {
	if p == nil {
		return Nothing[A]()
	}
	return Just(*p)
}

// MappingGet looks up key in m.
func MappingGet[K comparable, V any](m map[K]V, key K) Maybe[V] {
	if v, ok := m[key]; ok {
		return Just(v)
	}
	return Nothing[V]()
}

func sprint(v any) string { return fmt.Sprintf("%v", v) }
