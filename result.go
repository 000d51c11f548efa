package koda

// Result is either a success value (Ok) or a failure value (Err).
// The zero value is Err with the zero E; construct with Ok or Err.
type Result[A, E any] struct {
	val A
	err E
	ok  bool
}

func Ok[A, E any](a A) Result[A, E]  { return Result[A, E]{val: a, ok: true} }
func Err[A, E any](e E) Result[A, E] { return Result[A, E]{err: e} }

func (r Result[A, E]) IsOk() bool  { return r.ok }
func (r Result[A, E]) IsErr() bool { return !r.ok }

// Get returns the success value and whether the Result is Ok.
func (r Result[A, E]) Get() (A, bool) { return r.val, r.ok }

// GetErr returns the failure value and whether the Result is Err.
func (r Result[A, E]) GetErr() (E, bool) { return r.err, !r.ok }

// GetOrElse returns the success value or fallback.
func (r Result[A, E]) GetOrElse(fallback A) A {
	if r.ok {
		return r.val
	}
	return fallback
}

// Swap exchanges the success and failure sides.
func (r Result[A, E]) Swap() Result[E, A] {
	if r.ok {
		return Err[E](r.val)
	}
	return Ok[E, A](r.err)
}

// ToMaybe drops the failure value.
func (r Result[A, E]) ToMaybe() Maybe[A] {
	if r.ok {
		return Just(r.val)
	}
	return Nothing[A]()
}

func (r Result[A, E]) String() string {
	if r.ok {
		return "Ok(" + sprint(r.val) + ")"
	}
	return "Err(" + sprint(r.err) + ")"
}

// MapResult transforms the success value.
func MapResult[A, B, E any](r Result[A, E], fn func(A) B) Result[B, E] {
	if !r.ok {
		return Err[B](r.err)
	}
	return Ok[B, E](fn(r.val))
}

// MapErr transforms the failure value.
func MapErr[A, E, F any](r Result[A, E], fn func(E) F) Result[A, F] {
	if r.ok {
		return Ok[A, F](r.val)
	}
	return Err[A](fn(r.err))
}

// FlatMapResult chains a Result-returning function on success.
func FlatMapResult[A, B, E any](r Result[A, E], fn func(A) Result[B, E]) Result[B, E] {
	if !r.ok {
		return Err[B](r.err)
	}
	return fn(r.val)
}

// FlatMapErr chains a Result-returning function on failure, allowing recovery.
func FlatMapErr[A, E, F any](r Result[A, E], fn func(E) Result[A, F]) Result[A, F] {
	if r.ok {
		return Ok[A, F](r.val)
	}
	return fn(r.err)
}

// ApplyResult applies a wrapped function to a wrapped value. When the value is
// Err its error wins; otherwise the function's error is returned.
func ApplyResult[A, B, E any](r Result[A, E], fn Result[func(A) B, E]) Result[B, E] {
	if !r.ok {
		return Err[B](r.err)
	}
	if !fn.ok {
		return Err[B](fn.err)
	}
	return Ok[B, E](fn.val(r.val))
}

// SwitchResult folds a Result into a single value.
func SwitchResult[A, E, B any](r Result[A, E], onOk func(A) B, onErr func(E) B) B {
	if r.ok {
		return onOk(r.val)
	}
	return onErr(r.err)
}
