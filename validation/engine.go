package validation

import "github.com/reoring/koda"

// step applies one argument to an accumulated curried constructor. Errors
// from both sides are concatenated in order; nothing short-circuits.
func step[A, F, E any](acc koda.Result[func(A) F, []E], r koda.Result[A, E]) koda.Result[F, []E] {
	fn, accOK := acc.Get()
	a, rOK := r.Get()
	switch {
	case accOK && rOK:
		return koda.Ok[F, []E](fn(a))
	case accOK:
		e, _ := r.GetErr()
		return koda.Err[F]([]E{e})
	case rOK:
		errs, _ := acc.GetErr()
		return koda.Err[F](errs)
	default:
		errs, _ := acc.GetErr()
		e, _ := r.GetErr()
		return koda.Err[F](append(append(make([]E, 0, len(errs)+1), errs...), e))
	}
}

// runChecks runs post-construction checks in order on success. The first
// failing check replaces the result; a passing check may replace the value.
func runChecks[R, E any](res koda.Result[R, []E], checks []func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	v, ok := res.Get()
	if !ok {
		return res
	}
	for _, check := range checks {
		r := check(v)
		if r.IsErr() {
			return r
		}
		v, _ = r.Get()
	}
	return koda.Ok[R, []E](v)
}

// ValidateAndMap1 maps a single result through into and then runs checks.
// The ValidateAndMapN family accumulates every error in argument order.
func ValidateAndMap1[T1, R, E any](r1 koda.Result[T1, E], into func(T1) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) R {
		return into(v1)
	}
	s0 := koda.Ok[func(T1) R, []E](curried)
	s1 := step(s0, r1)
	return runChecks(s1, checks)
}

// ValidateAndMap2 combines 2 results; see ValidateAndMap1.
func ValidateAndMap2[T1, T2, R, E any](r1 koda.Result[T1, E], r2 koda.Result[T2, E], into func(T1, T2) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) func(T2) R {
		return func(v2 T2) R { return into(v1, v2) }
	}
	s0 := koda.Ok[func(T1) func(T2) R, []E](curried)
	s1 := step(s0, r1)
	s2 := step(s1, r2)
	return runChecks(s2, checks)
}

// ValidateAndMap3 combines 3 results; see ValidateAndMap1.
func ValidateAndMap3[T1, T2, T3, R, E any](r1 koda.Result[T1, E], r2 koda.Result[T2, E], r3 koda.Result[T3, E], into func(T1, T2, T3) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) func(T2) func(T3) R {
		return func(v2 T2) func(T3) R { return func(v3 T3) R { return into(v1, v2, v3) } }
	}
	s0 := koda.Ok[func(T1) func(T2) func(T3) R, []E](curried)
	s1 := step(s0, r1)
	s2 := step(s1, r2)
	s3 := step(s2, r3)
	return runChecks(s3, checks)
}

// ValidateAndMap4 combines 4 results; see ValidateAndMap1.
func ValidateAndMap4[T1, T2, T3, T4, R, E any](r1 koda.Result[T1, E], r2 koda.Result[T2, E], r3 koda.Result[T3, E], r4 koda.Result[T4, E], into func(T1, T2, T3, T4) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) func(T2) func(T3) func(T4) R {
		return func(v2 T2) func(T3) func(T4) R { return func(v3 T3) func(T4) R { return func(v4 T4) R { return into(v1, v2, v3, v4) } } }
	}
	s0 := koda.Ok[func(T1) func(T2) func(T3) func(T4) R, []E](curried)
	s1 := step(s0, r1)
	s2 := step(s1, r2)
	s3 := step(s2, r3)
	s4 := step(s3, r4)
	return runChecks(s4, checks)
}

// ValidateAndMap5 combines 5 results; see ValidateAndMap1.
func ValidateAndMap5[T1, T2, T3, T4, T5, R, E any](r1 koda.Result[T1, E], r2 koda.Result[T2, E], r3 koda.Result[T3, E], r4 koda.Result[T4, E], r5 koda.Result[T5, E], into func(T1, T2, T3, T4, T5) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) func(T2) func(T3) func(T4) func(T5) R {
		return func(v2 T2) func(T3) func(T4) func(T5) R { return func(v3 T3) func(T4) func(T5) R { return func(v4 T4) func(T5) R { return func(v5 T5) R { return into(v1, v2, v3, v4, v5) } } } }
	}
	s0 := koda.Ok[func(T1) func(T2) func(T3) func(T4) func(T5) R, []E](curried)
	s1 := step(s0, r1)
	s2 := step(s1, r2)
	s3 := step(s2, r3)
	s4 := step(s3, r4)
	s5 := step(s4, r5)
	return runChecks(s5, checks)
}

// ValidateAndMap6 combines 6 results; see ValidateAndMap1.
func ValidateAndMap6[T1, T2, T3, T4, T5, T6, R, E any](r1 koda.Result[T1, E], r2 koda.Result[T2, E], r3 koda.Result[T3, E], r4 koda.Result[T4, E], r5 koda.Result[T5, E], r6 koda.Result[T6, E], into func(T1, T2, T3, T4, T5, T6) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) func(T2) func(T3) func(T4) func(T5) func(T6) R {
		return func(v2 T2) func(T3) func(T4) func(T5) func(T6) R { return func(v3 T3) func(T4) func(T5) func(T6) R { return func(v4 T4) func(T5) func(T6) R { return func(v5 T5) func(T6) R { return func(v6 T6) R { return into(v1, v2, v3, v4, v5, v6) } } } } }
	}
	s0 := koda.Ok[func(T1) func(T2) func(T3) func(T4) func(T5) func(T6) R, []E](curried)
	s1 := step(s0, r1)
	s2 := step(s1, r2)
	s3 := step(s2, r3)
	s4 := step(s3, r4)
	s5 := step(s4, r5)
	s6 := step(s5, r6)
	return runChecks(s6, checks)
}

// ValidateAndMap7 combines 7 results; see ValidateAndMap1.
func ValidateAndMap7[T1, T2, T3, T4, T5, T6, T7, R, E any](r1 koda.Result[T1, E], r2 koda.Result[T2, E], r3 koda.Result[T3, E], r4 koda.Result[T4, E], r5 koda.Result[T5, E], r6 koda.Result[T6, E], r7 koda.Result[T7, E], into func(T1, T2, T3, T4, T5, T6, T7) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) R {
		return func(v2 T2) func(T3) func(T4) func(T5) func(T6) func(T7) R { return func(v3 T3) func(T4) func(T5) func(T6) func(T7) R { return func(v4 T4) func(T5) func(T6) func(T7) R { return func(v5 T5) func(T6) func(T7) R { return func(v6 T6) func(T7) R { return func(v7 T7) R { return into(v1, v2, v3, v4, v5, v6, v7) } } } } } }
	}
	s0 := koda.Ok[func(T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) R, []E](curried)
	s1 := step(s0, r1)
	s2 := step(s1, r2)
	s3 := step(s2, r3)
	s4 := step(s3, r4)
	s5 := step(s4, r5)
	s6 := step(s5, r6)
	s7 := step(s6, r7)
	return runChecks(s7, checks)
}

// ValidateAndMap8 combines 8 results; see ValidateAndMap1.
func ValidateAndMap8[T1, T2, T3, T4, T5, T6, T7, T8, R, E any](r1 koda.Result[T1, E], r2 koda.Result[T2, E], r3 koda.Result[T3, E], r4 koda.Result[T4, E], r5 koda.Result[T5, E], r6 koda.Result[T6, E], r7 koda.Result[T7, E], r8 koda.Result[T8, E], into func(T1, T2, T3, T4, T5, T6, T7, T8) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) R {
		return func(v2 T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) R { return func(v3 T3) func(T4) func(T5) func(T6) func(T7) func(T8) R { return func(v4 T4) func(T5) func(T6) func(T7) func(T8) R { return func(v5 T5) func(T6) func(T7) func(T8) R { return func(v6 T6) func(T7) func(T8) R { return func(v7 T7) func(T8) R { return func(v8 T8) R { return into(v1, v2, v3, v4, v5, v6, v7, v8) } } } } } } }
	}
	s0 := koda.Ok[func(T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) R, []E](curried)
	s1 := step(s0, r1)
	s2 := step(s1, r2)
	s3 := step(s2, r3)
	s4 := step(s3, r4)
	s5 := step(s4, r5)
	s6 := step(s5, r6)
	s7 := step(s6, r7)
	s8 := step(s7, r8)
	return runChecks(s8, checks)
}

// ValidateAndMap9 combines 9 results; see ValidateAndMap1.
func ValidateAndMap9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R, E any](r1 koda.Result[T1, E], r2 koda.Result[T2, E], r3 koda.Result[T3, E], r4 koda.Result[T4, E], r5 koda.Result[T5, E], r6 koda.Result[T6, E], r7 koda.Result[T7, E], r8 koda.Result[T8, E], r9 koda.Result[T9, E], into func(T1, T2, T3, T4, T5, T6, T7, T8, T9) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) func(T9) R {
		return func(v2 T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) func(T9) R { return func(v3 T3) func(T4) func(T5) func(T6) func(T7) func(T8) func(T9) R { return func(v4 T4) func(T5) func(T6) func(T7) func(T8) func(T9) R { return func(v5 T5) func(T6) func(T7) func(T8) func(T9) R { return func(v6 T6) func(T7) func(T8) func(T9) R { return func(v7 T7) func(T8) func(T9) R { return func(v8 T8) func(T9) R { return func(v9 T9) R { return into(v1, v2, v3, v4, v5, v6, v7, v8, v9) } } } } } } } }
	}
	s0 := koda.Ok[func(T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) func(T9) R, []E](curried)
	s1 := step(s0, r1)
	s2 := step(s1, r2)
	s3 := step(s2, r3)
	s4 := step(s3, r4)
	s5 := step(s4, r5)
	s6 := step(s5, r6)
	s7 := step(s6, r7)
	s8 := step(s7, r8)
	s9 := step(s8, r9)
	return runChecks(s9, checks)
}

// ValidateAndMap10 combines 10 results; see ValidateAndMap1.
func ValidateAndMap10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R, E any](r1 koda.Result[T1, E], r2 koda.Result[T2, E], r3 koda.Result[T3, E], r4 koda.Result[T4, E], r5 koda.Result[T5, E], r6 koda.Result[T6, E], r7 koda.Result[T7, E], r8 koda.Result[T8, E], r9 koda.Result[T9, E], r10 koda.Result[T10, E], into func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) R, checks ...func(R) koda.Result[R, []E]) koda.Result[R, []E] {
	curried := func(v1 T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) func(T9) func(T10) R {
		return func(v2 T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) func(T9) func(T10) R { return func(v3 T3) func(T4) func(T5) func(T6) func(T7) func(T8) func(T9) func(T10) R { return func(v4 T4) func(T5) func(T6) func(T7) func(T8) func(T9) func(T10) R { return func(v5 T5) func(T6) func(T7) func(T8) func(T9) func(T10) R { return func(v6 T6) func(T7) func(T8) func(T9) func(T10) R { return func(v7 T7) func(T8) func(T9) func(T10) R { return func(v8 T8) func(T9) func(T10) R { return func(v9 T9) func(T10) R { return func(v10 T10) R { return into(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10) } } } } } } } } }
	}
	s0 := koda.Ok[func(T1) func(T2) func(T3) func(T4) func(T5) func(T6) func(T7) func(T8) func(T9) func(T10) R, []E](curried)
	s1 := step(s0, r1)
	s2 := step(s1, r2)
	s3 := step(s2, r3)
	s4 := step(s3, r4)
	s5 := step(s4, r5)
	s6 := step(s5, r6)
	s7 := step(s6, r7)
	s8 := step(s7, r8)
	s9 := step(s8, r9)
	s10 := step(s9, r10)
	return runChecks(s10, checks)
}
