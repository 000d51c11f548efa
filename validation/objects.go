package validation

import "github.com/reoring/koda"

// Obj1 validates an object with one declared key and builds R with into.
//
// Non-objects fail with {"__object__": ["expected an object"]}. Any key not
// declared fails the whole object with only the unknown-keys message. Field
// failures are keyed by field name and all of them are reported.
func Obj1[T1, R any](k1 KeyField[T1], into func(T1) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap1(k1.from(m), into)
	})
}

// Obj2 validates an object with 2 declared keys; see Obj1.
func Obj2[T1, T2, R any](k1 KeyField[T1], k2 KeyField[T2], into func(T1, T2) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field(), k2.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap2(k1.from(m), k2.from(m), into)
	})
}

// Obj3 validates an object with 3 declared keys; see Obj1.
func Obj3[T1, T2, T3, R any](k1 KeyField[T1], k2 KeyField[T2], k3 KeyField[T3], into func(T1, T2, T3) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field(), k2.field(), k3.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap3(k1.from(m), k2.from(m), k3.from(m), into)
	})
}

// Obj4 validates an object with 4 declared keys; see Obj1.
func Obj4[T1, T2, T3, T4, R any](k1 KeyField[T1], k2 KeyField[T2], k3 KeyField[T3], k4 KeyField[T4], into func(T1, T2, T3, T4) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field(), k2.field(), k3.field(), k4.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap4(k1.from(m), k2.from(m), k3.from(m), k4.from(m), into)
	})
}

// Obj5 validates an object with 5 declared keys; see Obj1.
func Obj5[T1, T2, T3, T4, T5, R any](k1 KeyField[T1], k2 KeyField[T2], k3 KeyField[T3], k4 KeyField[T4], k5 KeyField[T5], into func(T1, T2, T3, T4, T5) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field(), k2.field(), k3.field(), k4.field(), k5.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap5(k1.from(m), k2.from(m), k3.from(m), k4.from(m), k5.from(m), into)
	})
}

// Obj6 validates an object with 6 declared keys; see Obj1.
func Obj6[T1, T2, T3, T4, T5, T6, R any](k1 KeyField[T1], k2 KeyField[T2], k3 KeyField[T3], k4 KeyField[T4], k5 KeyField[T5], k6 KeyField[T6], into func(T1, T2, T3, T4, T5, T6) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field(), k2.field(), k3.field(), k4.field(), k5.field(), k6.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap6(k1.from(m), k2.from(m), k3.from(m), k4.from(m), k5.from(m), k6.from(m), into)
	})
}

// Obj7 validates an object with 7 declared keys; see Obj1.
func Obj7[T1, T2, T3, T4, T5, T6, T7, R any](k1 KeyField[T1], k2 KeyField[T2], k3 KeyField[T3], k4 KeyField[T4], k5 KeyField[T5], k6 KeyField[T6], k7 KeyField[T7], into func(T1, T2, T3, T4, T5, T6, T7) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field(), k2.field(), k3.field(), k4.field(), k5.field(), k6.field(), k7.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap7(k1.from(m), k2.from(m), k3.from(m), k4.from(m), k5.from(m), k6.from(m), k7.from(m), into)
	})
}

// Obj8 validates an object with 8 declared keys; see Obj1.
func Obj8[T1, T2, T3, T4, T5, T6, T7, T8, R any](k1 KeyField[T1], k2 KeyField[T2], k3 KeyField[T3], k4 KeyField[T4], k5 KeyField[T5], k6 KeyField[T6], k7 KeyField[T7], k8 KeyField[T8], into func(T1, T2, T3, T4, T5, T6, T7, T8) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field(), k2.field(), k3.field(), k4.field(), k5.field(), k6.field(), k7.field(), k8.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap8(k1.from(m), k2.from(m), k3.from(m), k4.from(m), k5.from(m), k6.from(m), k7.from(m), k8.from(m), into)
	})
}

// Obj9 validates an object with 9 declared keys; see Obj1.
func Obj9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R any](k1 KeyField[T1], k2 KeyField[T2], k3 KeyField[T3], k4 KeyField[T4], k5 KeyField[T5], k6 KeyField[T6], k7 KeyField[T7], k8 KeyField[T8], k9 KeyField[T9], into func(T1, T2, T3, T4, T5, T6, T7, T8, T9) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field(), k2.field(), k3.field(), k4.field(), k5.field(), k6.field(), k7.field(), k8.field(), k9.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap9(k1.from(m), k2.from(m), k3.from(m), k4.from(m), k5.from(m), k6.from(m), k7.from(m), k8.from(m), k9.from(m), into)
	})
}

// Obj10 validates an object with 10 declared keys; see Obj1.
func Obj10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R any](k1 KeyField[T1], k2 KeyField[T2], k3 KeyField[T3], k4 KeyField[T4], k5 KeyField[T5], k6 KeyField[T6], k7 KeyField[T7], k8 KeyField[T8], k9 KeyField[T9], k10 KeyField[T10], into func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) R, opts ...ObjectOption[R]) Validator[R] {
	if into == nil {
		panic("validation: nil constructor")
	}
	return newObject([]field{k1.field(), k2.field(), k3.field(), k4.field(), k5.field(), k6.field(), k7.field(), k8.field(), k9.field(), k10.field()}, opts, func(m map[string]any) koda.Result[R, []keyedError] {
		return ValidateAndMap10(k1.from(m), k2.from(m), k3.from(m), k4.from(m), k5.from(m), k6.from(m), k7.from(m), k8.from(m), k9.from(m), k10.from(m), into)
	})
}
