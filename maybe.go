package koda

// Maybe holds either a single value (Just) or nothing. The zero value is Nothing.
type Maybe[A any] struct {
	val  A
	just bool
}

// Just wraps a present value.
func Just[A any](a A) Maybe[A] { return Maybe[A]{val: a, just: true} }

// Nothing returns the absent Maybe for A.
func Nothing[A any]() Maybe[A] { return Maybe[A]{} }

func (m Maybe[A]) IsJust() bool    { return m.just }
func (m Maybe[A]) IsNothing() bool { return !m.just }

// Get returns the wrapped value and whether it is present.
func (m Maybe[A]) Get() (A, bool) { return m.val, m.just }

// GetOrElse returns the wrapped value or fallback when Nothing.
func (m Maybe[A]) GetOrElse(fallback A) A {
	if m.just {
		return m.val
	}
	return fallback
}

// ToOptional returns a pointer to a copy of the value, or nil for Nothing.
func (m Maybe[A]) ToOptional() *A {
	if !m.just {
		return nil
	}
	v := m.val
	return &v
}

func (m Maybe[A]) String() string {
	if !m.just {
		return "Nothing"
	}
	return "Just(" + sprint(m.val) + ")"
}

// MapMaybe applies fn to a present value.
func MapMaybe[A, B any](m Maybe[A], fn func(A) B) Maybe[B] {
	if !m.just {
		return Nothing[B]()
	}
	return Just(fn(m.val))
}

// FlatMapMaybe chains a Maybe-returning function.
func FlatMapMaybe[A, B any](m Maybe[A], fn func(A) Maybe[B]) Maybe[B] {
	if !m.just {
		return Nothing[B]()
	}
	return fn(m.val)
}

// ApplyMaybe applies a wrapped function to a wrapped value; Nothing if either is absent.
func ApplyMaybe[A, B any](m Maybe[A], fn Maybe[func(A) B]) Maybe[B] {
	if !m.just || !fn.just {
		return Nothing[B]()
	}
	return Just(fn.val(m.val))
}

// SwitchMaybe folds a Maybe into a single value.
func SwitchMaybe[A, B any](m Maybe[A], onJust func(A) B, onNothing func() B) B {
	if m.just {
		return onJust(m.val)
	}
	return onNothing()
}
