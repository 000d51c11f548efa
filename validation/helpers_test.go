package validation_test

import (
	"testing"

	"github.com/reoring/koda"
	"github.com/reoring/koda/jsonable"
)

func errOf[T any](t *testing.T, r koda.Result[T, jsonable.Value]) jsonable.Value {
	t.Helper()
	e, ok := r.GetErr()
	if !ok {
		v, _ := r.Get()
		t.Fatalf("expected Err, got Ok(%v)", v)
	}
	return e
}

func okOf[T any](t *testing.T, r koda.Result[T, jsonable.Value]) T {
	t.Helper()
	v, ok := r.Get()
	if !ok {
		e, _ := r.GetErr()
		t.Fatalf("expected Ok, got Err(%s)", jsonable.ToString(e))
	}
	return v
}

// assertErr compares the error value with want, given as plain Go values.
func assertErr[T any](t *testing.T, r koda.Result[T, jsonable.Value], want any) {
	t.Helper()
	got := errOf(t, r)
	w := jsonable.MustFrom(want)
	if !jsonable.Equal(got, w) {
		t.Fatalf("error mismatch\n got=%s\nwant=%s", jsonable.ToString(got), jsonable.ToString(w))
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
