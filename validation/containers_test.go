package validation_test

import (
	"reflect"
	"testing"

	"github.com/reoring/koda"
	"github.com/reoring/koda/jsonable"
	v "github.com/reoring/koda/validation"
)

func TestArrayOf(t *testing.T) {
	a := v.ArrayOf(v.Float())
	assertErr(t, a.Validate("a string"), map[string]any{"invalid type": []string{"expected an array"}})
	assertErr(t, a.Validate([]any{5.5, "something else"}), map[string]any{"index 1": []string{"expected a float"}})

	got := okOf(t, a.Validate([]any{5.5, 10.1}))
	if !reflect.DeepEqual(got, []float64{5.5, 10.1}) {
		t.Fatalf("got %v", got)
	}
	if got := okOf(t, a.Validate([]any{})); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}

	bounded := v.ArrayOf(v.Float(v.Minimum(5.5)), v.MinItems(1), v.MaxItems(3))
	assertErr(t, bounded.Validate([]any{10.1, 7.7, 2.2, int64(5)}), map[string]any{
		"index 2":   []string{"minimum allowed value is 5.5"},
		"index 3":   []string{"expected a float"},
		"__array__": []string{"maximum allowed length is 3"},
	})
}

func TestNullable(t *testing.T) {
	n := v.Nullable(v.String())
	if got := okOf(t, n.Validate(nil)); got.IsJust() {
		t.Fatalf("expected Nothing, got %v", got)
	}
	assertErr(t, n.Validate(int64(5)), []string{"expected a string"})
	if got := okOf(t, n.Validate("okok")); got != koda.Just("okok") {
		t.Fatalf("expected Just(okok), got %v", got)
	}
}

func TestMapOf(t *testing.T) {
	assertErr(t, v.MapOf(v.String(), v.String()).Validate(int64(5)), map[string]any{"invalid type": []string{"expected a map"}})
	if got := okOf(t, v.MapOf(v.String(), v.String()).Validate(map[string]any{})); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
	got := okOf(t, v.MapOf(v.String(), v.Integer()).Validate(map[string]any{"a": int64(5), "b": int64(22)}))
	if !reflect.DeepEqual(got, map[string]int{"a": 5, "b": 22}) {
		t.Fatalf("got %v", got)
	}
}

func atMostOneKey() v.Predicate[map[string]any] {
	return v.Custom(func(m map[string]any) bool { return len(m) <= 1 }, func(map[string]any) jsonable.Value {
		return jsonable.String("max 1 key(s) allowed")
	})
}

func TestMapOf_AllFailuresReported(t *testing.T) {
	m := v.MapOf(v.String(v.MaxLength(4)), v.Integer(v.Minimum(5)), atMostOneKey())
	assertErr(t, m.Validate(map[string]any{"key1": int64(10), "key1a": int64(2)}), map[string]any{
		"key1a":       []string{"minimum allowed value is 5"},
		"key1a (key)": []string{"maximum allowed length is 4"},
		"__object__":  []string{"max 1 key(s) allowed"},
	})
	okOf(t, m.Validate(map[string]any{"a": int64(100)}))
}

func TestMapOf_LabelCollisionKeepsBoth(t *testing.T) {
	m := v.MapOf(v.String(), v.Integer(), atMostOneKey())
	assertErr(t, m.Validate(map[string]any{"__object__": "not an int", "b": int64(1)}), map[string]any{
		"__object__": []any{"max 1 key(s) allowed", []string{"expected an integer"}},
	})
}

func TestMapOf_TypedKeys(t *testing.T) {
	type color string
	key := v.Func[color](func(x any) koda.Result[color, jsonable.Value] {
		r := v.String(v.Enum("red", "blue")).Validate(x)
		return koda.MapResult(r, func(s string) color { return color(s) })
	})
	got := okOf(t, v.MapOf(key, v.Boolean()).Validate(map[string]any{"red": true}))
	if !got["red"] {
		t.Fatalf("got %v", got)
	}
	assertErr(t, v.MapOf(key, v.Boolean()).Validate(map[string]any{"green": true}), map[string]any{
		"green (key)": []string{"expected one of ['blue', 'red']"},
	})
}
