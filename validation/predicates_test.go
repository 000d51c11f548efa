package validation_test

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/reoring/koda/jsonable"
	v "github.com/reoring/koda/validation"
)

func TestPredicates_ConstructionPanics(t *testing.T) {
	mustPanic(t, "MinLength", func() { v.MinLength(-1) })
	mustPanic(t, "MaxLength", func() { v.MaxLength(-1) })
	mustPanic(t, "MinItems", func() { v.MinItems(-1) })
	mustPanic(t, "MaxItems", func() { v.MaxItems(-1) })
	mustPanic(t, "MinProperties", func() { v.MinProperties(-1) })
	mustPanic(t, "MaxProperties", func() { v.MaxProperties(-1) })
	mustPanic(t, "MultipleOf", func() { v.MultipleOf(0) })
	mustPanic(t, "Enum", func() { v.Enum[string]() })
	mustPanic(t, "Regex", func() { v.Regex(nil) })
	mustPanic(t, "nil predicate", func() { v.String(nil) })
}

func TestEnum_SortedMessage(t *testing.T) {
	e := v.String(v.Enum("b", "c", "a"))
	okOf(t, e.Validate("a"))
	assertErr(t, e.Validate("d"), []string{"expected one of ['a', 'b', 'c']"})

	n := v.Integer(v.Enum(3, 1, 2))
	assertErr(t, n.Validate(int64(7)), []string{"expected one of [1, 2, 3]"})
}

func TestEmail(t *testing.T) {
	e := v.String(v.Email())
	okOf(t, e.Validate("someone@example.com"))
	assertErr(t, e.Validate("not an email"), []string{"expected a valid email address"})

	custom := v.String(v.EmailMatching(regexp.MustCompile(`[a-z.]+@somecompany\.com`)))
	okOf(t, custom.Validate("a.b@somecompany.com"))
	assertErr(t, custom.Validate("a.b@example.com"), []string{"expected a valid email address"})
}

func TestRegex(t *testing.T) {
	r := v.String(v.Regex(regexp.MustCompile(`^\d{3}$`)))
	okOf(t, r.Validate("123"))
	assertErr(t, r.Validate("12a"), []string{`must match pattern ^\d{3}$`})
}

func TestUniqueItems(t *testing.T) {
	u := v.UniqueItems()
	cases := []struct {
		in   []any
		want bool
	}{
		{[]any{int64(1), int64(2), int64(3)}, true},
		{[]any{int64(1), int64(1)}, false},
		{[]any{int64(1), []any{}, []any{}}, false},
		{[]any{[]any{}, []any{int64(1)}, []any{int64(2)}}, true},
		{[]any{int64(1), 1.0}, false},
		{[]any{map[string]any{"a": int64(1)}, map[string]any{"a": int64(1)}}, false},
		{[]any{map[string]any{"something": map[string]any{"a": int64(1)}}, map[string]any{"something": map[string]any{"a": int64(1)}}}, false},
		{[]any{map[string]any{"a": int64(1)}, map[string]any{"a": int64(2)}}, true},
		{[]any{int64(9007199254740993), int64(9007199254740992)}, true},
		{[]any{int64(9007199254740992), float64(9007199254740992)}, false},
		{[]any{uint8(7), int16(7)}, false},
		{[]any{uint64(3), json.Number("3"), 3.0}, false},
		{[]any{json.Number("12345678901234567"), json.Number("12345678901234568")}, true},
		{[]any{[]any{int8(1)}, []any{1.0}}, false},
		{[]any{1.5, json.Number("1.5")}, false},
		{[]any{1.5, 2.5}, true},
	}
	for i, c := range cases {
		if got := u.IsValid(c.in); got != c.want {
			t.Fatalf("case %d: got %v want %v", i, got, c.want)
		}
	}
	if msg := u.FailMessage(nil); !jsonable.Equal(msg, jsonable.String("all items must be unique")) {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestProperties(t *testing.T) {
	m := v.MapOf(v.String(), v.Integer(), v.MinProperties(1), v.MaxProperties(2))
	assertErr(t, m.Validate(map[string]any{}), map[string]any{"__object__": []string{"minimum allowed properties is 1"}})
	assertErr(t, m.Validate(map[string]any{"a": int64(1), "b": int64(2), "c": int64(3)}),
		map[string]any{"__object__": []string{"maximum allowed properties is 2"}})
}

func TestCustomPredicate(t *testing.T) {
	even := v.Custom(func(n int) bool { return n%2 == 0 }, func(int) jsonable.Value {
		return jsonable.String("must be divisible by 2")
	})
	i := v.Integer(v.Minimum(2), v.Maximum(10), even)
	assertErr(t, i.Validate(int64(11)), []string{"maximum allowed value is 10", "must be divisible by 2"})
}
