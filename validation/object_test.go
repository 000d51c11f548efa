package validation_test

import (
	"strings"
	"testing"

	"github.com/reoring/koda"
	"github.com/reoring/koda/jsonable"
	v "github.com/reoring/koda/validation"
)

type person struct {
	Name string
	Age  int
}

func personValidator() v.Validator[person] {
	return v.Obj2(
		v.Key("name", v.String(v.MinLength(1))),
		v.Key("age", v.Integer(v.Minimum(0))),
		func(name string, age int) person { return person{Name: name, Age: age} },
	)
}

func TestObj_Success(t *testing.T) {
	got := okOf(t, personValidator().Validate(map[string]any{"name": "bob", "age": int64(25)}))
	if got != (person{Name: "bob", Age: 25}) {
		t.Fatalf("got %+v", got)
	}
}

func TestObj_FieldFailure(t *testing.T) {
	assertErr(t, personValidator().Validate(map[string]any{"name": "bob", "age": int64(-100)}),
		map[string]any{"age": []string{"minimum allowed value is 0"}})
}

func TestObj_MissingAndWrongType(t *testing.T) {
	assertErr(t, personValidator().Validate(map[string]any{"age": 25.5}), map[string]any{
		"name": []string{"key missing"},
		"age":  []string{"expected an integer"},
	})
}

func TestObj_NotAnObject(t *testing.T) {
	for _, in := range []any{"", []any{}, nil, int64(1)} {
		assertErr(t, personValidator().Validate(in), map[string]any{"__object__": []string{"expected an object"}})
	}
}

func TestObj_UnknownKeysSupersedeFieldErrors(t *testing.T) {
	assertErr(t, personValidator().Validate(map[string]any{"age": int64(1), "extra": true}), map[string]any{
		"__object__": []string{"Received unknown keys. Only expected ['age', 'name']"},
	})
}

type profile struct {
	Name     string
	Nickname koda.Maybe[string]
}

func TestObj_MaybeKey(t *testing.T) {
	p := v.Obj2(
		v.Key("name", v.String()),
		v.MaybeKey("nickname", v.String()),
		func(name string, nick koda.Maybe[string]) profile { return profile{name, nick} },
	)
	got := okOf(t, p.Validate(map[string]any{"name": "a"}))
	if got.Nickname.IsJust() {
		t.Fatalf("expected Nothing, got %v", got.Nickname)
	}
	got = okOf(t, p.Validate(map[string]any{"name": "a", "nickname": "b"}))
	if got.Nickname != koda.Just("b") {
		t.Fatalf("expected Just(b), got %v", got.Nickname)
	}
	assertErr(t, p.Validate(map[string]any{"name": "a", "nickname": nil}),
		map[string]any{"nickname": []string{"expected a string"}})
}

type eyes struct {
	LastName string
	Color    string
}

func TestObj_ObjectCheck(t *testing.T) {
	noBrownJones := func(e eyes) koda.Result[eyes, jsonable.Value] {
		if strings.ToLower(e.LastName) == "jones" && e.Color == "brown" {
			return koda.Err[eyes](jsonable.Value(jsonable.Strings("can't have last_name of jones and eye color of brown")))
		}
		return koda.Ok[eyes, jsonable.Value](e)
	}
	ev := v.Obj2(
		v.Key("last_name", v.String()),
		v.Key("eye_color", v.String()),
		func(l, c string) eyes { return eyes{l, c} },
		v.WithObjectCheck(noBrownJones),
	)
	okOf(t, ev.Validate(map[string]any{"last_name": "smith", "eye_color": "brown"}))
	assertErr(t, ev.Validate(map[string]any{"last_name": "Jones", "eye_color": "brown"}), map[string]any{
		"__object__": []string{"can't have last_name of jones and eye color of brown"},
	})

	// a map error is used as the whole tree
	keyed := v.Obj1(v.Key("a", v.Integer()), koda.Identity[int], v.WithObjectCheck(func(n int) koda.Result[int, jsonable.Value] {
		return koda.Err[int](jsonable.Value(jsonable.Map{"a": jsonable.Strings("too small")}))
	}))
	assertErr(t, keyed.Validate(map[string]any{"a": int64(1)}), map[string]any{"a": []string{"too small"}})

	// object checks do not run when fields fail
	assertErr(t, ev.Validate(map[string]any{"last_name": int64(1), "eye_color": "brown"}),
		map[string]any{"last_name": []string{"expected a string"}})
}

func TestObj_DuplicateKeyPanics(t *testing.T) {
	mustPanic(t, "duplicate", func() {
		v.Obj2(v.Key("a", v.String()), v.Key("a", v.Integer()), func(string, int) int { return 0 })
	})
}

type wide struct{ vals [10]int }

func TestObj10(t *testing.T) {
	k := func(n string) v.KeyField[int] { return v.Key(n, v.Integer()) }
	o := v.Obj10(k("a"), k("b"), k("c"), k("d"), k("e"), k("f"), k("g"), k("h"), k("i"), k("j"),
		func(a, b, c, d, e, f, g, h, i, j int) wide { return wide{[10]int{a, b, c, d, e, f, g, h, i, j}} })
	in := map[string]any{}
	for i, n := range "abcdefghij" {
		in[string(n)] = int64(i)
	}
	got := okOf(t, o.Validate(in))
	for i := range got.vals {
		if got.vals[i] != i {
			t.Fatalf("field %d: got %d", i, got.vals[i])
		}
	}
	delete(in, "c")
	in["j"] = "x"
	assertErr(t, o.Validate(in), map[string]any{"c": []string{"key missing"}, "j": []string{"expected an integer"}})
}
