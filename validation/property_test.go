package validation_test

import (
	"fmt"
	"testing"

	gojson "github.com/goccy/go-json"
	"pgregory.net/rapid"

	"github.com/reoring/koda"
	"github.com/reoring/koda/jsonable"
	v "github.com/reoring/koda/validation"
)

// jsonValue draws canonical decoded JSON values up to the given depth.
func jsonValue(depth int) *rapid.Generator[any] {
	return rapid.Custom(func(t *rapid.T) any {
		kind := rapid.IntRange(0, 6).Draw(t, "kind")
		if depth <= 0 && kind > 4 {
			kind = 0
		}
		switch kind {
		case 0:
			return nil
		case 1:
			return rapid.Bool().Draw(t, "bool")
		case 2:
			return rapid.Int64().Draw(t, "int")
		case 3:
			return rapid.Float64Range(-1e6, 1e6).Draw(t, "float")
		case 4:
			return rapid.String().Draw(t, "string")
		case 5:
			return rapid.SliceOfN(jsonValue(depth-1), 0, 4).Draw(t, "list")
		}
		return rapid.MapOfN(rapid.StringMatching(`[a-z]{1,6}`), jsonValue(depth-1), 0, 4).Draw(t, "object")
	})
}

func TestProperty_ErrorTreesRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := jsonValue(3).Draw(t, "input")
		r := orderValidator().Validate(in)
		e, bad := r.GetErr()
		if !bad {
			return
		}
		b, err := jsonable.Marshal(e)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back any
		if err := gojson.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !jsonable.Equal(jsonable.MustFrom(back), e) {
			t.Fatalf("round trip changed tree: %s", b)
		}
		if len(v.Flatten(e)) == 0 {
			t.Fatalf("error tree without messages: %s", b)
		}
	})
}

func TestProperty_NullableWrapsSuccess(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		got, ok := v.Nullable(v.String()).Validate(s).Get()
		if !ok || got != koda.Just(s) {
			t.Fatalf("Nullable(String)(%q) = %v", s, got)
		}
		twice, ok := v.Nullable(v.Nullable(v.String())).Validate(nil).Get()
		if !ok || twice.IsJust() {
			t.Fatalf("nested Nullable(nil) = %v", twice)
		}
	})
}

func TestProperty_ValidateAndMapKeepsOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fails := rapid.SliceOfN(rapid.Bool(), 3, 3).Draw(t, "fails")
		rs := make([]koda.Result[int, string], 3)
		var want []string
		for i, f := range fails {
			if f {
				msg := fmt.Sprintf("e%d", i)
				rs[i] = koda.Err[int](msg)
				want = append(want, msg)
				continue
			}
			rs[i] = koda.Ok[int, string](i)
		}
		r := v.ValidateAndMap3(rs[0], rs[1], rs[2], func(a, b, c int) int { return a + b + c })
		if len(want) == 0 {
			if n, ok := r.Get(); !ok || n != 3 {
				t.Fatalf("expected Ok(3), got %v", r)
			}
			return
		}
		got, _ := r.GetErr()
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("got %v want %v", got, want)
		}
	})
}

func TestProperty_ArrayOfReportsBadIndex(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ns := rapid.SliceOf(rapid.Int64Range(-1000, 1000)).Draw(t, "ns")
		in := make([]any, len(ns))
		for i, n := range ns {
			in[i] = n
		}
		got, ok := v.ArrayOf(v.Integer()).Validate(in).Get()
		if !ok || len(got) != len(ns) {
			t.Fatalf("ArrayOf(%v) = %v", ns, got)
		}
		at := rapid.IntRange(0, len(in)).Draw(t, "at")
		bad := append(append(append([]any{}, in[:at]...), "x"), in[at:]...)
		e, isErr := v.ArrayOf(v.Integer()).Validate(bad).GetErr()
		if !isErr {
			t.Fatal("expected failure")
		}
		m := e.(jsonable.Map)
		if len(m) != 1 || m[fmt.Sprintf("index %d", at)] == nil {
			t.Fatalf("got %s", jsonable.ToString(e))
		}
	})
}
