package validation_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/reoring/koda/jsonable"
	v "github.com/reoring/koda/validation"
)

func TestFlatten(t *testing.T) {
	tree := errOf(t, orderValidator().Validate(map[string]any{
		"id":    " ",
		"items": []any{map[string]any{"sku": "ABC-1", "qty": int64(0)}, "x"},
	}))
	got := v.Flatten(tree)
	want := v.Issues{
		{Path: "/id", Message: "cannot be blank", Key: "id"},
		{Path: "/items/0/qty", Message: "minimum allowed value is 1", Key: "qty"},
		{Path: "/items/1", Message: "expected an object", Key: "__object__"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
}

func TestFlatten_Keys(t *testing.T) {
	tree := jsonable.MustFrom(map[string]any{
		"a/b (key)":    []string{"bad key"},
		"invalid type": []string{"expected a map"},
		"bad data":     "invalid json",
		"t~":           []any{"one", []string{"two"}},
	})
	got := v.Flatten(tree)
	want := v.Issues{
		{Path: "/a~1b", Message: "bad key", Key: "a/b (key)"},
		{Path: "/", Message: "invalid json", Key: "bad data"},
		{Path: "/", Message: "expected a map", Key: "invalid type"},
		{Path: "/t~0", Message: "one", Key: "t~"},
		{Path: "/t~0", Message: "two", Key: "t~"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
}

func TestIssues_Error(t *testing.T) {
	iss := v.Issues{
		{Path: "/a", Message: "m1"},
		{Path: "/b", Message: "m2"},
		{Path: "/c", Message: "m3"},
		{Path: "/d", Message: "m4"},
	}
	if got := iss.Error(); got != "m1 at /a; m2 at /b; m3 at /c; ... (total 4)" {
		t.Fatalf("got %q", got)
	}
	if v.Issues(nil).Error() != "" {
		t.Fatal("expected empty message")
	}
	wrapped := fmt.Errorf("create order: %w", iss[:1])
	got, ok := v.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Path != "/a" {
		t.Fatalf("AsIssues: %v %v", got, ok)
	}
	if _, ok := v.AsIssues(nil); ok {
		t.Fatal("nil error has no issues")
	}
}
