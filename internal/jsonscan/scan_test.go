package jsonscan

import (
	"errors"
	"testing"
)

func TestScan_DuplicateKeys(t *testing.T) {
	cases := []struct {
		in   string
		key  string
		path string
	}{
		{`{"a":1,"a":2}`, "a", "/"},
		{`{"x":{"b":1,"b":2}}`, "b", "/x"},
		{`{"items":[{"k":1},{"k":1,"k":2}]}`, "k", "/items/1"},
		{`{"a/b":{"~c":{"d":1,"d":2}}}`, "d", "/a~1b/~0c"},
	}
	for _, c := range cases {
		err := Scan([]byte(c.in), Options{RejectDuplicateKeys: true})
		var dup *DuplicateKeyError
		if !errors.As(err, &dup) || dup.Key != c.key || dup.Path != c.path {
			t.Fatalf("%s: got %v", c.in, err)
		}
	}
	// the same key in sibling objects is fine
	if err := Scan([]byte(`[{"a":1},{"a":2}]`), Options{RejectDuplicateKeys: true}); err != nil {
		t.Fatal(err)
	}
	// values equal to key names are not keys
	if err := Scan([]byte(`{"a":"a","b":"a"}`), Options{RejectDuplicateKeys: true}); err != nil {
		t.Fatal(err)
	}
}

func TestEscapeSegment(t *testing.T) {
	cases := map[string]string{"plain": "plain", "a/b": "a~1b", "~1": "~01", "": ""}
	for in, want := range cases {
		if got := EscapeSegment(in); got != want {
			t.Fatalf("EscapeSegment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScan_MaxDepth(t *testing.T) {
	if err := Scan([]byte(`{"a":[1]}`), Options{MaxDepth: 2}); err != nil {
		t.Fatal(err)
	}
	if err := Scan([]byte(`{"a":[[1]]}`), Options{MaxDepth: 2}); !errors.Is(err, ErrMaxDepth) {
		t.Fatalf("got %v", err)
	}
}

func TestScan_Disabled(t *testing.T) {
	if err := Scan([]byte(`{"a":1,"a":2`), Options{}); err != nil {
		t.Fatalf("zero options must not scan: %v", err)
	}
	if err := Scan([]byte(`{"a":`), Options{RejectDuplicateKeys: true}); err == nil {
		t.Fatal("expected syntax error")
	}
}
