package source_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reoring/koda/source"
	"github.com/reoring/koda/source/fastjson"
	"github.com/reoring/koda/source/jsoniter"
	"github.com/reoring/koda/source/yaml"
)

func drivers() []source.Driver {
	return []source.Driver{source.GoJSON(), jsoniter.Driver(), fastjson.Driver(), yaml.Driver()}
}

func TestDrivers_CanonicalShapes(t *testing.T) {
	data := []byte(`{"s":"x","i":12,"f":1.5,"e":2.0,"b":true,"n":null,"l":[1,"a"],"o":{"k":-3}}`)
	want := map[string]any{
		"s": "x", "i": int64(12), "f": 1.5, "e": 2.0, "b": true, "n": nil,
		"l": []any{int64(1), "a"},
		"o": map[string]any{"k": int64(-3)},
	}
	for _, d := range drivers() {
		t.Run(d.Name(), func(t *testing.T) {
			got, err := d.Decode(data, source.DefaultOptions())
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("got %#v", got)
			}
		})
	}
}

func TestDrivers_InvalidJSON(t *testing.T) {
	for _, d := range drivers() {
		t.Run(d.Name(), func(t *testing.T) {
			if _, err := d.Decode([]byte(`[1,`), source.Options{}); !errors.Is(err, source.ErrInvalidJSON) {
				t.Fatalf("got %v", err)
			}
		})
	}
}

func TestDrivers_DuplicateKeys(t *testing.T) {
	data := []byte(`{"a":1,"a":2}`)
	for _, d := range drivers()[:3] {
		t.Run(d.Name(), func(t *testing.T) {
			_, err := d.Decode(data, source.Options{RejectDuplicateKeys: true})
			var dup *source.DuplicateKeyError
			if !errors.As(err, &dup) || dup.Key != "a" {
				t.Fatalf("got %v", err)
			}
			got, err := d.Decode(data, source.Options{})
			if err != nil {
				t.Fatal(err)
			}
			if got.(map[string]any)["a"] != int64(2) {
				t.Fatalf("last key should win, got %v", got)
			}
		})
	}
}

func TestDrivers_DuplicateKeyPathIsEscaped(t *testing.T) {
	data := []byte(`{"a/b":{"~c":{"d":1,"d":2}}}`)
	for _, d := range drivers()[:3] {
		t.Run(d.Name(), func(t *testing.T) {
			_, err := d.Decode(data, source.Options{RejectDuplicateKeys: true})
			var dup *source.DuplicateKeyError
			if !errors.As(err, &dup) || dup.Key != "d" || dup.Path != "/a~1b/~0c" {
				t.Fatalf("got %v", err)
			}
		})
	}
}

func TestDrivers_MaxDepth(t *testing.T) {
	for _, d := range drivers() {
		t.Run(d.Name(), func(t *testing.T) {
			if _, err := d.Decode([]byte(`{"a":{"b":{}}}`), source.Options{MaxDepth: 2}); !errors.Is(err, source.ErrMaxDepth) {
				t.Fatalf("got %v", err)
			}
		})
	}
}

func TestDefaultDriver(t *testing.T) {
	t.Cleanup(source.UseDefault)
	if source.Default().Name() != "go-json" {
		t.Fatalf("default is %s", source.Default().Name())
	}
	source.SetDefault(nil)
	if source.Default().Name() != "go-json" {
		t.Fatal("nil driver must be ignored")
	}
	source.SetDefault(fastjson.Driver())
	if source.Default().Name() != "fastjson" {
		t.Fatalf("got %s", source.Default().Name())
	}
	v, err := source.Decode([]byte(`[true]`))
	if err != nil || !reflect.DeepEqual(v, []any{true}) {
		t.Fatalf("Decode: %v %v", v, err)
	}
	v, err = source.DecodeWith(nil, []byte(`7`), source.Options{})
	if err != nil || v != int64(7) {
		t.Fatalf("DecodeWith: %v %v", v, err)
	}
}

func TestYAMLDriver_NonStringKeys(t *testing.T) {
	got, err := yaml.Driver().Decode([]byte("1: one\ntrue: yes\nwhen: 2024-01-02T03:04:05Z\n"), source.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"1": "one", "true": "yes", "when": "2024-01-02T03:04:05Z"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
}
