// Package openapi holds OpenAPI 3.0 schema fragments produced from validators
// and renders them as component documents.
package openapi

import (
	"sort"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// RefPrefix is the location of named schemas inside an OpenAPI document.
const RefPrefix = "#/components/schemas/"

// Schema is a schema fragment keyed by OpenAPI schema keywords.
type Schema map[string]any

// Ref returns a $ref fragment pointing at the named component schema.
func Ref(name string) Schema { return Schema{"$ref": RefPrefix + name} }

// Merge returns a new Schema containing s overlaid with each of more in order.
// Later keys win, except "required" lists which are concatenated.
func (s Schema) Merge(more ...Schema) Schema {
	out := make(Schema, len(s))
	for k, v := range s {
		out[k] = v
	}
	for _, m := range more {
		for k, v := range m {
			if k == "required" {
				if prev, ok := out[k].([]string); ok {
					if add, ok := v.([]string); ok {
						out[k] = append(append([]string{}, prev...), add...)
						continue
					}
				}
			}
			out[k] = v
		}
	}
	return out
}

// JSON renders the fragment as indented JSON.
func (s Schema) JSON() ([]byte, error) { return gojson.MarshalIndent(map[string]any(s), "", "  ") }

// Document is a minimal OpenAPI document carrying component schemas.
type Document struct {
	OpenAPI    string     `json:"openapi" yaml:"openapi"`
	Info       Info       `json:"info" yaml:"info"`
	Paths      Schema     `json:"paths" yaml:"paths"`
	Components Components `json:"components" yaml:"components"`
}

type Info struct {
	Title   string `json:"title" yaml:"title"`
	Version string `json:"version" yaml:"version"`
}

type Components struct {
	Schemas Schema `json:"schemas" yaml:"schemas"`
}

// NewDocument returns an empty 3.0.3 document.
func NewDocument(title, version string) *Document {
	return &Document{
		OpenAPI:    "3.0.3",
		Info:       Info{Title: title, Version: version},
		Paths:      Schema{},
		Components: Components{Schemas: Schema{}},
	}
}

// Add merges named schemas (as returned by validation.GenerateSchema) into the
// document's components. Existing names are replaced.
func (d *Document) Add(named Schema) {
	for k, v := range named {
		d.Components.Schemas[k] = v
	}
}

// Names lists component schema names in sorted order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Components.Schemas))
	for k := range d.Components.Schemas {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// JSON renders the document as indented JSON.
func (d *Document) JSON() ([]byte, error) { return gojson.MarshalIndent(d, "", "  ") }

// YAML renders the document as YAML.
func (d *Document) YAML() ([]byte, error) { return yaml.Marshal(toYAMLNode(d.asMap())) }

func (d *Document) asMap() map[string]any {
	return map[string]any{
		"openapi":    d.OpenAPI,
		"info":       map[string]any{"title": d.Info.Title, "version": d.Info.Version},
		"paths":      map[string]any(d.Paths),
		"components": map[string]any{"schemas": map[string]any(d.Components.Schemas)},
	}
}

// toYAMLNode converts nested Schema values into plain maps so yaml.v3 emits
// them as mappings with sorted keys.
func toYAMLNode(v any) any {
	switch x := v.(type) {
	case Schema:
		return toYAMLNode(map[string]any(x))
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = toYAMLNode(e)
		}
		return out
	case []Schema:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = toYAMLNode(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = toYAMLNode(e)
		}
		return out
	}
	return v
}

// SchemaYAML renders a single fragment as YAML.
func SchemaYAML(s Schema) ([]byte, error) { return yaml.Marshal(toYAMLNode(s)) }
