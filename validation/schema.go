package validation

import (
	"errors"
	"fmt"

	"github.com/reoring/koda/openapi"
)

// ErrUnhandledValidator is returned when schema generation reaches a validator
// or predicate with no schema mapping (Func validators, Custom predicates).
var ErrUnhandledValidator = errors.New("validation: validator not handled by schema generation")

// GenerateSchema returns {name: schema} for v. Recurrent Lazy validators
// become {"$ref": "#/components/schemas/{name}"}.
func GenerateSchema[T any](name string, v Validator[T]) (openapi.Schema, error) {
	s, err := schemaOf(name, v)
	if err != nil {
		return nil, err
	}
	return openapi.Schema{name: s}, nil
}

// MustGenerateSchema is like GenerateSchema but panics on error.
func MustGenerateSchema[T any](name string, v Validator[T]) openapi.Schema {
	s, err := GenerateSchema(name, v)
	if err != nil {
		panic(err)
	}
	return s
}

// Named pairs a schema name with a validator for GenerateDocument.
type Named struct {
	Name      string
	Validator any
}

// Schema names a validator for GenerateDocument.
func Schema[T any](name string, v Validator[T]) Named { return Named{Name: name, Validator: v} }

// GenerateDocument builds an OpenAPI document whose components hold a schema
// for every named validator.
func GenerateDocument(title, version string, named ...Named) (*openapi.Document, error) {
	doc := openapi.NewDocument(title, version)
	for _, n := range named {
		s, err := schemaOf(n.Name, n.Validator)
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", n.Name, err)
		}
		doc.Add(openapi.Schema{n.Name: s})
	}
	return doc, nil
}

func schemaOf(name string, v any) (openapi.Schema, error) {
	d, ok := v.(describer)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnhandledValidator, v)
	}
	n := d.describe()
	switch n.kind {
	case kindString:
		return withPreds(openapi.Schema{"type": "string"}, n.preds)
	case kindInteger:
		return withPreds(openapi.Schema{"type": "integer"}, n.preds)
	case kindFloat:
		return withPreds(openapi.Schema{"type": "number"}, n.preds)
	case kindBoolean:
		return withPreds(openapi.Schema{"type": "boolean"}, n.preds)
	case kindNull:
		// OpenAPI 3.0 has no null type.
		return openapi.Schema{"nullable": true}, nil
	case kindDate:
		return withPreds(openapi.Schema{"type": "string", "format": "date"}, n.preds)
	case kindDateTime:
		return withPreds(openapi.Schema{"type": "string", "format": "date-time"}, n.preds)
	case kindNullable:
		inner, err := schemaOf(name, n.inner)
		if err != nil {
			return nil, err
		}
		return inner.Merge(openapi.Schema{"nullable": true}), nil
	case kindArray:
		items, err := schemaOf(name, n.inner)
		if err != nil {
			return nil, err
		}
		return withPreds(openapi.Schema{"type": "array", "items": items}, n.preds)
	case kindMap:
		vals, err := schemaOf(name, n.inner)
		if err != nil {
			return nil, err
		}
		return withPreds(openapi.Schema{"type": "object", "additionalProperties": vals}, n.preds)
	case kindObject:
		required := []string{}
		props := openapi.Schema{}
		for _, f := range n.fields {
			if f.required {
				required = append(required, f.name)
			}
			fs, err := schemaOf(name, f.v)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", f.name, err)
			}
			props[f.name] = fs
		}
		return openapi.Schema{
			"type":                 "object",
			"additionalProperties": false,
			"required":             required,
			"properties":           props,
		}, nil
	case kindOneOf:
		vs, err := schemaList(name, n.variants)
		if err != nil {
			return nil, err
		}
		return openapi.Schema{"oneOf": vs}, nil
	case kindTuple:
		vs, err := schemaList(name, n.variants)
		if err != nil {
			return nil, err
		}
		return openapi.Schema{
			"description": fmt.Sprintf(`a %d-tuple; schemas for slots are listed in order in "items" > "anyOf"`, len(vs)),
			"type":        "array",
			"maxItems":    len(vs),
			"items":       openapi.Schema{"anyOf": vs},
		}, nil
	case kindLazy:
		if n.recur {
			return openapi.Ref(name), nil
		}
		return schemaOf(name, n.thunk())
	}
	return nil, fmt.Errorf("%w: %T", ErrUnhandledValidator, v)
}

func schemaList(name string, vs []any) ([]openapi.Schema, error) {
	out := make([]openapi.Schema, len(vs))
	for i, v := range vs {
		s, err := schemaOf(name, v)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func withPreds(base openapi.Schema, preds []any) (openapi.Schema, error) {
	out := base
	for _, p := range preds {
		f, ok := p.(fragmenter)
		if !ok {
			return nil, fmt.Errorf("%w: predicate %T", ErrUnhandledValidator, p)
		}
		out = out.Merge(f.fragment())
	}
	return out, nil
}
