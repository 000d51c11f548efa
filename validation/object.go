package validation

import (
	"github.com/reoring/koda"
	"github.com/reoring/koda/i18n"
	"github.com/reoring/koda/jsonable"
)

// KeyField binds an object key to the validator for its value. Build with Key
// or MaybeKey.
type KeyField[T any] struct {
	name     string
	required bool
	v        any
	get      func(m map[string]any) koda.Result[T, jsonable.Value]
}

// Name returns the object key.
func (k KeyField[T]) Name() string { return k.name }

// Required reports whether the key must be present.
func (k KeyField[T]) Required() bool { return k.required }

// Key declares a required key. An absent key fails with "key missing".
func Key[T any](name string, v Validator[T]) KeyField[T] {
	mustValidator(v, "validator for key "+name)
	return KeyField[T]{
		name:     name,
		required: true,
		v:        v,
		get: func(m map[string]any) koda.Result[T, jsonable.Value] {
			raw, ok := m[name]
			if !ok {
				return koda.Err[T](FailList(i18n.T(i18n.CodeKeyMissing, nil)))
			}
			return v.Validate(raw)
		},
	}
}

// MaybeKey declares an optional key. An absent key yields Nothing; a present
// one, including null, is handed to v.
func MaybeKey[T any](name string, v Validator[T]) KeyField[koda.Maybe[T]] {
	mustValidator(v, "validator for key "+name)
	return KeyField[koda.Maybe[T]]{
		name: name,
		v:    v,
		get: func(m map[string]any) koda.Result[koda.Maybe[T], jsonable.Value] {
			raw, ok := m[name]
			if !ok {
				return koda.Ok[koda.Maybe[T], jsonable.Value](koda.Nothing[T]())
			}
			return koda.MapResult(v.Validate(raw), koda.Just[T])
		},
	}
}

func (k KeyField[T]) field() field { return field{name: k.name, required: k.required, v: k.v} }

// from validates the key and tags a failure with the key name.
func (k KeyField[T]) from(m map[string]any) koda.Result[T, keyedError] {
	return koda.MapErr(k.get(m), func(e jsonable.Value) keyedError { return keyedError{key: k.name, err: e} })
}

// ObjectOption configures an object validator.
type ObjectOption[R any] func(*objectConfig[R])

type objectConfig[R any] struct {
	checks []func(R) koda.Result[R, jsonable.Value]
}

// WithObjectCheck runs fn on the constructed value. A failure is reported
// under "__object__" unless fn already returns an error map, which is used
// as the whole error tree.
func WithObjectCheck[R any](fn func(R) koda.Result[R, jsonable.Value]) ObjectOption[R] {
	return func(c *objectConfig[R]) {
		if fn != nil {
			c.checks = append(c.checks, fn)
		}
	}
}

// object is the shared body of Obj1..Obj10.
type object[R any] struct {
	fields []field
	names  map[string]struct{}
	sorted []string
	checks []func(R) koda.Result[R, jsonable.Value]
	run    func(m map[string]any) koda.Result[R, []keyedError]
}

func newObject[R any](fields []field, opts []ObjectOption[R], run func(map[string]any) koda.Result[R, []keyedError]) object[R] {
	var cfg objectConfig[R]
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	o := object[R]{fields: fields, names: make(map[string]struct{}, len(fields)), checks: cfg.checks, run: run}
	for _, f := range fields {
		if _, dup := o.names[f.name]; dup {
			panic("validation: duplicate object key " + f.name)
		}
		o.names[f.name] = struct{}{}
	}
	o.sorted = make([]string, 0, len(fields))
	for _, f := range fields {
		o.sorted = append(o.sorted, f.name)
	}
	sortStrings(o.sorted)
	return o
}

func (o object[R]) Validate(v any) koda.Result[R, jsonable.Value] {
	m, ok := v.(map[string]any)
	if !ok {
		return koda.Err[R](jsonable.Value(jsonable.Map{ObjectErrorsKey: FailList(i18n.T(i18n.CodeExpectedObject, nil))}))
	}
	for k := range m {
		if _, known := o.names[k]; !known {
			text := i18n.T(i18n.CodeUnknownKeys, map[string]string{"keys": renderList(o.sorted)})
			return koda.Err[R](jsonable.Value(jsonable.Map{ObjectErrorsKey: FailList(text)}))
		}
	}
	res := o.run(m)
	out, ok := res.Get()
	if !ok {
		errs, _ := res.GetErr()
		var tb treeBuilder
		tb.addAll(errs)
		return koda.Err[R](tb.value())
	}
	for _, check := range o.checks {
		r := check(out)
		if e, bad := r.GetErr(); bad {
			return koda.Err[R](underKey(ObjectErrorsKey, e))
		}
		out, _ = r.Get()
	}
	return koda.Ok[R, jsonable.Value](out)
}

func (o object[R]) describe() node { return node{kind: kindObject, fields: o.fields} }
