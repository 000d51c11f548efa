package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/koda"
	"github.com/reoring/koda/jsonable"
)

// Reserved error-tree keys.
const (
	ObjectErrorsKey = "__object__"
	ArrayErrorsKey  = "__array__"
	InvalidTypeKey  = "invalid type"
)

// Validator checks an untyped JSON-like value and produces a typed result or
// an error tree.
type Validator[T any] interface {
	Validate(v any) koda.Result[T, jsonable.Value]
}

// Func adapts a plain function to Validator. Func validators work everywhere
// except in schema generation, which rejects them.
type Func[T any] func(v any) koda.Result[T, jsonable.Value]

func (f Func[T]) Validate(v any) koda.Result[T, jsonable.Value] { return f(v) }

// nodeKind enumerates the built-in validator kinds.
type nodeKind int

const (
	kindString nodeKind = iota + 1
	kindInteger
	kindFloat
	kindBoolean
	kindNull
	kindDate
	kindDateTime
	kindNullable
	kindArray
	kindMap
	kindObject
	kindOneOf
	kindTuple
	kindLazy
)

// node is the inspectable shape of a built-in validator.
type node struct {
	kind nodeKind
	// preds holds the attached predicates in declaration order.
	preds []any
	// inner is the wrapped validator (Nullable), item (ArrayOf) or value (MapOf).
	inner any
	// key is the MapOf key validator.
	key any
	// fields lists ObjN fields; variants lists OneOf variants or tuple slots.
	fields   []field
	variants []any
	thunk    func() any
	recur    bool
}

type field struct {
	name     string
	required bool
	v        any
}

// describer is implemented by every built-in validator.
type describer interface {
	describe() node
}

// labeler is implemented by Labeled validators.
type labeler interface {
	label() string
}

// FailList builds the error value used for scalar failures: a list of messages.
func FailList(msgs ...string) jsonable.Value { return jsonable.Strings(msgs...) }

// keyedError is an error tagged with its place in an error tree.
type keyedError struct {
	key string
	err jsonable.Value
}

// treeBuilder accumulates error-tree entries without ever overwriting: a
// repeated key appends the new error to the existing list.
type treeBuilder struct {
	m jsonable.Map
}

func (b *treeBuilder) add(key string, err jsonable.Value) {
	if b.m == nil {
		b.m = jsonable.Map{}
	}
	prev, ok := b.m[key]
	if !ok {
		b.m[key] = err
		return
	}
	if l, ok := prev.(jsonable.List); ok {
		b.m[key] = append(append(jsonable.List{}, l...), err)
		return
	}
	b.m[key] = jsonable.List{prev, err}
}

func (b *treeBuilder) addAll(errs []keyedError) {
	for _, e := range errs {
		b.add(e.key, e.err)
	}
}

func (b *treeBuilder) empty() bool { return len(b.m) == 0 }

func (b *treeBuilder) value() jsonable.Value { return b.m }

// underKey places err under key unless it is already a Map, which is passed
// through unchanged. Non-list scalars are wrapped in a list.
func underKey(key string, err jsonable.Value) jsonable.Value {
	switch e := err.(type) {
	case jsonable.Map:
		return e
	case jsonable.List:
		return jsonable.Map{key: e}
	}
	return jsonable.Map{key: jsonable.List{err}}
}

// checkAll runs every predicate and returns the failure messages in order.
func checkAll[T any](v T, preds []Predicate[T]) jsonable.List {
	var fails jsonable.List
	for _, p := range preds {
		if !p.IsValid(v) {
			fails = append(fails, p.FailMessage(v))
		}
	}
	return fails
}

func predsAsAny[T any](preds []Predicate[T]) []any {
	out := make([]any, len(preds))
	for i, p := range preds {
		if p == nil {
			panic("validation: nil predicate")
		}
		out[i] = p
	}
	return out
}

func mustValidator(v any, what string) {
	if v == nil {
		panic("validation: nil " + what)
	}
}

func indexKey(i int) string { return fmt.Sprintf("index %d", i) }

// renderList formats values as a bracketed list with strings single-quoted.
func renderList[T any](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		if s, ok := any(it).(string); ok {
			parts[i] = "'" + s + "'"
			continue
		}
		parts[i] = fmt.Sprint(it)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortStrings(ss []string) { sort.Strings(ss) }
