package validation

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/koda/i18n"
	"github.com/reoring/koda/internal/jsonvalue"
	"github.com/reoring/koda/jsonable"
	"github.com/reoring/koda/openapi"
)

// Predicate is a pure check over an already typed value. FailMessage is only
// called when IsValid returned false.
type Predicate[T any] interface {
	IsValid(v T) bool
	FailMessage(v T) jsonable.Value
}

// Number covers the value types produced by Integer and Float.
type Number interface {
	~int | ~int64 | ~float64
}

// fragmenter is implemented by predicates that map to a schema fragment.
type fragmenter interface {
	fragment() openapi.Schema
}

func msg(code string, data map[string]string) jsonable.Value {
	return jsonable.String(i18n.T(code, data))
}

func itoa(n int) string { return strconv.Itoa(n) }

func formatNumber[N Number](n N) string {
	switch v := any(n).(type) {
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e21 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprint(n)
}

// ---- strings ----

type lengthBound struct {
	n   int
	max bool
}

// MinLength requires at least n characters (runes). Panics when n < 0.
func MinLength(n int) Predicate[string] {
	if n < 0 {
		panic("validation: MinLength must be >= 0")
	}
	return lengthBound{n: n}
}

// MaxLength allows at most n characters (runes). Panics when n < 0.
func MaxLength(n int) Predicate[string] {
	if n < 0 {
		panic("validation: MaxLength must be >= 0")
	}
	return lengthBound{n: n, max: true}
}

func (p lengthBound) IsValid(s string) bool {
	l := utf8.RuneCountInString(s)
	if p.max {
		return l <= p.n
	}
	return l >= p.n
}

func (p lengthBound) FailMessage(string) jsonable.Value {
	if p.max {
		return msg(i18n.CodeMaxLength, map[string]string{"n": itoa(p.n)})
	}
	return msg(i18n.CodeMinLength, map[string]string{"n": itoa(p.n)})
}

func (p lengthBound) fragment() openapi.Schema {
	if p.max {
		return openapi.Schema{"maxLength": p.n}
	}
	return openapi.Schema{"minLength": p.n}
}

type notBlank struct{}

// NotBlank rejects empty and whitespace-only strings.
func NotBlank() Predicate[string] { return notBlank{} }

func (notBlank) IsValid(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
}
func (notBlank) FailMessage(string) jsonable.Value { return msg(i18n.CodeNotBlank, nil) }
func (notBlank) fragment() openapi.Schema          { return openapi.Schema{"pattern": `\S`} }

// DefaultEmailPattern is used by Email.
var DefaultEmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type email struct{ re *regexp.Regexp }

// Email checks addresses against DefaultEmailPattern.
func Email() Predicate[string] { return email{re: DefaultEmailPattern} }

// EmailMatching checks addresses against re instead of the default pattern.
func EmailMatching(re *regexp.Regexp) Predicate[string] {
	if re == nil {
		panic("validation: nil email pattern")
	}
	return email{re: re}
}

func (p email) IsValid(s string) bool           { return p.re.MatchString(s) }
func (email) FailMessage(string) jsonable.Value { return msg(i18n.CodeEmail, nil) }
func (email) fragment() openapi.Schema          { return openapi.Schema{"format": "email"} }

type pattern struct{ re *regexp.Regexp }

// Regex requires a match of re anywhere in the string; anchor it to match whole values.
func Regex(re *regexp.Regexp) Predicate[string] {
	if re == nil {
		panic("validation: nil regexp")
	}
	return pattern{re: re}
}

func (p pattern) IsValid(s string) bool { return p.re.MatchString(s) }
func (p pattern) FailMessage(string) jsonable.Value {
	return msg(i18n.CodePattern, map[string]string{"pattern": p.re.String()})
}
func (p pattern) fragment() openapi.Schema { return openapi.Schema{"pattern": p.re.String()} }

// ---- enums ----

type enum[T cmp.Ordered] struct {
	set    map[T]struct{}
	sorted []T
}

// Enum restricts values to choices. The failure message and schema list the
// choices sorted. Panics when no choices are given.
func Enum[T cmp.Ordered](choices ...T) Predicate[T] {
	if len(choices) == 0 {
		panic("validation: Enum needs at least one choice")
	}
	e := enum[T]{set: make(map[T]struct{}, len(choices))}
	for _, c := range choices {
		if _, seen := e.set[c]; seen {
			continue
		}
		e.set[c] = struct{}{}
		e.sorted = append(e.sorted, c)
	}
	slices.Sort(e.sorted)
	return e
}

func (e enum[T]) IsValid(v T) bool {
	_, ok := e.set[v]
	return ok
}

func (e enum[T]) FailMessage(T) jsonable.Value {
	return msg(i18n.CodeEnum, map[string]string{"choices": renderList(e.sorted)})
}

func (e enum[T]) fragment() openapi.Schema {
	vals := make([]any, len(e.sorted))
	for i, v := range e.sorted {
		vals[i] = v
	}
	return openapi.Schema{"enum": vals}
}

// ---- numbers ----

type bound[N Number] struct {
	n         N
	max       bool
	exclusive bool
}

// Minimum requires v >= n.
func Minimum[N Number](n N) Predicate[N] { return bound[N]{n: n} }

// ExclusiveMinimum requires v > n.
func ExclusiveMinimum[N Number](n N) Predicate[N] { return bound[N]{n: n, exclusive: true} }

// Maximum requires v <= n.
func Maximum[N Number](n N) Predicate[N] { return bound[N]{n: n, max: true} }

// ExclusiveMaximum requires v < n.
func ExclusiveMaximum[N Number](n N) Predicate[N] {
	return bound[N]{n: n, max: true, exclusive: true}
}

func (b bound[N]) IsValid(v N) bool {
	switch {
	case b.max && b.exclusive:
		return v < b.n
	case b.max:
		return v <= b.n
	case b.exclusive:
		return v > b.n
	}
	return v >= b.n
}

func (b bound[N]) FailMessage(N) jsonable.Value {
	data := map[string]string{"n": formatNumber(b.n)}
	switch {
	case b.max && b.exclusive:
		return msg(i18n.CodeExclusiveMaximum, data)
	case b.max:
		return msg(i18n.CodeMaximum, data)
	case b.exclusive:
		return msg(i18n.CodeExclusiveMinimum, data)
	}
	return msg(i18n.CodeMinimum, data)
}

func (b bound[N]) fragment() openapi.Schema {
	if b.max {
		return openapi.Schema{"maximum": b.n, "exclusiveMaximum": b.exclusive}
	}
	return openapi.Schema{"minimum": b.n, "exclusiveMinimum": b.exclusive}
}

type multipleOf[N Number] struct{ n N }

// MultipleOf requires v to be an integral multiple of n. Panics when n <= 0.
// Float inputs are compared with a relative tolerance so 0.3 is a multiple of 0.1.
func MultipleOf[N Number](n N) Predicate[N] {
	if n <= 0 {
		panic("validation: MultipleOf must be > 0")
	}
	return multipleOf[N]{n: n}
}

func (m multipleOf[N]) IsValid(v N) bool {
	x, n := float64(v), float64(m.n)
	q := x / n
	return math.Abs(q-math.Round(q)) <= 1e-9*math.Max(1, math.Abs(q))
}

func (m multipleOf[N]) FailMessage(N) jsonable.Value {
	return msg(i18n.CodeMultipleOf, map[string]string{"n": formatNumber(m.n)})
}

func (m multipleOf[N]) fragment() openapi.Schema { return openapi.Schema{"multipleOf": m.n} }

// ---- arrays ----

type itemsBound struct {
	n   int
	max bool
}

// MinItems requires at least n elements. Panics when n < 0.
func MinItems(n int) Predicate[[]any] {
	if n < 0 {
		panic("validation: MinItems must be >= 0")
	}
	return itemsBound{n: n}
}

// MaxItems allows at most n elements. Panics when n < 0.
func MaxItems(n int) Predicate[[]any] {
	if n < 0 {
		panic("validation: MaxItems must be >= 0")
	}
	return itemsBound{n: n, max: true}
}

func (p itemsBound) IsValid(v []any) bool {
	if p.max {
		return len(v) <= p.n
	}
	return len(v) >= p.n
}

func (p itemsBound) FailMessage([]any) jsonable.Value {
	if p.max {
		return msg(i18n.CodeMaxLength, map[string]string{"n": itoa(p.n)})
	}
	return msg(i18n.CodeMinLength, map[string]string{"n": itoa(p.n)})
}

func (p itemsBound) fragment() openapi.Schema {
	if p.max {
		return openapi.Schema{"maxItems": p.n}
	}
	return openapi.Schema{"minItems": p.n}
}

type uniqueItems struct{}

// UniqueItems rejects arrays holding two structurally equal elements. Nested
// objects and arrays compare by content; 1 and 1.0 are equal.
func UniqueItems() Predicate[[]any] { return uniqueItems{} }

func (uniqueItems) IsValid(v []any) bool {
	seen := make(map[string]struct{}, len(v))
	for _, e := range v {
		k := structuralKey(e)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}

func (uniqueItems) FailMessage([]any) jsonable.Value { return msg(i18n.CodeUniqueItems, nil) }
func (uniqueItems) fragment() openapi.Schema         { return openapi.Schema{"uniqueItems": true} }

// structuralKey renders v canonically: integers exact, whole floats as
// integers, object keys sorted.
func structuralKey(v any) string {
	n, err := jsonvalue.Normalize(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	b, err := gojson.Marshal(wholeFloatsAsInt(n))
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(b)
}

func wholeFloatsAsInt(v any) any {
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) && x >= math.MinInt64 && x < math.MaxInt64 {
			return int64(x)
		}
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = wholeFloatsAsInt(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = wholeFloatsAsInt(e)
		}
		return out
	}
	return v
}

// ---- objects ----

type propertiesBound struct {
	n   int
	max bool
}

// MinProperties requires at least n keys. Panics when n < 0.
func MinProperties(n int) Predicate[map[string]any] {
	if n < 0 {
		panic("validation: MinProperties must be >= 0")
	}
	return propertiesBound{n: n}
}

// MaxProperties allows at most n keys. Panics when n < 0.
func MaxProperties(n int) Predicate[map[string]any] {
	if n < 0 {
		panic("validation: MaxProperties must be >= 0")
	}
	return propertiesBound{n: n, max: true}
}

func (p propertiesBound) IsValid(m map[string]any) bool {
	if p.max {
		return len(m) <= p.n
	}
	return len(m) >= p.n
}

func (p propertiesBound) FailMessage(map[string]any) jsonable.Value {
	if p.max {
		return msg(i18n.CodeMaxProperties, map[string]string{"n": itoa(p.n)})
	}
	return msg(i18n.CodeMinProperties, map[string]string{"n": itoa(p.n)})
}

func (p propertiesBound) fragment() openapi.Schema {
	if p.max {
		return openapi.Schema{"maxProperties": p.n}
	}
	return openapi.Schema{"minProperties": p.n}
}

// ---- custom ----

type custom[T any] struct {
	ok   func(T) bool
	fail func(T) jsonable.Value
}

// Custom builds a predicate from plain functions. Custom predicates have no
// schema fragment, so GenerateSchema rejects validators that carry them.
func Custom[T any](ok func(T) bool, fail func(T) jsonable.Value) Predicate[T] {
	if ok == nil || fail == nil {
		panic("validation: Custom needs both functions")
	}
	return custom[T]{ok: ok, fail: fail}
}

func (c custom[T]) IsValid(v T) bool               { return c.ok(v) }
func (c custom[T]) FailMessage(v T) jsonable.Value { return c.fail(v) }
