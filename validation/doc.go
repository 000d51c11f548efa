// Package validation turns untyped JSON-like values into typed Go values,
// reporting every failure at once as a jsonable error tree.
//
// Overview
//   - Scalars: String, Integer, Float, Boolean, Null, Date, DateTime; each takes predicates.
//   - Predicates: MinLength/MaxLength, MinItems/MaxItems, MinProperties/MaxProperties,
//     Minimum/Maximum (and exclusive forms), MultipleOf, NotBlank, Email, Regex, Enum, UniqueItems.
//   - Containers: Nullable, ArrayOf, MapOf.
//   - Objects: Obj1..Obj10 built from Key/MaybeKey fields and a constructor.
//   - Unions and tuples: OneOf2..OneOf5 (Labeled for error keys), Tuple2/Tuple3.
//   - Recursion: Lazy.
//   - Schemas: GenerateSchema / GenerateDocument emit OpenAPI 3.0 fragments.
//
// Input values are the canonical shapes produced by package source: nil,
// bool, string, int64, float64, []any and map[string]any. Go int kinds and
// json.Number are accepted too.
//
// Error tree keys
//
//	"__object__"   object-level failures (shape, unknown keys, object checks, map predicates)
//	"__array__"    array-level failures (list predicates, tuple checks)
//	"invalid type" container shape failures
//	"index {n}"    element n of an array or tuple
//	"{k} (key)"    MapOf key failures
//
// Example
//
//	type Person struct {
//	    Name string
//	    Age  int
//	}
//
//	person := validation.Obj2(
//	    validation.Key("name", validation.String(validation.MinLength(1))),
//	    validation.Key("age", validation.Integer(validation.Minimum(0))),
//	    func(name string, age int) Person { return Person{name, age} },
//	)
//
//	r := person.Validate(map[string]any{"name": "bob", "age": int64(-100)})
//	// Err({"age": ["minimum allowed value is 0"]})
package validation
