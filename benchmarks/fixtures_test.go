package benchmarks_test

import (
	"bytes"
	"strconv"

	"github.com/reoring/koda"
	v "github.com/reoring/koda/validation"
)

type user struct {
	ID     string
	Name   string
	Age    int
	Active bool
	Score  koda.Maybe[int]
}

func userValidator() v.Validator[user] {
	meta := v.Obj1(v.Key("score", v.Integer(v.Minimum(0))), koda.Identity[int])
	return v.Obj5(
		v.Key("id", v.String(v.MinLength(1))),
		v.Key("name", v.String()),
		v.Key("age", v.Integer(v.Minimum(0))),
		v.Key("active", v.Boolean()),
		v.MaybeKey("meta", meta),
		func(id, name string, age int, active bool, score koda.Maybe[int]) user {
			return user{id, name, age, active, score}
		},
	)
}

func smallUserJSON() []byte {
	return []byte(`{"id":"u_1","name":"alice","age":30,"active":true}`)
}

// generateUsers returns a JSON array of n user objects:
// [{"id":"obj_0","name":"n0","age":0,"active":true,"meta":{"score":0}}, ...]
func generateUsers(n int) []byte {
	var buf bytes.Buffer
	buf.Grow(n * 72)
	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		s := strconv.Itoa(i)
		buf.WriteString(`{"id":"obj_` + s + `","name":"n` + s + `","age":` + s + `,"active":`)
		buf.WriteString(strconv.FormatBool(i%2 == 0))
		buf.WriteString(`,"meta":{"score":` + s + `}}`)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
