package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/koda/internal/jsonscan"
	"github.com/reoring/koda/jsonable"
)

// Issue is one message from an error tree, located by JSON Pointer.
type Issue struct {
	Path    string `json:"path"` // JSON Pointer (for example: /items/2/price). "/" is the root.
	Message string `json:"message"`
	// Key is the error-tree key the message was found under, e.g. "__object__".
	Key string `json:"key"`
}

// Issues is a flattened error tree that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Message, iss[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Flatten walks an error tree in sorted key order. Reserved keys
// ("__object__", "__array__", "invalid type") stay at the current path,
// "index {n}" descends into element n and "{k} (key)" into member k.
func Flatten(tree jsonable.Value) Issues {
	var out Issues
	flatten(&out, tree, "", "")
	return out
}

func flatten(out *Issues, v jsonable.Value, path, key string) {
	switch x := v.(type) {
	case jsonable.Map:
		for _, k := range x.Keys() {
			flatten(out, x[k], childPath(path, k), k)
		}
	case jsonable.List:
		for _, e := range x {
			flatten(out, e, path, key)
		}
	case jsonable.String:
		*out = append(*out, Issue{Path: rootIfEmpty(path), Message: string(x), Key: key})
	case nil, jsonable.Null:
	default:
		*out = append(*out, Issue{Path: rootIfEmpty(path), Message: jsonable.ToString(x), Key: key})
	}
}

func childPath(path, key string) string {
	switch key {
	case ObjectErrorsKey, ArrayErrorsKey, InvalidTypeKey, BadDataKey:
		return path
	}
	if rest, ok := strings.CutPrefix(key, "index "); ok {
		if _, err := strconv.Atoi(rest); err == nil {
			return path + "/" + rest
		}
	}
	if name, ok := strings.CutSuffix(key, " (key)"); ok {
		key = name
	}
	return path + "/" + jsonscan.EscapeSegment(key)
}

func rootIfEmpty(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
