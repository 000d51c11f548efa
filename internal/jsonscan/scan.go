// Package jsonscan walks JSON tokens to enforce structural limits that a
// decoder into map[string]any would otherwise hide: duplicate object keys
// (last one silently wins) and nesting depth.
package jsonscan

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// ErrMaxDepth reports that a document nests deeper than allowed.
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

// DuplicateKeyError reports the first repeated key within one object.
type DuplicateKeyError struct {
	Key string
	// Path is a JSON Pointer to the object holding the key.
	Path string
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate key " + strconv.Quote(e.Key) + " at " + e.Path
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	segment      string
	index        int
}

// Options selects the checks to run. The zero value runs nothing.
type Options struct {
	RejectDuplicateKeys bool
	// MaxDepth limits container nesting; 0 disables the check.
	MaxDepth int
}

func (o Options) enabled() bool { return o.RejectDuplicateKeys || o.MaxDepth > 0 }

// Scan checks data against opt. Syntax errors are returned as-is so callers
// can classify them as invalid input.
func Scan(data []byte, opt Options) error {
	if !opt.enabled() {
		return nil
	}
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var stack []frame
	pending := ""
	// closeValue marks the end of a value inside the enclosing container.
	closeValue := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			if top.kind == kindObject {
				top.expectingKey = true
			} else {
				top.index++
			}
		}
	}
	push := func(k containerKind) error {
		if opt.MaxDepth > 0 && len(stack)+1 > opt.MaxDepth {
			return ErrMaxDepth
		}
		seg := EscapeSegment(pending)
		if n := len(stack); n > 0 && stack[n-1].kind == kindArray {
			seg = strconv.Itoa(stack[n-1].index)
		}
		f := frame{kind: k, segment: seg}
		if k == kindObject {
			f.keys = make(map[string]struct{})
			f.expectingKey = true
		}
		stack = append(stack, f)
		return nil
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return io.ErrUnexpectedEOF
			}
			return nil
		}
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case gojson.Delim:
			switch v {
			case '{':
				if err := push(kindObject); err != nil {
					return err
				}
			case '[':
				if err := push(kindArray); err != nil {
					return err
				}
			case '}', ']':
				if n := len(stack); n > 0 {
					stack = stack[:n-1]
				}
				closeValue()
			}
		case string:
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if top.kind == kindObject && top.expectingKey {
					if _, dup := top.keys[v]; dup && opt.RejectDuplicateKeys {
						return &DuplicateKeyError{Key: v, Path: pointer(stack)}
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					pending = v
					continue
				}
			}
			closeValue()
		default:
			closeValue()
		}
	}
}

// EscapeSegment encodes one JSON Pointer reference token (RFC 6901).
func EscapeSegment(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

func pointer(stack []frame) string {
	if len(stack) <= 1 {
		return "/"
	}
	var b bytes.Buffer
	for _, f := range stack[1:] {
		b.WriteByte('/')
		b.WriteString(f.segment)
	}
	return b.String()
}
