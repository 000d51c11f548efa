// Package fastjson provides a source.Driver backed by valyala/fastjson.
//
// fastjson keeps every object member, so duplicate keys and depth are checked
// while converting its parse tree; no separate token pass is needed.
package fastjson

import (
	"fmt"
	"strconv"

	"github.com/valyala/fastjson"

	"github.com/reoring/koda/internal/jsonscan"
	"github.com/reoring/koda/internal/jsonvalue"
	"github.com/reoring/koda/source"
)

// Driver returns a source.Driver backed by fastjson. Parsers are pooled.
func Driver() source.Driver { return driver{} }

var parsers fastjson.ParserPool

type driver struct{}

func (driver) Name() string { return "fastjson" }

func (driver) Decode(data []byte, opt source.Options) (any, error) {
	p := parsers.Get()
	defer parsers.Put(p)
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, source.InvalidJSON(err)
	}
	c := converter{opt: opt}
	return c.convert(v, "", 0)
}

type converter struct{ opt source.Options }

func (c converter) convert(v *fastjson.Value, path string, depth int) (any, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil, nil
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return nil, source.InvalidJSON(err)
		}
		return string(b), nil
	case fastjson.TypeNumber:
		n, err := jsonvalue.Number(v.String())
		if err != nil {
			return nil, source.InvalidJSON(err)
		}
		return n, nil
	case fastjson.TypeArray:
		if err := c.enter(depth); err != nil {
			return nil, err
		}
		items, _ := v.Array()
		out := make([]any, len(items))
		for i, it := range items {
			e, err := c.convert(it, path+"/"+strconv.Itoa(i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = e
		}
		return out, nil
	case fastjson.TypeObject:
		if err := c.enter(depth); err != nil {
			return nil, err
		}
		obj, _ := v.Object()
		out := make(map[string]any, obj.Len())
		var firstErr error
		obj.Visit(func(key []byte, val *fastjson.Value) {
			if firstErr != nil {
				return
			}
			k := string(key)
			if _, dup := out[k]; dup && c.opt.RejectDuplicateKeys {
				p := path
				if p == "" {
					p = "/"
				}
				firstErr = &source.DuplicateKeyError{Key: k, Path: p}
				return
			}
			e, err := c.convert(val, path+"/"+jsonscan.EscapeSegment(k), depth+1)
			if err != nil {
				firstErr = err
				return
			}
			out[k] = e
		})
		if firstErr != nil {
			return nil, firstErr
		}
		return out, nil
	}
	return nil, source.InvalidJSON(fmt.Errorf("unexpected value type %s", v.Type()))
}

func (c converter) enter(depth int) error {
	if c.opt.MaxDepth > 0 && depth+1 > c.opt.MaxDepth {
		return source.ErrMaxDepth
	}
	return nil
}
