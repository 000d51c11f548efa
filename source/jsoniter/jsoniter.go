// Package jsoniter provides a source.Driver backed by json-iterator/go.
package jsoniter

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/reoring/koda/source"
)

var api = jsoniter.Config{UseNumber: true, ValidateJsonRawMessage: true}.Froze()

// Driver returns a source.Driver backed by json-iterator.
func Driver() source.Driver { return driver{} }

type driver struct{}

func (driver) Name() string { return "json-iterator" }

func (driver) Decode(data []byte, opt source.Options) (any, error) {
	if err := source.EnforceJSON(data, opt); err != nil {
		return nil, err
	}
	var out any
	if err := api.Unmarshal(data, &out); err != nil {
		return nil, source.InvalidJSON(err)
	}
	return source.Normalize(out)
}
