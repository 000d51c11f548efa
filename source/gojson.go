package source

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"
)

// GoJSON returns the default driver backed by goccy/go-json.
func GoJSON() Driver { return goJSONDriver{} }

type goJSONDriver struct{}

func (goJSONDriver) Name() string { return "go-json" }

func (goJSONDriver) Decode(data []byte, opt Options) (any, error) {
	if err := EnforceJSON(data, opt); err != nil {
		return nil, err
	}
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, InvalidJSON(err)
	}
	// Reject trailing content such as `{} {}`.
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, InvalidJSON(errTrailingData)
		}
		return nil, InvalidJSON(err)
	}
	return Normalize(out)
}
