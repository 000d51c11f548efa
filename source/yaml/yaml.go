// Package yaml provides a source.Driver that accepts YAML documents (and
// therefore JSON, which is a YAML subset) via gopkg.in/yaml.v3.
//
// Mappings with non-string keys are converted with their keys stringified.
// yaml.v3 already rejects duplicate mapping keys, regardless of Options.
package yaml

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reoring/koda/source"
)

// Driver returns a YAML source.Driver. Only the first document is decoded.
func Driver() source.Driver { return driver{} }

type driver struct{}

func (driver) Name() string { return "yaml.v3" }

func (driver) Decode(data []byte, opt source.Options) (any, error) {
	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, source.InvalidJSON(err)
	}
	n, err := source.Normalize(stringifyTimes(out))
	if err != nil {
		return nil, err
	}
	if err := source.EnforceTree(n, opt); err != nil {
		return nil, err
	}
	return n, nil
}

// stringifyTimes turns resolved timestamps back into text so Date and
// DateTime validators see the same input they would from JSON.
func stringifyTimes(v any) any {
	switch x := v.(type) {
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 && x.Location() == time.UTC {
			return x.Format("2006-01-02")
		}
		return x.Format(time.RFC3339Nano)
	case []any:
		for i, e := range x {
			x[i] = stringifyTimes(e)
		}
	case map[string]any:
		for k, e := range x {
			x[k] = stringifyTimes(e)
		}
	case map[any]any:
		for k, e := range x {
			x[k] = stringifyTimes(e)
		}
	}
	return v
}
