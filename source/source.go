// Package source turns raw documents into the canonical untyped values that
// validators consume: nil, bool, string, int64, float64, []any and
// map[string]any.
//
// Decoding is pluggable via Driver. The default driver is backed by
// goccy/go-json; alternatives live in source/jsoniter, source/fastjson and
// source/yaml and can be installed with SetDefault.
package source

import (
	"errors"
	"fmt"
	"sync"

	"github.com/reoring/koda/internal/jsonscan"
	"github.com/reoring/koda/internal/jsonvalue"
)

// ErrInvalidJSON wraps every syntax or decoding failure.
var ErrInvalidJSON = errors.New("invalid json")

var errTrailingData = errors.New("unexpected data after top-level value")

// ErrMaxDepth reports a document nested deeper than Options.MaxDepth.
var ErrMaxDepth = jsonscan.ErrMaxDepth

// DuplicateKeyError reports a repeated object key when duplicates are rejected.
type DuplicateKeyError = jsonscan.DuplicateKeyError

// Options configures decoding. The zero value accepts duplicate keys (last wins)
// and imposes no depth limit.
type Options struct {
	RejectDuplicateKeys bool
	MaxDepth            int
}

// DefaultOptions returns the recommended options for untrusted input:
// duplicate keys are errors and nesting is capped at 64.
func DefaultOptions() Options { return Options{RejectDuplicateKeys: true, MaxDepth: 64} }

// Driver decodes a document into canonical values.
type Driver interface {
	Decode(data []byte, opt Options) (any, error)
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = goJSONDriver{}
)

// SetDefault replaces the package-wide driver; nil values are ignored.
func SetDefault(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefault restores the go-json driver.
func UseDefault() {
	driverMu.Lock()
	currentDriver = goJSONDriver{}
	driverMu.Unlock()
}

// Default returns the current package-wide driver.
func Default() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// Decode decodes data with the current driver and zero Options.
func Decode(data []byte) (any, error) { return Default().Decode(data, Options{}) }

// DecodeWith decodes data with d and opt. A nil d selects the current driver.
func DecodeWith(d Driver, data []byte, opt Options) (any, error) {
	if d == nil {
		d = Default()
	}
	return d.Decode(data, opt)
}

// EnforceJSON runs the token-level duplicate-key and depth checks over JSON
// text. Drivers call it before decoding; syntax errors wrap ErrInvalidJSON.
func EnforceJSON(data []byte, opt Options) error {
	err := jsonscan.Scan(data, jsonscan.Options{RejectDuplicateKeys: opt.RejectDuplicateKeys, MaxDepth: opt.MaxDepth})
	if err == nil {
		return nil
	}
	var dup *DuplicateKeyError
	if errors.As(err, &dup) || errors.Is(err, ErrMaxDepth) {
		return err
	}
	return InvalidJSON(err)
}

// EnforceTree applies Options to an already decoded canonical value. Drivers
// that cannot scan tokens use it for the depth limit.
func EnforceTree(v any, opt Options) error {
	if opt.MaxDepth > 0 && jsonvalue.Depth(v) > opt.MaxDepth {
		return ErrMaxDepth
	}
	return nil
}

// Normalize canonicalises a decoded value. Drivers call it on their output.
func Normalize(v any) (any, error) {
	n, err := jsonvalue.Normalize(v)
	if err != nil {
		return nil, InvalidJSON(err)
	}
	return n, nil
}

// InvalidJSON wraps cause with ErrInvalidJSON.
func InvalidJSON(cause error) error { return fmt.Errorf("%w: %v", ErrInvalidJSON, cause) }
