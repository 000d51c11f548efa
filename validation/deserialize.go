package validation

import (
	"errors"
	"strconv"

	"github.com/reoring/koda"
	"github.com/reoring/koda/i18n"
	"github.com/reoring/koda/jsonable"
	"github.com/reoring/koda/source"
)

// BadDataKey keys decoding failures in the error value.
const BadDataKey = "bad data"

// DeserializeAndValidate decodes data with the default source driver and
// validates the result. Undecodable input fails with {"bad data": "invalid json"}.
func DeserializeAndValidate[T any](v Validator[T], data []byte) koda.Result[T, jsonable.Value] {
	return DeserializeAndValidateWith(v, data, nil, source.Options{})
}

// DeserializeAndValidateWith is DeserializeAndValidate with an explicit driver
// (nil selects the default) and decoding options.
func DeserializeAndValidateWith[T any](v Validator[T], data []byte, d source.Driver, opt source.Options) koda.Result[T, jsonable.Value] {
	raw, err := source.DecodeWith(d, data, opt)
	if err != nil {
		return koda.Err[T](DecodeError(err, opt))
	}
	return v.Validate(raw)
}

// DecodeError converts a source decoding error into an error value.
func DecodeError(err error, opt source.Options) jsonable.Value {
	var dup *source.DuplicateKeyError
	switch {
	case errors.As(err, &dup):
		return jsonable.Map{BadDataKey: jsonable.String(i18n.T(i18n.CodeDuplicateKey, map[string]string{"key": strconv.Quote(dup.Key)}))}
	case errors.Is(err, source.ErrMaxDepth):
		return jsonable.Map{BadDataKey: jsonable.String(i18n.T(i18n.CodeMaxDepth, map[string]string{"n": itoa(opt.MaxDepth)}))}
	}
	return jsonable.Map{BadDataKey: jsonable.String(i18n.T(i18n.CodeInvalidJSON, nil))}
}
