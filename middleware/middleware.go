// Package middleware adapts validators to HTTP request bodies. The framework
// adapters in middleware/echo and middleware/gin build on the helpers here.
package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/koda"
	"github.com/reoring/koda/jsonable"
	"github.com/reoring/koda/source"
	"github.com/reoring/koda/validation"
)

// DefaultMaxBodyBytes caps request bodies read by Decode.
const DefaultMaxBodyBytes = 1 << 20

// ErrBodyTooLarge is reported when a body exceeds Options.MaxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// ctxKeyValidated is a typed context key; the type parameter keeps keys for
// different T apart.
type ctxKeyValidated[T any] struct{}

// ContextWithValue attaches a validated value to the context.
func ContextWithValue[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValidated[T]{}, v)
}

// ValueFromContext retrieves a validated value stored by ContextWithValue.
func ValueFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValidated[T]{}).(T)
	return v, ok
}

// Options configures request decoding.
type Options struct {
	// Source controls decoding; the zero value selects source.DefaultOptions().
	Source source.Options
	// Driver decodes bodies; nil selects source.Default().
	Driver       source.Driver
	MaxBodyBytes int64
	// Logger receives a debug record for every rejected request. Optional.
	Logger *slog.Logger
}

// DefaultOptions returns the recommended settings for HTTP JSON boundaries:
// duplicate keys are errors, nesting is capped and bodies are limited to 1 MiB.
func DefaultOptions() Options {
	return Options{Source: source.DefaultOptions(), MaxBodyBytes: DefaultMaxBodyBytes}
}

func (o Options) withDefaults() Options {
	if o.Source == (source.Options{}) {
		o.Source = source.DefaultOptions()
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return o
}

// Decode reads body and validates it with v. Read failures and oversized
// bodies are reported as {"bad data": ...} error trees like malformed JSON.
func Decode[T any](body io.Reader, v validation.Validator[T], opt Options) koda.Result[T, jsonable.Value] {
	opt = opt.withDefaults()
	data, err := io.ReadAll(io.LimitReader(body, opt.MaxBodyBytes+1))
	if err != nil {
		return koda.Err[T](validation.DecodeError(err, opt.Source))
	}
	if int64(len(data)) > opt.MaxBodyBytes {
		return koda.Err[T](jsonable.Value(jsonable.Map{validation.BadDataKey: jsonable.String(ErrBodyTooLarge.Error())}))
	}
	return validation.DeserializeAndValidateWith(v, data, opt.Driver, opt.Source)
}

// ErrorPayload shapes an error tree for JSON responses: the tree itself under
// "errors" and its flattened form under "issues".
func ErrorPayload(tree jsonable.Value) map[string]any {
	return map[string]any{
		"errors": jsonable.Unwrap(tree),
		"issues": validation.Flatten(tree),
	}
}

// LogRejected records a rejected request on l when l is non-nil.
func LogRejected(ctx context.Context, l *slog.Logger, r *http.Request, tree jsonable.Value) {
	if l == nil {
		return
	}
	l.DebugContext(ctx, "request body rejected",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("issues", len(validation.Flatten(tree))),
	)
}

// ValidateJSON returns net/http middleware that validates the request body
// with v. On success the typed value is stored in the request context (see
// ValueFromContext); otherwise the client gets 400 with ErrorPayload.
func ValidateJSON[T any](v validation.Validator[T], opt Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := Decode(r.Body, v, opt)
			val, ok := res.Get()
			if !ok {
				tree, _ := res.GetErr()
				LogRejected(r.Context(), opt.Logger, r, tree)
				WriteJSON(w, http.StatusBadRequest, ErrorPayload(tree))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), val)))
		})
	}
}

// WriteJSON writes body as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = gojson.NewEncoder(w).Encode(body)
}
