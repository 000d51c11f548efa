// Package echomw validates echo request bodies with koda validators.
package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/koda/middleware"
	"github.com/reoring/koda/validation"
)

// ValidateJSON validates the request body with v, stores the typed value in
// the request context on success, or returns 400 with the error payload.
func ValidateJSON[T any](v validation.Validator[T], opt middleware.Options) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := middleware.Decode(req.Body, v, opt)
			val, ok := res.Get()
			if !ok {
				tree, _ := res.GetErr()
				middleware.LogRejected(req.Context(), opt.Logger, req, tree)
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(tree))
			}
			c.SetRequest(req.WithContext(middleware.ContextWithValue(req.Context(), val)))
			return next(c)
		}
	}
}

// GetValue fetches the validated value from echo.Context.
func GetValue[T any](c echo.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request().Context())
}
