// Package ginmw validates gin request bodies with koda validators.
package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/koda/middleware"
	"github.com/reoring/koda/validation"
)

// ValidateJSON validates the request body with v and stores the typed value
// in the request context. Failures abort with 400 and the error payload.
func ValidateJSON[T any](v validation.Validator[T], opt middleware.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := middleware.Decode(c.Request.Body, v, opt)
		val, ok := res.Get()
		if !ok {
			tree, _ := res.GetErr()
			middleware.LogRejected(c.Request.Context(), opt.Logger, c.Request, tree)
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(tree))
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithValue(c.Request.Context(), val))
		c.Next()
	}
}

// GetValue fetches the validated value from gin.Context.
func GetValue[T any](c *gin.Context) (T, bool) {
	return middleware.ValueFromContext[T](c.Request.Context())
}
