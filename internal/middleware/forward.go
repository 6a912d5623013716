package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/construction-pm-api/pkg/backend"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
	"github.com/noah-isme/construction-pm-api/pkg/response"
)

// ForwardAuthorization hands the caller's Authorization header to the backend client through
// the request context. The gateway itself does not inspect it.
func ForwardAuthorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			c.Request = c.Request.WithContext(backend.WithAuthorization(c.Request.Context(), header))
		}
		c.Next()
	}
}

// RequireFeature short-circuits a route group that is switched off in configuration.
func RequireFeature(enabled bool, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			response.Error(c, appErrors.Clone(appErrors.ErrFeatureDisabled, name+" are disabled"))
			c.Abort()
			return
		}
		c.Next()
	}
}
