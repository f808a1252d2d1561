package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/falacidadao/ocorrencias-api/internal/service"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
	"github.com/falacidadao/ocorrencias-api/pkg/response"
)

// ContextUserKey is the gin context key storing JWT claims.
const ContextUserKey = "currentUser"

// JWT protects routes by requiring a valid access token. Every rejection
// uses the route's own message so clients see a stable wire contract.
func JWT(authService *service.AuthService, message string) gin.HandlerFunc {
	reject := func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, message))
		c.Abort()
	}
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			reject(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			reject(c)
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			reject(c)
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// OptionalJWT attaches claims when a valid token is present but never blocks.
func OptionalJWT(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}
