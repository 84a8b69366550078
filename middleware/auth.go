package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

// PrincipalKey is the gin context key holding the authenticated principal.
const PrincipalKey = "principal"

// RequireAuth rejects unauthenticated requests before any handler runs and
// injects the request-scoped principal into the context.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := services.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		principal, err := auth.ValidateToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// RequireRole gates a route group on the principal's role. Must run after
// RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := CurrentPrincipal(c)
		if principal == nil || principal.Role != role {
			utils.JSONError(c, http.StatusForbidden, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated principal, or nil outside an
// authenticated route.
func CurrentPrincipal(c *gin.Context) *services.Principal {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	principal, ok := v.(*services.Principal)
	if !ok {
		return nil
	}
	return principal
}
