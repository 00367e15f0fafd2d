package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cybertrain-io/cybertrain/pkg/helpers"
	"github.com/cybertrain-io/cybertrain/pkg/response"
)

// Gin context keys populated by RequireAuth.
const (
	CtxUserIDKey    = "userID"
	CtxUserNameKey  = "userName"
	CtxUserEmailKey = "userEmail"
	CtxClaimsKey    = "claims"
)

// tokenFromRequest extracts the session token from the Authorization header
// (Bearer scheme), falling back to the session cookie.
func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	token, err := c.Cookie(helpers.SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

// RequireAuth verifies the session token and attaches the resolved identity
// to the request context. Absent, tampered and expired tokens are all treated
// the same way: the request is rejected as unauthenticated, never crashed.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserNameKey, claims.Name)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxClaimsKey, claims)
		c.Next()
	}
}

// RedirectIfAuthenticated sends holders of a valid session away from the
// login/signup entry points. Invalid or expired tokens fall through as
// anonymous.
func RedirectIfAuthenticated(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token != "" {
			if _, err := jwt.Parse(token); err == nil {
				c.Redirect(http.StatusSeeOther, "/")
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
