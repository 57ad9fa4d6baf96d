package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ronankibharath98/JobHunt/internal/auth"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "token"

const (
	contextUserID = "userId"
	contextRole   = "role"
)

// RequireAuth rejects requests without a valid session cookie and places the
// caller's identity in the gin context, so handlers never touch the token.
func RequireAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
			return
		}
		claims, err := tokens.Parse(cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
			return
		}
		c.Set(contextUserID, claims.UserID)
		c.Set(contextRole, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated caller's id. Zero only if RequireAuth did
// not run, which would be a routing bug.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(contextUserID)
	uid, _ := id.(uint)
	return uid
}

// Role returns the authenticated caller's role.
func Role(c *gin.Context) string {
	role, _ := c.Get(contextRole)
	r, _ := role.(string)
	return r
}
