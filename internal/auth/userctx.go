// Package auth resolves the session user. Login in this app is a static
// lookup: the X-User-Id header is matched against the roster, and an
// unknown or absent id leaves the request anonymous. Authorization is
// not enforced here.
package auth

import (
	"strings"

	"github.com/Angelo270204/prototipado-backend/internal/roster"
	"github.com/gin-gonic/gin"
)

const ctxUser = "session_user"

// WithUser resolves the request's user against the roster and stores it
// in the Gin context.
func WithUser(r *roster.Roster) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if id != "" {
			if u, ok := r.ByID(id); ok {
				c.Set(ctxUser, u)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the session user, if the request carried a known
// id.
func CurrentUser(c *gin.Context) (roster.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return roster.User{}, false
	}
	u, ok := v.(roster.User)
	return u, ok
}
