package middlewares

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"portfolio/internal/models"
	"portfolio/internal/utils"
)

// SessionTokenKey is where the admin session token lives inside the
// cookie session.
const SessionTokenKey = "admin_token"

// ContextAdminKey is where AdminRequired stashes the per-request
// AdminContext for gated handlers.
const ContextAdminKey = "admin"

// AdminRequired gates the admin area. It reads the session token from the
// cookie session and verifies it; anything short of a valid token
// redirects to the login page without touching storage.
func AdminRequired(sessionSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		raw, ok := session.Get(SessionTokenKey).(string)
		if !ok || raw == "" {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		claims, err := utils.VerifyAdminToken(raw, sessionSecret)
		if err != nil {
			// Expired or tampered token: drop it so the next login starts clean.
			session.Delete(SessionTokenKey)
			_ = session.Save()
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, models.AdminContext{
			TokenID:   claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
		})

		c.Next()
	}
}
