package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"portfolio/internal/models"
)

func addFlash(c *gin.Context, severity, message string) {
	session := sessions.Default(c)
	session.AddFlash(models.Flash{Severity: severity, Message: message})
	_ = session.Save()
}

// takeFlashes drains the pending flashes for rendering. Reading flashes
// mutates the session, so it has to be saved afterwards.
func takeFlashes(c *gin.Context) []models.Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save()
	}

	flashes := make([]models.Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(models.Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
