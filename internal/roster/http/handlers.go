package http

import (
	"net/http"

	"github.com/Angelo270204/prototipado-backend/internal/roster"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	roster *roster.Roster
}

func Register(rg *gin.RouterGroup, r *roster.Roster) {
	h := &Handler{roster: r}

	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	if role := roster.Role(c.Query("role")); role != "" {
		c.JSON(http.StatusOK, gin.H{"ok": true, "users": h.roster.ByRole(role)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "users": h.roster.All()})
}

func (h *Handler) get(c *gin.Context) {
	u, ok := h.roster.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": u})
}
