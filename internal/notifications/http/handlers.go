package http

import (
	"net/http"

	"github.com/Angelo270204/prototipado-backend/internal/auth"
	"github.com/Angelo270204/prototipado-backend/internal/notifications/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.NotificationService
}

func Register(rg *gin.RouterGroup, svc *service.NotificationService) {
	h := &Handler{svc: svc}

	rg.GET("", h.list)
	rg.GET("/unread-count", h.unreadCount)
	rg.POST("/:id/read", h.markRead)
}

// userID resolves the target user: the session user, or an explicit
// user_id query for unauthenticated development calls.
func userID(c *gin.Context) string {
	if u, ok := auth.CurrentUser(c); ok {
		return u.ID
	}
	return c.Query("user_id")
}

func (h *Handler) list(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "user not resolved"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "notifications": h.svc.ForUser(uid)})
}

func (h *Handler) unreadCount(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "user not resolved"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "unread": h.svc.UnreadCount(uid)})
}

func (h *Handler) markRead(c *gin.Context) {
	h.svc.MarkRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
