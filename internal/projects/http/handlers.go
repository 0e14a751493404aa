package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Angelo270204/prototipado-backend/internal/auth"
	"github.com/Angelo270204/prototipado-backend/internal/projects/domain"
	"github.com/Angelo270204/prototipado-backend/internal/projects/service"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.ProjectService
}

func Register(rg *gin.RouterGroup, svc *service.ProjectService) {
	h := &Handler{svc: svc}

	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id/status", h.updateStatus)
	rg.PATCH("/:id/progress", h.updateProgress)
	rg.POST("/:id/approve", h.approve)
	rg.POST("/:id/reject", h.reject)
	rg.POST("/:id/share-client", h.shareClient)
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	actorID := ""
	if u, ok := auth.CurrentUser(c); ok {
		actorID = u.ID
	}

	createReq := service.CreateRequest{
		Name:               req.Name,
		Client:             req.Client,
		PartsCount:         req.PartsCount,
		ValidationRequired: req.ValidationRequired,
		ActorID:            actorID,
	}

	var (
		p   *domain.Project
		err error
	)
	if len(req.ShareWith) > 0 {
		roles := make([]roster.Role, 0, len(req.ShareWith))
		for _, r := range req.ShareWith {
			roles = append(roles, roster.Role(r))
		}
		opts := service.ShareOptions{
			Roles:      roles,
			CreateChat: req.CreateChat == nil || *req.CreateChat,
			Notify:     req.Notify == nil || *req.Notify,
		}
		p, err = h.svc.CreateAndShare(c.Request.Context(), createReq, opts)
	} else {
		p, err = h.svc.Create(c.Request.Context(), createReq)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	if role := roster.Role(c.Query("role")); role != "" {
		if !role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown role"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.svc.FilterBySharedRole(role)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.svc.All()})
}

func (h *Handler) get(c *gin.Context) {
	p, ok := h.svc.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p, "status_label": p.Status.DisplayLabel()})
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		if errors.Is(err, domain.ErrUnknownStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) updateProgress(c *gin.Context) {
	var req progressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.svc.UpdateProgress(c.Request.Context(), c.Param("id"), req.Progress); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) approve(c *gin.Context) {
	actorID := ""
	if u, ok := auth.CurrentUser(c); ok {
		actorID = u.ID
	}
	if err := h.svc.Approve(c.Request.Context(), c.Param("id"), actorID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) reject(c *gin.Context) {
	var req rejectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	actorID := ""
	if u, ok := auth.CurrentUser(c); ok {
		actorID = u.ID
	}
	if err := h.svc.Reject(c.Request.Context(), c.Param("id"), req.Reason, actorID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) shareClient(c *gin.Context) {
	actorID := ""
	if u, ok := auth.CurrentUser(c); ok {
		actorID = u.ID
	}
	if err := h.svc.ShareWithClient(c.Request.Context(), c.Param("id"), actorID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
