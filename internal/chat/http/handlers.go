package http

import (
	"net/http"
	"strings"

	"github.com/Angelo270204/prototipado-backend/internal/auth"
	"github.com/Angelo270204/prototipado-backend/internal/chat/domain"
	"github.com/Angelo270204/prototipado-backend/internal/chat/service"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.ChatService
}

func Register(rg *gin.RouterGroup, svc *service.ChatService) {
	h := &Handler{svc: svc}

	rg.POST("/messages", h.sendMessage)
	rg.POST("/messages/:id/read", h.markRead)
	rg.GET("/projects/:id/messages", h.projectMessages)
	rg.GET("/rooms", h.rooms)
	rg.POST("/rooms", h.createRoom)
}

type sendMessageReq struct {
	ProjectID   string `json:"project_id,omitempty"`
	SenderID    string `json:"sender_id"`
	SenderName  string `json:"sender_name,omitempty"`
	SenderRole  string `json:"sender_role,omitempty"`
	RecipientID string `json:"recipient_id,omitempty"`
	Content     string `json:"content"`
}

func (h *Handler) sendMessage(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	svcReq := service.SendMessageRequest{
		ProjectID:   req.ProjectID,
		SenderID:    req.SenderID,
		SenderName:  req.SenderName,
		SenderRole:  roster.Role(req.SenderRole),
		RecipientID: req.RecipientID,
		Content:     req.Content,
	}
	if u, ok := auth.CurrentUser(c); ok {
		svcReq.SessionUser = &u
		if svcReq.SenderID == "" {
			svcReq.SenderID = u.ID
		}
	}

	m, err := h.svc.SendMessage(c.Request.Context(), svcReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": m})
}

func (h *Handler) markRead(c *gin.Context) {
	h.svc.MarkMessageRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) projectMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "messages": h.svc.ProjectMessages(c.Param("id"))})
}

func (h *Handler) rooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "rooms": h.svc.Rooms()})
}

type createRoomReq struct {
	ProjectID    string           `json:"project_id"`
	ProjectName  string           `json:"project_name"`
	Participants []participantReq `json:"participants,omitempty"`
}

type participantReq struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (h *Handler) createRoom(c *gin.Context) {
	var req createRoomReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProjectID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// An omitted list means the service snapshots the full roster.
	participants := make([]domain.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, domain.Participant{
			ID:   p.ID,
			Name: p.Name,
			Role: roster.Role(p.Role),
		})
	}

	room, err := h.svc.CreateRoom(c.Request.Context(), req.ProjectID, req.ProjectName, participants)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "room": room})
}
