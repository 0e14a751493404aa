package repository

import (
	"time"

	"github.com/Angelo270204/prototipado-backend/internal/chat/domain"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
)

func seedMessages() []domain.ChatMessage {
	return []domain.ChatMessage{
		{
			ID:         "msg-1",
			SenderID:   "u1",
			SenderName: "Angelo Ramos",
			SenderRole: roster.RoleDesigner,
			Content:    "Bienvenidos al taller de prototipado.",
			CreatedAt:  time.Now().Add(-96 * time.Hour),
			Read:       true,
		},
	}
}

func seedRooms() []domain.ChatRoom {
	return []domain.ChatRoom{}
}
