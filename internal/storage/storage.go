// Package storage defines the persistence contract for the serialized
// collections. Each collection is a JSON array stored under a fixed key;
// backends only move opaque payloads.
package storage

import "context"

// Collection keys. Every backend stores each collection as one payload
// under its key.
const (
	KeyProjects      = "collab:projects"
	KeyChatMessages  = "collab:chat_messages"
	KeyChatRooms     = "collab:chat_rooms"
	KeyNotifications = "collab:notifications"
)

// Store is the durable key/value contract for serialized collections.
// Load reports found=false when the key has never been written; a
// malformed payload is the caller's problem (it falls back to seed data).
type Store interface {
	Load(ctx context.Context, key string) (payload []byte, found bool, err error)
	Save(ctx context.Context, key string, payload []byte) error
	Ping(ctx context.Context) error
}
