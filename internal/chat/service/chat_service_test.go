package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Angelo270204/prototipado-backend/internal/chat/domain"
	"github.com/Angelo270204/prototipado-backend/internal/chat/repository"
	"github.com/Angelo270204/prototipado-backend/internal/events"
	"github.com/Angelo270204/prototipado-backend/internal/roster"
	"github.com/Angelo270204/prototipado-backend/internal/storage"
	"github.com/Angelo270204/prototipado-backend/internal/storage/redisstore"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestChat(t *testing.T) (*ChatService, storage.Store, *events.Bus) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := redisstore.New(client)
	bus := events.NewBus()
	svc := NewChatService(repository.New(context.Background(), store), roster.Seed(), bus)
	return svc, store, bus
}

func TestSendMessage_AppendsInOrder(t *testing.T) {
	svc, _, _ := setupTestChat(t)
	ctx := context.Background()

	first, err := svc.SendMessage(ctx, SendMessageRequest{ProjectID: "p1", SenderID: "u1", Content: "Modelo listo"})
	require.NoError(t, err)
	second, err := svc.SendMessage(ctx, SendMessageRequest{ProjectID: "p1", SenderID: "u2", Content: "Approved"})
	require.NoError(t, err)

	msgs := svc.ProjectMessages("p1")
	require.Len(t, msgs, 2)
	assert.Equal(t, first.ID, msgs[0].ID)
	assert.Equal(t, second.ID, msgs[1].ID)
	assert.False(t, msgs[1].CreatedAt.Before(msgs[0].CreatedAt))

	// Ids are monotonic by creation order.
	assert.Less(t, first.ID, second.ID)
}

func TestSendMessage_SenderNameResolution(t *testing.T) {
	svc, _, _ := setupTestChat(t)
	ctx := context.Background()

	t.Run("explicit name wins", func(t *testing.T) {
		m, err := svc.SendMessage(ctx, SendMessageRequest{SenderID: "u2", SenderName: "Sra. Torres", Content: "hola"})
		require.NoError(t, err)
		assert.Equal(t, "Sra. Torres", m.SenderName)
	})

	t.Run("session user over roster lookup", func(t *testing.T) {
		session := roster.User{ID: "u9", Name: "Invitado Uno", Role: roster.RoleClient}
		m, err := svc.SendMessage(ctx, SendMessageRequest{SenderID: "u2", SessionUser: &session, Content: "hola"})
		require.NoError(t, err)
		assert.Equal(t, "Invitado Uno", m.SenderName)
	})

	t.Run("roster by id", func(t *testing.T) {
		m, err := svc.SendMessage(ctx, SendMessageRequest{ProjectID: "p1", SenderID: "u2", Content: "Approved"})
		require.NoError(t, err)
		assert.Equal(t, "Maria Torres", m.SenderName)
		assert.Equal(t, roster.RoleClient, m.SenderRole)
	})

	t.Run("roster by role when id unknown", func(t *testing.T) {
		m, err := svc.SendMessage(ctx, SendMessageRequest{SenderID: "ghost", SenderRole: roster.RoleOperator, Content: "hola"})
		require.NoError(t, err)
		assert.Equal(t, "Carlos Quispe", m.SenderName)
	})

	t.Run("fallback name", func(t *testing.T) {
		m, err := svc.SendMessage(ctx, SendMessageRequest{SenderID: "ghost", Content: "hola"})
		require.NoError(t, err)
		assert.Equal(t, domain.FallbackSenderName, m.SenderName)
	})
}

func TestSendMessage_ContentRules(t *testing.T) {
	svc, _, _ := setupTestChat(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, SendMessageRequest{SenderID: "u1", Content: "   "})
	assert.Error(t, err)

	long := strings.Repeat("a", domain.MaxContentLength+50)
	m, err := svc.SendMessage(ctx, SendMessageRequest{SenderID: "u1", Content: long})
	require.NoError(t, err)
	assert.Len(t, m.Content, domain.MaxContentLength)

	t.Run("truncation keeps rune boundaries", func(t *testing.T) {
		// "é" is two bytes and straddles the limit; a byte slice would
		// leave a dangling lead byte.
		straddling := strings.Repeat("a", domain.MaxContentLength-1) + "é"
		m, err := svc.SendMessage(ctx, SendMessageRequest{SenderID: "u1", Content: straddling})
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(m.Content))
		assert.Len(t, m.Content, domain.MaxContentLength-1)

		multibyte := strings.Repeat("ñ", domain.MaxContentLength)
		m, err = svc.SendMessage(ctx, SendMessageRequest{SenderID: "u1", Content: multibyte})
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(m.Content))
		assert.LessOrEqual(t, len(m.Content), domain.MaxContentLength)
	})
}

func TestCreateRoom_OnePerProject(t *testing.T) {
	svc, _, _ := setupTestChat(t)
	ctx := context.Background()

	first, err := svc.CreateRoom(ctx, "p1", "Motor V3", nil)
	require.NoError(t, err)
	assert.Len(t, first.Participants, 4)

	// A second call for the same project returns the existing room.
	second, err := svc.CreateRoom(ctx, "p1", "Motor V3", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, svc.Rooms(), 1)
}

func TestSendMessage_UpdatesRoom(t *testing.T) {
	svc, _, _ := setupTestChat(t)
	ctx := context.Background()

	_, err := svc.CreateRoom(ctx, "p1", "Motor V3", nil)
	require.NoError(t, err)

	m, err := svc.SendMessage(ctx, SendMessageRequest{ProjectID: "p1", SenderID: "u1", Content: "primer avance"})
	require.NoError(t, err)

	rooms := svc.Rooms()
	require.Len(t, rooms, 1)
	require.NotNil(t, rooms[0].LastMessage)
	assert.Equal(t, m.ID, rooms[0].LastMessage.ID)
	assert.Equal(t, 1, rooms[0].UnreadCount)
}

func TestRoomCreatedOnProjectShared(t *testing.T) {
	svc, _, bus := setupTestChat(t)

	bus.Publish(context.Background(), events.ProjectShared{
		ProjectID:   "p7",
		ProjectName: "Carcasa",
		CreateChat:  true,
		Notify:      true,
	})

	rooms := svc.Rooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, "p7", rooms[0].ProjectID)
	assert.Len(t, rooms[0].Participants, 4)

	t.Run("no room without the chat option", func(t *testing.T) {
		bus.Publish(context.Background(), events.ProjectShared{ProjectID: "p8", CreateChat: false})
		assert.Len(t, svc.Rooms(), 1)
	})
}

func TestMarkMessageRead(t *testing.T) {
	svc, _, _ := setupTestChat(t)
	ctx := context.Background()

	m, err := svc.SendMessage(ctx, SendMessageRequest{ProjectID: "p1", SenderID: "u1", Content: "leer"})
	require.NoError(t, err)
	assert.False(t, m.Read)

	svc.MarkMessageRead(m.ID)
	msgs := svc.ProjectMessages("p1")
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].Read)

	// Unknown ids are a no-op.
	svc.MarkMessageRead("msg-424242")
}

func TestChat_PersistenceRoundTrip(t *testing.T) {
	svc, store, _ := setupTestChat(t)
	ctx := context.Background()

	m, err := svc.SendMessage(ctx, SendMessageRequest{ProjectID: "p1", SenderID: "u2", Content: "Approved"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		data, found, err := store.Load(ctx, storage.KeyChatMessages)
		return err == nil && found && strings.Contains(string(data), m.ID)
	}, time.Second, 10*time.Millisecond)

	// A fresh repository continues the id sequence after the reload.
	reloaded := NewChatService(repository.New(ctx, store), roster.Seed(), events.NewBus())
	msgs := reloaded.ProjectMessages("p1")
	require.Len(t, msgs, 1)
	assert.Equal(t, m.ID, msgs[0].ID)
	assert.Equal(t, m.Content, msgs[0].Content)
	assert.Equal(t, m.SenderName, msgs[0].SenderName)

	next, err := reloaded.SendMessage(ctx, SendMessageRequest{ProjectID: "p1", SenderID: "u1", Content: "gracias"})
	require.NoError(t, err)
	assert.NotEqual(t, m.ID, next.ID)
}
