package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	err = client.Ping(context.Background()).Err()
	require.NoError(t, err)

	return New(client), mr
}

func TestStore_LoadAbsentKey(t *testing.T) {
	store, _ := setupTestRedis(t)

	payload, found, err := store.Load(context.Background(), "collab:projects")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, payload)
}

func TestStore_SaveThenLoad(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	in := []byte(`[{"id":"proj-12345-6789","name":"Motor V3"}]`)
	require.NoError(t, store.Save(ctx, "collab:projects", in))

	out, found, err := store.Load(ctx, "collab:projects")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestStore_SaveOverwritesWholeCollection(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "collab:chat_messages", []byte(`[1,2,3]`)))
	require.NoError(t, store.Save(ctx, "collab:chat_messages", []byte(`[1]`)))

	out, found, err := store.Load(ctx, "collab:chat_messages")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[1]`), out)
}

func TestStore_SavePublishesChange(t *testing.T) {
	store, mr := setupTestRedis(t)

	sub := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer sub.Close()

	ps := sub.Subscribe(context.Background(), "collab:changed:collab:projects")
	defer ps.Close()

	_, err := ps.Receive(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "collab:projects", []byte(`[]`)))

	msg, err := ps.ReceiveMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "collab:projects", msg.Payload)
}

func TestStore_Ping(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
