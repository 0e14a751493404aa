package repository

import (
	"context"
	"testing"

	"github.com/Angelo270204/prototipado-backend/internal/storage"
	"github.com/Angelo270204/prototipado-backend/internal/storage/redisstore"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) storage.Store {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return redisstore.New(client)
}

func TestNew_SeedsWhenAbsent(t *testing.T) {
	store := setupTestStore(t)

	repo := New(context.Background(), store)

	seeded := repo.All()
	require.NotEmpty(t, seeded)
	_, ok := repo.Find("proj-10001-0001")
	assert.True(t, ok)
}

func TestNew_SeedsOnCorruptPayload(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.Save(context.Background(), storage.KeyProjects, []byte("{not json")))

	repo := New(context.Background(), store)

	assert.NotEmpty(t, repo.All())
}

func TestUpdate_UnknownProject(t *testing.T) {
	store := setupTestStore(t)
	repo := New(context.Background(), store)

	p, _ := repo.Find("proj-10001-0001")
	p.ID = "proj-99999-9999"
	assert.Error(t, repo.Update(p))
}
