package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	redisstore "github.com/jhoicas/PetShop-api/internal/infrastructure/redis"
)

func newStore(t *testing.T, ttl time.Duration) (*redisstore.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return redisstore.NewSessionStore(rdb, "auth-storage", ttl), mr
}

func TestSessionStore_ClaveAusente(t *testing.T) {
	s, _ := newStore(t, 0)
	got, err := s.Load(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, entity.LoggedOut(), got)
}

func TestSessionStore_GuardaYRehidrata(t *testing.T) {
	s, mr := newStore(t, 0)
	ctx := context.Background()
	sess := entity.Session{
		User:            &entity.User{ID: 2, DisplayName: "Maria Silva", Email: "maria@petshop.com", Role: entity.RoleEmployee},
		IsAuthenticated: true,
	}
	require.NoError(t, s.Save(ctx, "sid", sess))

	raw, err := mr.Get("auth-storage:sid")
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"user":{"id":2,"displayName":"Maria Silva","email":"maria@petshop.com","role":"employee"},"isAuthenticated":true}`,
		raw)

	got, err := s.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestSessionStore_TTL(t *testing.T) {
	s, mr := newStore(t, time.Minute)
	ctx := context.Background()
	sess := entity.Session{User: &entity.User{ID: 1, Role: entity.RoleAdmin}, IsAuthenticated: true}
	require.NoError(t, s.Save(ctx, "sid", sess))
	assert.Equal(t, time.Minute, mr.TTL("auth-storage:sid"))

	mr.FastForward(2 * time.Minute)
	got, err := s.Load(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, got.IsAuthenticated)
}

func TestSessionStore_ValorCorrupto(t *testing.T) {
	s, mr := newStore(t, 0)
	require.NoError(t, mr.Set("auth-storage:sid", "{no-json"))
	_, err := s.Load(context.Background(), "sid")
	assert.Error(t, err)
}

func TestSessionStore_ServidorCaido(t *testing.T) {
	s, mr := newStore(t, 0)
	mr.Close()
	_, err := s.Load(context.Background(), "sid")
	assert.Error(t, err)
}
