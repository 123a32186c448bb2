package otp

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestRedisStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Minute)

	t.Run("get before set", func(t *testing.T) {
		_, err := store.Get(ctx, "9876543210")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "9876543210", "123456"))
		code, err := store.Get(ctx, "9876543210")
		require.NoError(t, err)
		require.Equal(t, "123456", code)
	})

	t.Run("set overwrites pending code", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "9876543210", "654321"))
		code, err := store.Get(ctx, "9876543210")
		require.NoError(t, err)
		require.Equal(t, "654321", code)
	})

	t.Run("delete discards code", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "9876543210"))
		_, err := store.Get(ctx, "9876543210")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "9876543210"))
	})

	t.Run("code expires after TTL", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "5550001111", "111222"))
		mr.FastForward(2 * time.Minute)
		_, err := store.Get(ctx, "5550001111")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewMemoryStore(time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Set(ctx, "9876543210", "123456"))

	code, err := store.Get(ctx, "9876543210")
	require.NoError(t, err)
	require.Equal(t, "123456", code)

	t.Run("expires after TTL", func(t *testing.T) {
		current = current.Add(2 * time.Minute)
		_, err := store.Get(ctx, "9876543210")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete unknown phone", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "0000000000"))
	})
}
