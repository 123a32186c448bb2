package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret-pw")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pw", hash)

	t.Run("verifies correct password", func(t *testing.T) {
		require.True(t, CheckPassword(hash, "s3cret-pw"))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		require.False(t, CheckPassword(hash, "other-pw"))
	})

	t.Run("rejects garbage hash", func(t *testing.T) {
		require.False(t, CheckPassword("not-a-hash", "s3cret-pw"))
	})
}
