package tokens_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulsyync/soulsyync-api/internal/tokens"
)

func newRevoker(t *testing.T) (*tokens.Revoker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	r, err := tokens.NewRevoker("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r, mr
}

func TestRevoke(t *testing.T) {
	r, mr := newRevoker(t)
	ctx := context.Background()

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	t.Run("entry expires with the token", func(t *testing.T) {
		mr.FastForward(2 * time.Hour)

		revoked, err := r.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}

func TestRevokeExpiredTokenIsNoop(t *testing.T) {
	r, _ := newRevoker(t)
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "jti-2", -time.Minute))

	revoked, err := r.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestBadURL(t *testing.T) {
	_, err := tokens.NewRevoker("not a url")
	assert.Error(t, err)
}
