package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessRoundTrip(t *testing.T) {
	token, err := SignAccess("user-1", "a@b.c", "admin")
	require.NoError(t, err)

	claims, err := ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestRefreshRoundTrip(t *testing.T) {
	token, err := SignRefresh("user-2", "x@y.z", "user")
	require.NoError(t, err)

	claims, err := ParseRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestTokenFamiliesAreNotInterchangeable(t *testing.T) {
	access, err := SignAccess("user-3", "a@b.c", "user")
	require.NoError(t, err)
	refresh, err := SignRefresh("user-3", "a@b.c", "user")
	require.NoError(t, err)

	_, err = ParseRefresh(access)
	assert.Error(t, err)
	_, err = ParseAccess(refresh)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseAccess("not-a-token")
	assert.Error(t, err)
}
