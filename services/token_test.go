package services

import (
	"testing"

	"hbs/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "access-secret-test")
	t.Setenv("SECRET_KEY_REFRESH_TOKEN", "refresh-secret-test")

	t.Run("access token giữ nguyên userid và role", func(t *testing.T) {
		token, err := GenerateToken(UserInfo{UserID: 42, Role: constants.RoleAdmin}, 60, true)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, role, err := GetUserIDFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), userID)
		assert.Equal(t, constants.RoleAdmin, role)
	})

	t.Run("token rác bị từ chối", func(t *testing.T) {
		_, _, err := GetUserIDFromToken("khong.phai.token")
		assert.Error(t, err)
	})

	t.Run("refresh token không dùng được làm access token", func(t *testing.T) {
		token, err := GenerateToken(UserInfo{UserID: 42, Role: constants.RoleUser}, 60, false)
		require.NoError(t, err)

		_, _, err = GetUserIDFromToken(token)
		assert.Error(t, err)
	})

	t.Run("token hết hạn bị từ chối", func(t *testing.T) {
		token, err := GenerateToken(UserInfo{UserID: 42, Role: constants.RoleUser}, -1, true)
		require.NoError(t, err)

		_, _, err = GetUserIDFromToken(token)
		assert.Error(t, err)
	})
}
