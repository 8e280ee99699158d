package validator

import (
	"testing"
	"time"

	"hbs/constants"
	apperrors "hbs/errors"
	"hbs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	t.Run("user hợp lệ", func(t *testing.T) {
		err := ValidateUser(&models.User{
			Email:    "binh@example.com",
			Password: "secret123",
			Role:     constants.RoleUser,
		})
		assert.NoError(t, err)
	})

	t.Run("email trống", func(t *testing.T) {
		err := ValidateUser(&models.User{Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeRequiredField, apperrors.GetAppError(err).Code)
	})

	t.Run("email sai định dạng", func(t *testing.T) {
		err := ValidateUser(&models.User{Email: "khong-phai-email", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidEmail, apperrors.GetAppError(err).Code)
	})

	t.Run("mật khẩu quá ngắn", func(t *testing.T) {
		err := ValidateUser(&models.User{Email: "binh@example.com", Password: "abc"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetAppError(err).Code)
	})

	t.Run("role không hợp lệ", func(t *testing.T) {
		err := ValidateUser(&models.User{Email: "binh@example.com", Password: "secret123", Role: "superadmin"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidRole, apperrors.GetAppError(err).Code)
	})
}

func TestValidateBookingDates(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateBookingDates(start, start.AddDate(0, 0, 2)))
	// Một ngày duy nhất vẫn hợp lệ
	assert.NoError(t, ValidateBookingDates(start, start))

	err := ValidateBookingDates(start, start.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidDate, apperrors.GetAppError(err).Code)
}

func TestValidateBookingStatus(t *testing.T) {
	assert.NoError(t, ValidateBookingStatus(constants.BookingStatusPending))
	assert.NoError(t, ValidateBookingStatus(constants.BookingStatusConfirmed))
	assert.NoError(t, ValidateBookingStatus(constants.BookingStatusCancelled))
	assert.Error(t, ValidateBookingStatus("done"))
}

func TestValidateRating(t *testing.T) {
	assert.NoError(t, ValidateRating(1))
	assert.NoError(t, ValidateRating(5))
	assert.Error(t, ValidateRating(0))
	assert.Error(t, ValidateRating(6))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(100))
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(-5))
}
