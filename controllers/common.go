package controllers

import (
	"strconv"

	apperrors "hbs/errors"
	"hbs/response"

	"github.com/gin-gonic/gin"
)

// currentUser lấy userID và role đã được AuthMiddleware gán vào context
func currentUser(c *gin.Context) (uint, string) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")

	id, _ := userID.(uint)
	role, _ := userRole.(string)
	return id, role
}

// parseIDParam đọc tham số đường dẫn dạng số
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

// handleServiceError ánh xạ AppError sang mã HTTP tương ứng
func handleServiceError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeBookingNotFound,
		apperrors.ErrCodeRoomNotFound,
		apperrors.ErrCodeHotelNotFound,
		apperrors.ErrCodeReviewNotFound,
		apperrors.ErrCodePaymentNotFound,
		apperrors.ErrCodeUserNotFound:
		response.NotFound(c, appErr.Message)
	case apperrors.ErrCodeForbidden:
		response.Forbidden(c)
	case apperrors.ErrCodeRoomBooked, apperrors.ErrCodeReviewExists:
		response.Conflict(c, appErr.Message)
	case apperrors.ErrCodeInvalidDate,
		apperrors.ErrCodeInvalidStatus,
		apperrors.ErrCodePaymentCompleted,
		apperrors.ErrCodeInvalidAmount,
		apperrors.ErrCodeUserExists,
		apperrors.ErrCodeInvalidEmail,
		apperrors.ErrCodeInvalidRole,
		apperrors.ErrCodeRequiredField,
		apperrors.ErrCodeValidation:
		response.BadRequest(c, appErr.Message)
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken, apperrors.ErrCodeMissingToken:
		response.Unauthorized(c)
	default:
		response.ServerError(c)
	}
}
