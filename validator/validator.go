package validator

import (
	"regexp"
	"time"

	"hbs/constants"
	"hbs/errors"
	"hbs/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators đăng ký các rule validate riêng cho binding của gin
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// bookingdate: chuỗi ngày dạng yyyy-mm-dd
		v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	}
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.Role != "" && !constants.IsValidRole(user.Role) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateBookingDates validate khoảng ngày đặt phòng
func ValidateBookingDates(startDate, endDate time.Time) error {
	if startDate.After(endDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày bắt đầu phải trước hoặc bằng ngày kết thúc", nil)
	}
	return nil
}

// ValidateBookingStatus validate trạng thái booking
func ValidateBookingStatus(status string) error {
	if !constants.IsValidBookingStatus(status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái booking không hợp lệ: "+status, nil)
	}
	return nil
}

// ValidateRating validate điểm đánh giá
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Điểm đánh giá phải từ 1 đến 5", nil)
	}
	return nil
}

// ValidateAmount validate số tiền thanh toán
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
