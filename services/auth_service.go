package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"time"

	"hbs/config"
	"hbs/constants"
	"hbs/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func smtpConfig() (from, password, host, port string) {
	from = config.GetEnv("SMTP_FROM")
	password = config.GetEnv("SMTP_PASSWORD")
	host = config.GetEnvDefault("SMTP_HOST", "smtp.gmail.com")
	port = config.GetEnvDefault("SMTP_PORT", "587")
	return
}

func sendVerificationEmail(email string, code string) error {
	from, password, host, port := smtpConfig()
	to := []string{email}
	subject := "Subject: Mã xác thực tài khoản của bạn\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Cảm ơn bạn đã đăng ký tài khoản.</p>
			<p>Mã xác thực của bạn là: <strong>%s</strong></p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

func sendResetPasswordEmail(email string, code string) error {
	from, password, host, port := smtpConfig()
	to := []string{email}
	subject := "Subject: Yêu cầu đặt lại mật khẩu\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Đặt lại mật khẩu</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu đặt lại mật khẩu cho tài khoản của bạn.</p>
			<p>Mã đặt lại mật khẩu của bạn là: <strong>%s</strong></p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

func GetUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	result := db.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword so sánh mật khẩu với hash đã lưu
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// CreateUser tạo user mới kèm mã xác thực và gửi email xác thực
func CreateUser(db *gorm.DB, input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("không được để trống email, password")
	}

	existing, err := GetUserByEmail(db, input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existing.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	role := input.Role
	if role == "" {
		role = constants.RoleUser
	}

	user := models.User{
		Name:          input.Name,
		Email:         input.Email,
		Password:      hashedPassword,
		IsVerified:    false,
		Code:          code,
		CodeCreatedAt: time.Now(),
		Role:          role,
		Avatar:        input.Avatar,
	}

	result := db.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if err := sendVerificationEmail(user.Email, code); err != nil {
		// Tài khoản đã được tạo, chỉ ghi log lỗi gửi mail
		fmt.Printf("không thể gửi email xác thực: %v\n", err)
	}

	return user, nil
}

// RegenerateVerificationCode tạo lại mã xác thực và gửi email cho user
func RegenerateVerificationCode(db *gorm.DB, user *models.User) error {
	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("không thể tạo mã xác minh mới: %v", err)
	}

	user.Code = newCode
	user.CodeCreatedAt = time.Now()

	if err := db.Save(user).Error; err != nil {
		return fmt.Errorf("không thể cập nhật mã xác minh: %v", err)
	}

	if err := sendResetPasswordEmail(user.Email, newCode); err != nil {
		return fmt.Errorf("không thể gửi email xác minh: %v", err)
	}

	return nil
}
