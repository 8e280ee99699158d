package controllers

import (
	"time"

	"hbs/config"
	"hbs/dto"
	"hbs/models"
	"hbs/response"
	"hbs/services"

	"github.com/gin-gonic/gin"
)

// Register đăng ký tài khoản mới, role luôn là user
func Register(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(config.DB, models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Role: user.Role}, 60*24*3, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, gin.H{
		"user":        dto.ToUserResponse(&user),
		"accessToken": accessToken,
	})
}

// Login đăng nhập bằng email và mật khẩu
func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(config.DB, input.Email)
	if err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if !services.CheckPassword(user.Password, input.Password) {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	refreshToken, err := services.GenerateToken(userInfo, 60*24*30, false)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(&user),
	})
}

// VerifyEmail xác thực email bằng mã được gửi khi đăng ký.
// Mã chỉ được so khớp trong phạm vi tài khoản của email đó,
// tra cứu mã toàn cục sẽ cho phép dò xác thực tài khoản người khác.
func VerifyEmail(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("token")
	if email == "" || code == "" {
		response.BadRequest(c, "Cần email và mã xác thực")
		return
	}

	user, err := services.GetUserByEmail(config.DB, email)
	if err != nil {
		response.BadRequest(c, "Email hoặc mã xác thực không hợp lệ")
		return
	}

	if user.Code == "" || user.Code != code {
		response.BadRequest(c, "Email hoặc mã xác thực không hợp lệ")
		return
	}

	// Mã xác thực chỉ có hiệu lực 5 phút
	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	user.IsVerified = true
	user.Code = ""
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"verified": true})
}

// ForgetPassword gửi mã đặt lại mật khẩu qua email
func ForgetPassword(c *gin.Context) {
	var input dto.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(config.DB, input.Email)
	if err != nil {
		// Không tiết lộ email có tồn tại hay không
		response.Success(c, nil)
		return
	}

	if err := services.RegenerateVerificationCode(config.DB, &user); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// ResetPassword đặt lại mật khẩu bằng mã xác thực
func ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(config.DB, input.Email)
	if err != nil {
		response.BadRequest(c, "Email hoặc mã xác thực không hợp lệ")
		return
	}

	if user.Code == "" || user.Code != input.Code {
		response.BadRequest(c, "Email hoặc mã xác thực không hợp lệ")
		return
	}

	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	hashedPassword, err := services.HashPassword(input.NewPassword)
	if err != nil {
		response.ServerError(c)
		return
	}

	user.Password = hashedPassword
	user.Code = ""
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
