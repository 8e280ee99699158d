package dto

import (
	"time"

	"hbs/models"
)

// CreateUserRequest dữ liệu admin tạo người dùng, được chọn role
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// UpdateUserRequest dữ liệu admin cập nhật người dùng
type UpdateUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role" binding:"omitempty,oneof=user admin"`
}

// UpdateProfileRequest dữ liệu người dùng tự cập nhật hồ sơ
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// UserListQuery tham số truy vấn danh sách người dùng
type UserListQuery struct {
	Name  string `form:"name"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

// UserResponse thông tin người dùng trả về cho client
type UserResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUserResponse chuyển model User sang UserResponse
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Avatar:     user.Avatar,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

// ToUserResponses chuyển danh sách model User sang danh sách UserResponse
func ToUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
