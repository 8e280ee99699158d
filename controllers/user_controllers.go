package controllers

import (
	"hbs/config"
	"hbs/dto"
	"hbs/models"
	"hbs/response"
	"hbs/services"

	"github.com/gin-gonic/gin"
)

// UserController xử lý quản trị người dùng và hồ sơ cá nhân
type UserController struct {
	users *services.UserService
}

// NewUserController tạo instance mới của UserController
func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetAll trả về danh sách người dùng có phân trang (admin)
func (ctrl *UserController) GetAll(c *gin.Context) {
	var query dto.UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	users, total, err := ctrl.users.FindAll(query.Name, query.Page, query.Limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	page, limit := normalizePage(query.Page, query.Limit)
	response.SuccessWithPagination(c, dto.ToUserResponses(users), page, limit, services.LastPage(total, limit), total)
}

// Create tạo người dùng mới, admin được gán role ngay khi tạo
func (ctrl *UserController) Create(c *gin.Context) {
	var input dto.CreateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(config.DB, models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, dto.ToUserResponse(&user))
}

// GetByID trả về một người dùng theo ID (admin)
func (ctrl *UserController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.users.FindByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.ToUserResponse(user))
}

// Update cập nhật thông tin người dùng (admin)
func (ctrl *UserController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.users.Update(id, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.ToUserResponse(user))
}

// Delete xóa người dùng (admin)
func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.users.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, nil)
}

// Profile trả về hồ sơ của người dùng đang đăng nhập
func (ctrl *UserController) Profile(c *gin.Context) {
	userID, _ := currentUser(c)

	user, err := ctrl.users.FindByID(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.ToUserResponse(user))
}

// UpdateProfile cập nhật hồ sơ của người dùng đang đăng nhập
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	userID, _ := currentUser(c)

	var input dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.users.UpdateProfile(userID, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.ToUserResponse(user))
}

// UploadAvatar upload ảnh đại diện của người dùng đang đăng nhập
func (ctrl *UserController) UploadAvatar(c *gin.Context) {
	userID, _ := currentUser(c)

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Cần file ảnh trong trường image")
		return
	}

	user, err := ctrl.users.UploadAvatar(c.Request.Context(), userID, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.ToUserResponse(user))
}

// RemoveAvatar xóa ảnh đại diện của người dùng đang đăng nhập
func (ctrl *UserController) RemoveAvatar(c *gin.Context) {
	userID, _ := currentUser(c)

	user, err := ctrl.users.RemoveAvatar(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.ToUserResponse(user))
}

// normalizePage chuẩn hóa tham số phân trang
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
