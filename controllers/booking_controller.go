package controllers

import (
	"hbs/dto"
	"hbs/response"
	"hbs/services"

	"github.com/gin-gonic/gin"
)

// BookingController xử lý vòng đời booking
type BookingController struct {
	bookings *services.BookingService
}

// NewBookingController tạo instance mới của BookingController
func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// Create tạo booking mới cho người dùng đang đăng nhập
func (ctrl *BookingController) Create(c *gin.Context) {
	var input dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, role := currentUser(c)
	booking, err := ctrl.bookings.Create(&input, userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, booking)
}

// GetAll trả về danh sách booking có phân trang,
// user thường chỉ thấy booking của mình
func (ctrl *BookingController) GetAll(c *gin.Context) {
	var query dto.BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, role := currentUser(c)
	list, err := ctrl.bookings.FindAll(&query, userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithPagination(c, list.Data, list.Page, list.Limit, list.LastPage, list.Total)
}

// GetByID trả về một booking, chỉ chủ sở hữu hoặc admin được xem
func (ctrl *BookingController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, role := currentUser(c)
	booking, err := ctrl.bookings.FindOne(id, userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, booking)
}

// Update cập nhật booking, chỉ chủ sở hữu hoặc admin
func (ctrl *BookingController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, role := currentUser(c)
	booking, err := ctrl.bookings.Update(id, &input, userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, booking)
}

// Cancel hủy booking, chỉ chủ sở hữu hoặc admin
func (ctrl *BookingController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, role := currentUser(c)
	booking, err := ctrl.bookings.Cancel(id, userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, booking)
}
