package controllers

import (
	"hbs/dto"
	"hbs/response"
	"hbs/services"

	"github.com/gin-gonic/gin"
)

// RoomController xử lý danh mục phòng
type RoomController struct {
	rooms *services.RoomService
}

// NewRoomController tạo instance mới của RoomController
func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// GetAll trả về danh sách phòng có phân trang, lọc theo khách sạn nếu có
func (ctrl *RoomController) GetAll(c *gin.Context) {
	var query dto.RoomListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, limit := normalizePage(query.Page, query.Limit)
	rooms, total, err := ctrl.rooms.FindAll(query.HotelID, page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithPagination(c, rooms, page, limit, services.LastPage(total, limit), total)
}

// GetByID trả về một phòng kèm thông tin khách sạn
func (ctrl *RoomController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	room, err := ctrl.rooms.FindByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, room)
}

// Create tạo phòng mới (admin)
func (ctrl *RoomController) Create(c *gin.Context) {
	var input dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := ctrl.rooms.Create(&input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, room)
}

// Update cập nhật phòng (admin)
func (ctrl *RoomController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := ctrl.rooms.Update(id, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, room)
}

// Delete xóa phòng (admin)
func (ctrl *RoomController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.rooms.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, nil)
}
