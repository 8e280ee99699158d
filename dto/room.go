package dto

// CreateRoomRequest dữ liệu tạo phòng mới
type CreateRoomRequest struct {
	HotelID     uint    `json:"hotelId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
}

// UpdateRoomRequest dữ liệu cập nhật phòng, các trường đều tùy chọn
type UpdateRoomRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
}

// RoomListQuery tham số truy vấn danh sách phòng
type RoomListQuery struct {
	HotelID uint `form:"hotelId"`
	Page    int  `form:"page"`
	Limit   int  `form:"limit"`
}
