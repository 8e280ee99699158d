package dto

import "hbs/models"

// CreateHotelRequest dữ liệu tạo khách sạn mới
type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
	Amenities   []string `json:"amenities"`
}

// UpdateHotelRequest dữ liệu cập nhật khách sạn, các trường đều tùy chọn
type UpdateHotelRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
	Amenities   []string `json:"amenities"`
}

// HotelListQuery tham số truy vấn danh sách khách sạn
type HotelListQuery struct {
	Name     string `form:"name"`
	Location string `form:"location"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// ScoredHotel khách sạn kèm điểm phù hợp khi tìm kiếm mờ
type ScoredHotel struct {
	Hotel models.Hotel `json:"hotel"`
	Score int          `json:"score"`
}
