package dto

import "hbs/models"

// CreateBookingRequest dữ liệu tạo booking mới
type CreateBookingRequest struct {
	RoomID    uint   `json:"roomId" binding:"required"`
	StartDate string `json:"startDate" binding:"required,bookingdate"`
	EndDate   string `json:"endDate" binding:"required,bookingdate"`
	Status    string `json:"status"`
}

// UpdateBookingRequest dữ liệu cập nhật booking, các trường đều tùy chọn
type UpdateBookingRequest struct {
	StartDate string `json:"startDate" binding:"omitempty,bookingdate"`
	EndDate   string `json:"endDate" binding:"omitempty,bookingdate"`
	Status    string `json:"status"`
}

// BookingListQuery tham số truy vấn danh sách booking
type BookingListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
	UserID uint   `form:"userId"`
}

// BookingList kết quả danh sách booking có phân trang
type BookingList struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	LastPage int              `json:"lastPage"`
	Data     []models.Booking `json:"data"`
}
