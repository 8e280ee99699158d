package models

import (
	"time"
)

type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	HotelID     uint      `json:"hotelId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"` // Giá một đêm, nguồn tính tiền cho booking
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel       Hotel     `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Bookings    []Booking `json:"bookings,omitempty" gorm:"foreignKey:RoomID"`
}
