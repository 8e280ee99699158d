package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId"`
	HotelID   uint      `json:"hotelId"`
	Comment   string    `json:"comment"` // Bình luận của người dùng
	Rating    int       `json:"rating"`  // Số sao (điểm đánh giá)
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
