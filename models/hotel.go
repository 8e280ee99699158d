package models

import (
	"time"

	"github.com/lib/pq"
)

type Hotel struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Rating      float64        `json:"rating" gorm:"default:0"` // Điểm trung bình từ các đánh giá
	Avatar      string         `json:"avatar"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms       []Room         `json:"rooms,omitempty" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
	Reviews     []Review       `json:"reviews,omitempty" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}
