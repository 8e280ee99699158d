package models

import (
	"time"
)

type Booking struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId"`
	User       *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID     uint      `json:"roomId"`
	Room       *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	StartDate  time.Time `json:"startDate" gorm:"type:date"` // Ngày nhận phòng (bao gồm)
	EndDate    time.Time `json:"endDate" gorm:"type:date"`   // Ngày trả phòng (bao gồm)
	TotalPrice float64   `json:"totalPrice"`                 // Tổng giá = số đêm x giá phòng
	Status     string    `json:"status" gorm:"default:pending"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Payments   []Payment `json:"payments,omitempty" gorm:"foreignKey:BookingID"`
}

// Nights tính số đêm của booking (làm tròn lên)
func (b *Booking) Nights() int {
	hours := b.EndDate.Sub(b.StartDate).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}
