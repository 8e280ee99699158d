package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New User" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"-"`
	IsVerified    bool      `gorm:"default:false" json:"isVerified"`
	Code          string    `json:"-"`
	CodeCreatedAt time.Time `json:"-"`
	Avatar        string    `json:"avatar"`
	Role          string    `gorm:"default:user" json:"role"`
	Bookings      []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews       []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Payments      []Payment `json:"payments,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// IsAdmin kiểm tra user có phải admin không
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
