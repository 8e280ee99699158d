package models

import (
	"time"
)

type Payment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"bookingId"`
	Booking   *Booking  `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	UserID    uint      `json:"userId"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"paymentMethod"`                 // stripe | cash
	Status    string    `json:"status" gorm:"default:pending"` // pending | completed | failed
	SessionID string    `json:"sessionId,omitempty" gorm:"index"` // Mã phiên checkout của Stripe, rỗng với cash
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
