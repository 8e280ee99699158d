package constants

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Payment status
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment methods
const (
	PaymentMethodStripe = "stripe"
	PaymentMethodCash   = "cash"
)

// IsValidRole kiểm tra role có hợp lệ không
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// IsValidBookingStatus kiểm tra trạng thái booking có hợp lệ không
func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
