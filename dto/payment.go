package dto

// StripeCheckoutRequest dữ liệu tạo phiên thanh toán Stripe
type StripeCheckoutRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	BookingID uint    `json:"bookingId" binding:"required"`
}

// StripeCheckoutResponse chứa URL chuyển hướng đến trang thanh toán Stripe
type StripeCheckoutResponse struct {
	URL string `json:"url"`
}

// CashPaymentRequest dữ liệu ghi nhận thanh toán tiền mặt
type CashPaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	BookingID uint    `json:"bookingId" binding:"required"`
}
