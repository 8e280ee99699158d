package config

import (
	"os"

	"github.com/stripe/stripe-go/v82"
)

// ConnectStripe khởi tạo client Stripe từ biến môi trường.
// Client được truyền vào PaymentService khi khởi tạo, không dùng biến toàn cục.
func ConnectStripe() *stripe.Client {
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	return stripe.NewClient(apiKey)
}
