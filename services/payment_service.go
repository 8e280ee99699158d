package services

import (
	"context"
	"errors"

	"hbs/config"
	"hbs/constants"
	"hbs/dto"
	apperrors "hbs/errors"
	"hbs/models"
	"hbs/services/logger"

	"github.com/goccy/go-json"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

// PaymentServiceOptions chứa các dependency của PaymentService
type PaymentServiceOptions struct {
	DB     *gorm.DB
	Stripe *stripe.Client
	Logger logger.Logger
}

// PaymentService ghi nhận thanh toán cho booking: tiền mặt và thẻ qua Stripe
type PaymentService struct {
	db     *gorm.DB
	stripe *stripe.Client
	logger logger.Logger
}

// NewPaymentService tạo instance mới của PaymentService.
// Client Stripe được truyền vào khi khởi tạo, không dùng biến toàn cục.
func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PaymentService{
		db:     opts.DB,
		stripe: opts.Stripe,
		logger: l,
	}
}

func (s *PaymentService) findBookingAndUser(bookingID, userID uint) (*models.Booking, *models.User, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, "Không tìm thấy booking", err)
		}
		return nil, nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Không tìm thấy người dùng", err)
		}
		return nil, nil, err
	}

	return &booking, &user, nil
}

// CreateStripeCheckout tạo phiên checkout trên Stripe và ghi payment ở trạng thái pending.
// Mã phiên được lưu lại để webhook đối soát khi thanh toán hoàn tất.
func (s *PaymentService) CreateStripeCheckout(ctx context.Context, req *dto.StripeCheckoutRequest, userID uint) (*dto.StripeCheckoutResponse, error) {
	if req.Amount <= 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "Số tiền không hợp lệ", nil)
	}

	booking, user, err := s.findBookingAndUser(req.BookingID, userID)
	if err != nil {
		return nil, err
	}

	currency := config.GetEnvDefault("STRIPE_CURRENCY", "egp")
	successURL := config.GetEnvDefault("STRIPE_SUCCESS_URL", "http://localhost:3000/success")
	cancelURL := config.GetEnvDefault("STRIPE_CANCEL_URL", "http://localhost:3000/cancel")

	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String("payment"),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String("Hotel Booking Payment"),
					},
					UnitAmount: stripe.Int64(int64(req.Amount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}

	session, err := s.stripe.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		BookingID: booking.ID,
		UserID:    user.ID,
		Amount:    req.Amount,
		Currency:  currency,
		Method:    constants.PaymentMethodStripe,
		Status:    constants.PaymentStatusPending,
		SessionID: session.ID,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	s.logger.Info("Tạo phiên checkout Stripe %s cho booking %d", session.ID, booking.ID)
	return &dto.StripeCheckoutResponse{URL: session.URL}, nil
}

// CreateCashPayment ghi nhận thanh toán tiền mặt ở trạng thái pending, không gọi dịch vụ ngoài
func (s *PaymentService) CreateCashPayment(req *dto.CashPaymentRequest, userID uint) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "Số tiền không hợp lệ", nil)
	}

	booking, user, err := s.findBookingAndUser(req.BookingID, userID)
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		BookingID: booking.ID,
		UserID:    user.ID,
		Amount:    req.Amount,
		Currency:  config.GetEnvDefault("STRIPE_CURRENCY", "egp"),
		Method:    constants.PaymentMethodCash,
		Status:    constants.PaymentStatusPending,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// ConfirmCashPayment chuyển payment tiền mặt sang completed.
// Chỉ admin được gọi (chặn ở tầng route), xác nhận lại payment đã completed sẽ báo lỗi.
func (s *PaymentService) ConfirmCashPayment(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodePaymentNotFound, "Không tìm thấy payment", err)
		}
		return nil, err
	}

	if payment.Status == constants.PaymentStatusCompleted {
		return nil, apperrors.NewAppError(apperrors.ErrCodePaymentCompleted, "Payment đã được xác nhận trước đó", nil)
	}

	payment.Status = constants.PaymentStatusCompleted
	if err := s.db.Save(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// HandleStripeWebhook xử lý sự kiện từ Stripe.
// Lỗi chữ ký chỉ được ghi log rồi bỏ qua: Stripe gửi lại sự kiện theo cơ chế
// at-least-once nên endpoint luôn trả 200, xử lý lại một sự kiện completed là no-op.
func (s *PaymentService) HandleStripeWebhook(payload []byte, sigHeader string) {
	secret := config.GetEnv("STRIPE_WEBHOOK_SECRET")

	event, err := webhook.ConstructEvent(payload, sigHeader, secret)
	if err != nil {
		s.logger.Error("Xác minh chữ ký webhook thất bại: %v", err)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			s.logger.Error("Không parse được CheckoutSession: %v", err)
			return
		}

		var payment models.Payment
		if err := s.db.Where("session_id = ?", cs.ID).First(&payment).Error; err != nil {
			s.logger.Error("Không tìm thấy payment cho phiên %s: %v", cs.ID, err)
			return
		}

		// Stripe gửi lại sự kiện at-least-once, phiên đã hoàn tất thì bỏ qua
		if payment.Status == constants.PaymentStatusCompleted {
			s.logger.Info("Phiên %s đã được xử lý trước đó", cs.ID)
			return
		}

		payment.Status = constants.PaymentStatusCompleted
		if err := s.db.Save(&payment).Error; err != nil {
			s.logger.Error("Không cập nhật được payment %d: %v", payment.ID, err)
			return
		}

		s.logger.Info("Payment %d hoàn tất qua phiên %s", payment.ID, cs.ID)
	default:
		// Các loại sự kiện khác không cần xử lý
	}
}

// GetAllPayments trả về toàn bộ payment kèm user và booking, mới nhất trước
func (s *PaymentService) GetAllPayments() ([]models.Payment, int64, error) {
	var payments []models.Payment
	if err := s.db.
		Preload("User").
		Preload("Booking").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, int64(len(payments)), nil
}
