package services

import (
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"hbs/constants"
	"hbs/dto"
	apperrors "hbs/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

func paymentRows(id uint, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "booking_id", "user_id", "amount", "currency", "method", "status"}).
		AddRow(id, 3, 1, 450.0, "egp", constants.PaymentMethodCash, status)
}

func TestCreateCashPayment(t *testing.T) {
	t.Run("ghi nhận payment tiền mặt ở trạng thái pending", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		mock.ExpectQuery(`SELECT .* FROM "bookings"`).
			WillReturnRows(bookingRows(3, 1, 5, constants.BookingStatusPending))
		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
				AddRow(1, "Binh", "binh@example.com"))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "payments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectCommit()

		payment, err := svc.CreateCashPayment(&dto.CashPaymentRequest{Amount: 450, BookingID: 3}, 1)

		require.NoError(t, err)
		assert.Equal(t, constants.PaymentMethodCash, payment.Method)
		assert.Equal(t, constants.PaymentStatusPending, payment.Status)
		assert.Equal(t, float64(450), payment.Amount)
		assert.Empty(t, payment.SessionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("số tiền không hợp lệ", func(t *testing.T) {
		db, _ := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		_, err := svc.CreateCashPayment(&dto.CashPaymentRequest{Amount: 0, BookingID: 3}, 1)

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeInvalidAmount, appErr.Code)
	})

	t.Run("không tìm thấy booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		mock.ExpectQuery(`SELECT .* FROM "bookings"`).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := svc.CreateCashPayment(&dto.CashPaymentRequest{Amount: 450, BookingID: 99}, 1)

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeBookingNotFound, appErr.Code)
	})
}

func TestConfirmCashPayment(t *testing.T) {
	t.Run("xác nhận payment pending", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		mock.ExpectQuery(`SELECT .* FROM "payments"`).
			WillReturnRows(paymentRows(10, constants.PaymentStatusPending))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "payments"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		payment, err := svc.ConfirmCashPayment(10)

		require.NoError(t, err)
		assert.Equal(t, constants.PaymentStatusCompleted, payment.Status)
	})

	t.Run("xác nhận lại payment đã completed báo lỗi", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		mock.ExpectQuery(`SELECT .* FROM "payments"`).
			WillReturnRows(paymentRows(10, constants.PaymentStatusCompleted))

		_, err := svc.ConfirmCashPayment(10)

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodePaymentCompleted, appErr.Code)
		// Không có UPDATE nào được thực thi
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("không tìm thấy payment", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		mock.ExpectQuery(`SELECT .* FROM "payments"`).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := svc.ConfirmCashPayment(99)

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodePaymentNotFound, appErr.Code)
	})
}

func TestGetAllPayments(t *testing.T) {
	t.Run("trả về toàn bộ payment kèm tổng số", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})
		mock.MatchExpectationsInOrder(false)

		mock.ExpectQuery(`SELECT .* FROM "payments" ORDER BY created_at DESC`).
			WillReturnRows(paymentRows(10, constants.PaymentStatusCompleted).
				AddRow(11, 3, 1, 300.0, "egp", constants.PaymentMethodStripe, constants.PaymentStatusPending))
		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Binh"))
		mock.ExpectQuery(`SELECT .* FROM "bookings"`).
			WillReturnRows(bookingRows(3, 1, 5, constants.BookingStatusConfirmed))

		payments, total, err := svc.GetAllPayments()

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, payments, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// stripePaymentRows trả về payment kèm session_id như webhook tra cứu
func stripePaymentRows(id uint, sessionID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "booking_id", "user_id", "amount", "currency", "method", "status", "session_id"}).
		AddRow(id, 3, 1, 450.0, "egp", constants.PaymentMethodStripe, status, sessionID)
}

// signStripePayload ký payload theo định dạng header Stripe-Signature v1
func signStripePayload(payload []byte, secret string) string {
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func checkoutCompletedPayload(sessionID string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_1","api_version":%q,"type":"checkout.session.completed","data":{"object":{"id":%q}}}`,
		stripe.APIVersion, sessionID))
}

func TestHandleStripeWebhook(t *testing.T) {
	t.Run("chữ ký sai được bỏ qua, không chạm database", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

		svc.HandleStripeWebhook([]byte(`{"type":"checkout.session.completed"}`), "sig-khong-hop-le")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("phiên checkout hoàn tất chuyển payment sang completed", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
		payload := checkoutCompletedPayload("cs_hbs_123")

		mock.ExpectQuery(`SELECT .* FROM "payments" WHERE session_id`).
			WillReturnRows(stripePaymentRows(10, "cs_hbs_123", constants.PaymentStatusPending))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "payments"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		svc.HandleStripeWebhook(payload, signStripePayload(payload, "whsec_test"))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sự kiện gửi lại cho phiên đã completed là no-op", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
		payload := checkoutCompletedPayload("cs_hbs_123")

		mock.ExpectQuery(`SELECT .* FROM "payments" WHERE session_id`).
			WillReturnRows(stripePaymentRows(10, "cs_hbs_123", constants.PaymentStatusCompleted))

		svc.HandleStripeWebhook(payload, signStripePayload(payload, "whsec_test"))

		// Không có UPDATE nào được thực thi
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loại sự kiện khác không chạm database", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPaymentService(PaymentServiceOptions{DB: db})

		t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
		payload := []byte(fmt.Sprintf(
			`{"id":"evt_2","api_version":%q,"type":"invoice.paid","data":{"object":{}}}`, stripe.APIVersion))

		svc.HandleStripeWebhook(payload, signStripePayload(payload, "whsec_test"))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
