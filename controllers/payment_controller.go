package controllers

import (
	"io"

	"hbs/dto"
	"hbs/response"
	"hbs/services"

	"github.com/gin-gonic/gin"
)

// PaymentController xử lý thanh toán booking
type PaymentController struct {
	payments *services.PaymentService
}

// NewPaymentController tạo instance mới của PaymentController
func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreateStripeCheckout tạo phiên thanh toán Stripe và trả về URL chuyển hướng
func (ctrl *PaymentController) CreateStripeCheckout(c *gin.Context) {
	var input dto.StripeCheckoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := currentUser(c)
	result, err := ctrl.payments.CreateStripeCheckout(c.Request.Context(), &input, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// CreateCashPayment ghi nhận thanh toán tiền mặt ở trạng thái pending
func (ctrl *PaymentController) CreateCashPayment(c *gin.Context) {
	var input dto.CashPaymentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := currentUser(c)
	payment, err := ctrl.payments.CreateCashPayment(&input, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, payment)
}

// ConfirmCashPayment xác nhận thanh toán tiền mặt (admin)
func (ctrl *PaymentController) ConfirmCashPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "paymentId")
	if !ok {
		return
	}

	payment, err := ctrl.payments.ConfirmCashPayment(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, payment)
}

// GetAll trả về toàn bộ thanh toán (admin)
func (ctrl *PaymentController) GetAll(c *gin.Context) {
	payments, total, err := ctrl.payments.GetAllPayments()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithTotal(c, payments, total)
}

// StripeWebhook nhận sự kiện từ Stripe, luôn trả về 200
func (ctrl *PaymentController) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Không đọc được nội dung webhook")
		return
	}

	ctrl.payments.HandleStripeWebhook(payload, c.GetHeader("Stripe-Signature"))
	response.Success(c, nil)
}
