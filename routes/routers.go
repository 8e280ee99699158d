package routes

import (
	"hbs/constants"
	"hbs/controllers"
	middlewares "hbs/middleware"
	"hbs/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v82"
	"gorm.io/gorm"
)

// SetupRoutes khai báo toàn bộ route của hệ thống
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, sc *stripe.Client) {

	bookingService := services.NewBookingService(services.BookingServiceOptions{DB: db})
	paymentService := services.NewPaymentService(services.PaymentServiceOptions{DB: db, Stripe: sc})
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db)
	reviewService := services.NewReviewService(db)
	userService := services.NewUserService(services.UserServiceOptions{DB: db, Cloudinary: cld})

	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)
	hotelController := controllers.NewHotelController(hotelService, redisCli)
	roomController := controllers.NewRoomController(roomService)
	reviewController := controllers.NewReviewController(reviewService, redisCli)
	userController := controllers.NewUserController(userService)

	admin := constants.RoleAdmin

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	// Auth
	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)

	// Quản trị người dùng (admin)
	v1.GET("/users", middlewares.AuthMiddleware(admin), userController.GetAll)
	v1.POST("/users", middlewares.AuthMiddleware(admin), userController.Create)
	v1.GET("/users/:id", middlewares.AuthMiddleware(admin), userController.GetByID)
	v1.PUT("/users/:id", middlewares.AuthMiddleware(admin), userController.Update)
	v1.DELETE("/users/:id", middlewares.AuthMiddleware(admin), userController.Delete)

	// Hồ sơ cá nhân
	v1.GET("/profile", middlewares.AuthMiddleware(), userController.Profile)
	v1.PUT("/profile", middlewares.AuthMiddleware(), userController.UpdateProfile)
	v1.POST("/users/profile-image", middlewares.AuthMiddleware(), userController.UploadAvatar)
	v1.DELETE("/users/profile-image", middlewares.AuthMiddleware(), userController.RemoveAvatar)

	// Danh mục khách sạn
	v1.GET("/hotels", hotelController.GetAll)
	v1.GET("/hotels/search", hotelController.Search)
	v1.GET("/hotels/:id", hotelController.GetByID)
	v1.POST("/hotels", middlewares.AuthMiddleware(admin), hotelController.Create)
	v1.PUT("/hotels/:id", middlewares.AuthMiddleware(admin), hotelController.Update)
	v1.DELETE("/hotels/:id", middlewares.AuthMiddleware(admin), hotelController.Delete)

	// Danh mục phòng
	v1.GET("/rooms", roomController.GetAll)
	v1.GET("/rooms/:id", roomController.GetByID)
	v1.POST("/rooms", middlewares.AuthMiddleware(admin), roomController.Create)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(admin), roomController.Update)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(admin), roomController.Delete)

	// Booking
	v1.POST("/booking", middlewares.AuthMiddleware(), bookingController.Create)
	v1.GET("/booking", middlewares.AuthMiddleware(), bookingController.GetAll)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(), bookingController.GetByID)
	v1.PUT("/booking/:id", middlewares.AuthMiddleware(), bookingController.Update)
	v1.DELETE("/booking/:id", middlewares.AuthMiddleware(), bookingController.Cancel)

	// Thanh toán
	v1.POST("/payment/stripe", middlewares.AuthMiddleware(), paymentController.CreateStripeCheckout)
	v1.POST("/payment/cash", middlewares.AuthMiddleware(), paymentController.CreateCashPayment)
	v1.PATCH("/payment/confirm/:paymentId", middlewares.AuthMiddleware(admin), paymentController.ConfirmCashPayment)
	v1.GET("/payment", middlewares.AuthMiddleware(admin), paymentController.GetAll)
	v1.POST("/payment/webhook", paymentController.StripeWebhook)

	// Đánh giá
	v1.POST("/hotels/:id/reviews", middlewares.AuthMiddleware(), reviewController.Create)
	v1.GET("/hotels/:id/reviews", reviewController.GetByHotel)
	v1.GET("/reviews", middlewares.AuthMiddleware(admin), reviewController.GetAll)
	v1.PUT("/reviews/:id", middlewares.AuthMiddleware(), reviewController.Update)
	v1.DELETE("/reviews/:id", middlewares.AuthMiddleware(), reviewController.Delete)
}
