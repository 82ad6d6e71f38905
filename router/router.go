package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tablebook/booking-app/controllers"
	"github.com/tablebook/booking-app/middlewares"
	"github.com/tablebook/booking-app/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global per-IP. Gin menyalin handler chain saat route
	// didaftarkan, jadi middleware ini harus terpasang sebelum route dibuat.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Inisialisasi services dan controllers
	userSvc := services.NewUserService(db)
	tableSvc := services.NewTableService(db)
	bookingSvc := services.NewBookingService(db, userSvc, tableSvc)

	userCtrl := controllers.NewUserController(userSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// TABLES (read untuk semua user login)
	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)

	// TABLES (mutasi hanya admin)
	admin := auth.Group("/")
	admin.Use(middlewares.AdminOnly())
	{
		admin.POST("/tables", tableCtrl.CreateTable)
		admin.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	}

	// BOOKINGS
	auth.POST("/bookings", bookingCtrl.CreateBooking)
	auth.GET("/bookings", bookingCtrl.GetMyBookings)
	auth.PATCH("/bookings/:booking_id/cancel", bookingCtrl.CancelBooking)

	return r
}
