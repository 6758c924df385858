package routes

import (
	"amstudio-backend/config"
	"amstudio-backend/controllers"
	"amstudio-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://booking.amstudio.tw",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public booking flow: anonymous guests browse the catalog, check slot
	// availability and submit group bookings.
	api := r.Group("/api")
	{
		api.GET("/catalog", controllers.GetCatalog)
		api.POST("/availability", controllers.CheckAvailability)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.SearchBookings)
			bookings.POST("/:id/payment-report", controllers.ReportPayment)
		}
	}

	admin := r.Group("/admin")
	admin.Use(utils.AuthMiddleware())
	{
		bookings := admin.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.POST("", controllers.ManualAddBooking)
			bookings.POST("/import", controllers.BatchImportBookings)
			bookings.PUT("/:id/action", controllers.BookingAction)
		}

		services := admin.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		discounts := admin.Group("/discounts")
		{
			discounts.POST("", controllers.CreateDiscount)
			discounts.GET("", controllers.GetDiscounts)
			discounts.PUT("/:id", controllers.UpdateDiscount)
			discounts.DELETE("/:id", controllers.DeleteDiscount)
		}

		templates := admin.Group("/templates")
		{
			templates.POST("", controllers.CreateTemplate)
			templates.GET("", controllers.GetTemplates)
			templates.PUT("/:id", controllers.UpdateTemplate)
			templates.DELETE("/:id", controllers.DeleteTemplate)
		}

		settings := admin.Group("/settings")
		{
			settings.GET("/:locationId", controllers.GetLocationSettings)
			settings.PUT("/:locationId", controllers.UpdateLocationSettings)
		}

		admin.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
