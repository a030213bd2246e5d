package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon-backend/cache"
	"salon-backend/config"
	"salon-backend/controllers"
	"salon-backend/storage"
	"salon-backend/utils"
)

// SetupRouter wires the HTTP surface. Everything reaches the store through
// the injected Storage port, so tests can run the full router against the
// in-memory adapter.
func SetupRouter(store storage.Storage, cacheStore cache.Cache, log *zap.Logger, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	authController := controllers.NewAuthController(store, log, cfg.JWTSecret)
	customerController := controllers.NewCustomerController(store, log)
	serviceController := controllers.NewServiceController(store, cacheStore, log)
	staffController := controllers.NewStaffController(store, log)
	bookingController := controllers.NewBookingController(store, log)
	purchaseController := controllers.NewPurchaseRecordController(store, log)
	campaignController := controllers.NewCampaignController(store, log)
	seoController := controllers.NewSeoController(store, log)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/change-password", utils.AuthMiddleware(cfg.JWTSecret), authController.ChangePassword)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.POST("", customerController.CreateCustomer)
			customers.PATCH("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		services := api.Group("/services")
		{
			services.GET("", serviceController.GetServices)
			services.GET("/active", serviceController.GetActiveServices)
			services.GET("/:id", serviceController.GetService)
			services.POST("", serviceController.CreateService)
			services.PATCH("/:id", serviceController.UpdateService)
			services.DELETE("/:id", serviceController.DeleteService)
		}

		staff := api.Group("/staff")
		{
			staff.GET("", staffController.GetStaff)
			staff.GET("/role/:role", staffController.GetStaffByRole)
			staff.GET("/:id", staffController.GetStaffMember)
			staff.POST("", staffController.CreateStaffMember)
			staff.PATCH("/:id", staffController.UpdateStaffMember)
			staff.DELETE("/:id", staffController.DeleteStaffMember)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bookingController.GetBookings)
			bookings.GET("/date/:date", bookingController.GetBookingsByDate)
			bookings.GET("/customer/:customerId", bookingController.GetBookingsByCustomer)
			bookings.GET("/:id", bookingController.GetBooking)
			bookings.POST("", bookingController.CreateBooking)
			bookings.PATCH("/:id", bookingController.UpdateBooking)
			bookings.DELETE("/:id", bookingController.DeleteBooking)
		}

		purchaseRecords := api.Group("/purchase-records")
		{
			purchaseRecords.GET("/customer/:customerId", purchaseController.GetByCustomer)
			purchaseRecords.POST("", purchaseController.Create)
		}

		campaigns := api.Group("/marketing-campaigns")
		{
			campaigns.GET("", campaignController.GetCampaigns)
			campaigns.GET("/active", campaignController.GetActiveCampaigns)
			campaigns.GET("/:id", campaignController.GetCampaign)
			campaigns.POST("", campaignController.CreateCampaign)
			campaigns.PATCH("/:id", campaignController.UpdateCampaign)
			campaigns.DELETE("/:id", campaignController.DeleteCampaign)
		}

		seo := api.Group("/seo-settings")
		{
			seo.GET("", seoController.GetSettings)
			seo.GET("/:page", seoController.GetSettingByPage)
			seo.POST("", seoController.UpsertSetting)
		}
	}

	return r
}
