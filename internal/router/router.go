package router

import (
	"github.com/franchisehub/franchisehub-backend/config"
	"github.com/franchisehub/franchisehub-backend/internal/app/controller"
	"github.com/franchisehub/franchisehub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController          *controller.AuthController
	franchiseController     *controller.FranchiseController
	businessController      *controller.BusinessController
	advertisementController *controller.AdvertisementController
	inquiryController       *controller.InquiryController
	uploadController        *controller.UploadController
	authMiddleware          *middleware.AuthMiddleware
	config                  *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	franchiseController *controller.FranchiseController,
	businessController *controller.BusinessController,
	advertisementController *controller.AdvertisementController,
	inquiryController *controller.InquiryController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:          authController,
		franchiseController:     franchiseController,
		businessController:      businessController,
		advertisementController: advertisementController,
		inquiryController:       inquiryController,
		uploadController:        uploadController,
		authMiddleware:          authMiddleware,
		config:                  cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "FranchiseHub API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		franchises := v1.Group("/franchises")
		{
			franchises.GET("", r.franchiseController.ListFranchises)
			franchises.GET("/all",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.franchiseController.ListAllFranchises,
			)
			franchises.GET("/:id", r.franchiseController.GetFranchiseByID)
			franchises.POST("",
				r.authMiddleware.Authenticate(),
				r.franchiseController.CreateFranchise,
			)
			franchises.PATCH("/:id/status",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.franchiseController.UpdateFranchiseStatus,
			)
		}

		businesses := v1.Group("/businesses")
		{
			businesses.GET("", r.businessController.ListBusinesses)
			businesses.GET("/all",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.businessController.ListAllBusinesses,
			)
			businesses.GET("/:id", r.businessController.GetBusinessByID)
			businesses.POST("",
				r.authMiddleware.Authenticate(),
				r.businessController.CreateBusiness,
			)
			businesses.PATCH("/:id/status",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.businessController.UpdateBusinessStatus,
			)
		}

		advertisements := v1.Group("/advertisements")
		{
			advertisements.GET("", r.advertisementController.ListAdvertisements)
			advertisements.GET("/all",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.advertisementController.ListAllAdvertisements,
			)
			advertisements.GET("/:id", r.advertisementController.GetAdvertisementByID)
			advertisements.POST("",
				r.authMiddleware.Authenticate(),
				r.advertisementController.CreateAdvertisement,
			)
			advertisements.PATCH("/:id/status",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.advertisementController.UpdateAdvertisementStatus,
			)
		}

		inquiries := v1.Group("/inquiries")
		{
			inquiries.POST("",
				middleware.InquiryRateLimit(r.config.RateLimit.InquiriesPerHour),
				r.inquiryController.CreateInquiry,
			)
			inquiries.GET("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.inquiryController.ListInquiries,
			)
			inquiries.PATCH("/:id/status",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.inquiryController.UpdateInquiryStatus,
			)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/image", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
