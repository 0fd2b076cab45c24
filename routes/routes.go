package routes

import (
	"scholarship-portal-api/controllers"
	"scholarship-portal-api/middleware"
	"scholarship-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Scholarship application intake
			public.POST("/applications/submit", controllers.SubmitApplication)

			// Document access via signed token only
			public.GET("/documents/fetch", controllers.FetchDocument)

			// Authentication
			public.POST("/login", controllers.Login)
			public.POST("/forgot-password", controllers.ForgotPassword)
			public.POST("/reset-password", controllers.ResetPassword)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Scholarship Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth management
			protected.POST("/logout", controllers.Logout)
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Admin review dashboard
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin, models.RoleReviewer))
			{
				applications := admin.Group("/applications")
				{
					applications.GET("", controllers.GetApplications)
					applications.GET("/export", controllers.ExportApplications)
					applications.GET("/:id", controllers.GetApplication)

					// Only full admins can change the review status
					applications.PUT("/:id/status", middleware.RequireRole(models.RoleAdmin), controllers.UpdateApplicationStatus)
				}

				admin.GET("/documents/sign", controllers.SignDocumentURL)
				admin.GET("/dashboard/stats", controllers.GetDashboardStats)
			}
		}
	}
}
