package routes

import (
	"incentive-portal-api/controllers"
	"incentive-portal-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)
			public.POST("/refresh", controllers.RefreshToken)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Research Incentive Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Incentive policy tables (read-only)
			protected.GET("/incentive/policy", controllers.GetIncentivePolicy)

			// Dry-run calculation for the submission form
			protected.POST("/incentive/preview", controllers.PreviewClaimIncentive)

			// Incentive claims
			claims := protected.Group("/claims")
			{
				claims.GET("", controllers.GetClaims)
				claims.GET("/:id", controllers.GetClaim)

				// Only faculty can create/update/delete claims
				claims.POST("", middleware.RequireRole(controllers.RoleFaculty), controllers.CreateClaim)
				claims.PUT("/:id", middleware.RequireRole(controllers.RoleFaculty), controllers.UpdateClaim)
				claims.DELETE("/:id", middleware.RequireRole(controllers.RoleFaculty), controllers.DeleteClaim)

				// Only admin can approve/reject
				claims.POST("/:id/approve", middleware.RequireRole(controllers.RoleAdmin), controllers.ApproveClaim)
				claims.POST("/:id/reject", middleware.RequireRole(controllers.RoleAdmin), controllers.RejectClaim)

				// Supporting documents
				claims.POST("/:id/documents", controllers.UploadClaimDocument)
				claims.GET("/:id/documents", controllers.GetClaimDocuments)
			}
			protected.GET("/documents/download/:document_id", controllers.DownloadClaimDocument)

			// EMR grant interest tracking
			emr := protected.Group("/emr-projects")
			{
				emr.GET("", controllers.GetEmrProjects)
				emr.POST("", middleware.RequireRole(controllers.RoleFaculty), controllers.CreateEmrProject)
				emr.DELETE("/:id", middleware.RequireRole(controllers.RoleFaculty), controllers.DeleteEmrProject)
				emr.POST("/:id/approve", middleware.RequireRole(controllers.RoleAdmin), controllers.ApproveEmrProject)
			}

			// ARPS aggregation (read-only)
			arps := protected.Group("/arps")
			{
				arps.GET("/me", controllers.GetMyArps)
				arps.GET("/users/:id", middleware.RequireRole(controllers.RoleAdmin, controllers.RoleDean), controllers.GetUserArps)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
			}
		}
	}
}
