package routes

import (
	"github.com/gin-gonic/gin"

	"sita-api/controllers"
	"sita-api/middleware"
	"sita-api/models"
)

// SetupRoutes registers the API surface under /api. Submission review
// is lecturer-only; submission creation and logbook entries are
// student-only; notifications and profile are any authenticated user.
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "SITA API is running",
		})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.GetCurrentUser)
	}

	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.PUT("/profile", controllers.UpdateProfile)
		users.GET("/students/:id/progress", controllers.GetStudentProgress)
	}

	thesis := api.Group("/thesis")
	thesis.Use(middleware.AuthMiddleware())
	{
		thesis.POST("", middleware.RequireRole(models.RoleStudent), controllers.CreateThesis)

		lecturer := thesis.Group("")
		lecturer.Use(middleware.RequireRole(models.RoleLecturer))
		{
			lecturer.GET("", controllers.GetThesisList)
			lecturer.GET("/file/:filename", controllers.DownloadThesisFile)
			lecturer.GET("/:id", controllers.GetThesisDetail)
			lecturer.POST("/approve/:id", controllers.ApproveThesis)
			lecturer.POST("/reject/:id", controllers.RejectThesis)
		}
	}

	seminars := api.Group("/seminars")
	seminars.Use(middleware.AuthMiddleware())
	{
		seminars.POST("", middleware.RequireRole(models.RoleStudent), controllers.CreateSeminar)

		lecturer := seminars.Group("")
		lecturer.Use(middleware.RequireRole(models.RoleLecturer))
		{
			lecturer.GET("", controllers.GetSeminarList)
			lecturer.GET("/:id", controllers.GetSeminarDetail)
			lecturer.GET("/:id/guidance-history", controllers.GetGuidanceHistory)
			lecturer.GET("/:id/thesis-review", controllers.DownloadThesisReview)
			lecturer.POST("/approve/:id", controllers.ApproveSeminar)
			lecturer.POST("/reject/:id", controllers.RejectSeminar)
		}
	}

	defense := api.Group("/defense")
	defense.Use(middleware.AuthMiddleware())
	{
		defense.POST("", middleware.RequireRole(models.RoleStudent), controllers.CreateDefense)

		lecturer := defense.Group("")
		lecturer.Use(middleware.RequireRole(models.RoleLecturer))
		{
			lecturer.GET("", controllers.GetDefenseList)
			lecturer.GET("/approval-letter/:id", controllers.GetApprovalLetter)
			lecturer.GET("/:id", controllers.GetDefenseDetail)
			lecturer.POST("/approve/:id", controllers.ApproveDefense)
			lecturer.POST("/reject/:id", controllers.RejectDefense)
		}
	}

	logbooks := api.Group("/logbooks")
	logbooks.Use(middleware.AuthMiddleware())
	{
		logbooks.POST("", middleware.RequireRole(models.RoleStudent), controllers.AddLogbookEntry)

		lecturer := logbooks.Group("")
		lecturer.Use(middleware.RequireRole(models.RoleLecturer))
		{
			lecturer.GET("/students", controllers.GetStudentList)
			lecturer.GET("/student/:studentId", controllers.GetStudentLogbook)
			lecturer.POST("/lock/:studentId", controllers.LockLogbook)
			lecturer.POST("/note/:id", controllers.AddNote)
			lecturer.GET("/download/:studentId", controllers.DownloadLogbook)
		}
	}

	notifications := api.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", controllers.GetNotifications)
		notifications.GET("/unread-count", controllers.GetUnreadCount)
		notifications.PUT("/mark-all-read", controllers.MarkAllNotificationsRead)
		notifications.PUT("/:id/read", controllers.MarkNotificationRead)
	}

	// Envelope for unknown API paths.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success": false,
			"message": "API endpoint not found",
		})
	})
}
