// Package routes registers every HTTP endpoint on the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/controllers"
	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrls *controllers.Controllers, authMiddleware *middleware.AuthMiddleware) {
	// Health check endpoint (public). Deployment probes hit the root path;
	// the /api alias is kept for clients using the API prefix everywhere.
	healthHandler := func(c *gin.Context) {
		c.JSON(200, dto.NewDataResponse(gin.H{"status": "ok"}))
	}
	router.GET("/health", healthHandler)

	api := router.Group("/api")
	api.GET("/health", healthHandler)

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrls.Auth.Login)
		auth.POST("/refresh", ctrls.Auth.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authSession := authenticated.Group("/auth")
		{
			authSession.POST("/logout", ctrls.Auth.Logout)
			authSession.GET("/me", ctrls.Auth.GetProfile)
			authSession.POST("/change-password", ctrls.Auth.ChangePassword)
		}

		students := authenticated.Group("/students")
		{
			students.POST("", ctrls.Student.CreateStudent)
			students.GET("", ctrls.Student.ListStudents)
			students.GET("/:id", ctrls.Student.GetStudent)
			students.PUT("/:id", ctrls.Student.UpdateStudent)
			students.DELETE("/:id", ctrls.Student.DeactivateStudent)
			students.GET("/:id/badges", ctrls.Badge.ListStudentBadges)
		}

		coaches := authenticated.Group("/coaches")
		{
			coaches.POST("", ctrls.Coach.CreateCoach)
			coaches.GET("", ctrls.Coach.ListCoaches)
			coaches.GET("/:id", ctrls.Coach.GetCoach)
			coaches.PUT("/:id", ctrls.Coach.UpdateCoach)
			coaches.DELETE("/:id", ctrls.Coach.DeactivateCoach)
		}

		sports := authenticated.Group("/sports")
		{
			sports.POST("", ctrls.Sport.CreateSport)
			sports.GET("", ctrls.Sport.ListSports)
			sports.GET("/:id", ctrls.Sport.GetSport)
			sports.PUT("/:id", ctrls.Sport.UpdateSport)
			sports.DELETE("/:id", ctrls.Sport.DeactivateSport)
		}

		batches := authenticated.Group("/batches")
		{
			batches.POST("", ctrls.Batch.CreateBatch)
			batches.GET("", ctrls.Batch.ListBatches)
			batches.GET("/stats", ctrls.Batch.GetBatchStats)
			batches.POST("/recompute-capacity", ctrls.Batch.RecomputeCapacities)
			batches.GET("/:id", ctrls.Batch.GetBatch)
			batches.PUT("/:id", ctrls.Batch.UpdateBatch)
			batches.DELETE("/:id", ctrls.Batch.DeactivateBatch)
		}

		fees := authenticated.Group("/fees")
		{
			fees.POST("", ctrls.Fee.CreatePayment)
			fees.GET("", ctrls.Fee.ListFees)
			fees.GET("/summary", ctrls.Fee.GetFeeSummary)
			fees.GET("/quote/:studentId", ctrls.Fee.QuoteMonthlyFee)
			fees.GET("/:id", ctrls.Fee.GetPayment)
			fees.POST("/:id/pay", ctrls.Fee.RecordPayment)
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.POST("", ctrls.Attendance.MarkAttendance)
			attendance.GET("", ctrls.Attendance.ListAttendance)
			attendance.GET("/summary", ctrls.Attendance.GetAttendanceSummary)
			attendance.GET("/:id", ctrls.Attendance.GetRecord)
			attendance.PUT("/:id", ctrls.Attendance.UpdateRecord)
		}

		communications := authenticated.Group("/communications")
		{
			communications.POST("", ctrls.Communication.CreateCommunication)
			communications.GET("", ctrls.Communication.ListCommunications)
			communications.GET("/:id", ctrls.Communication.GetCommunication)
			communications.PUT("/:id/status", ctrls.Communication.UpdateStatus)
		}

		campaigns := authenticated.Group("/campaigns")
		{
			campaigns.POST("", ctrls.Campaign.CreateCampaign)
			campaigns.GET("", ctrls.Campaign.ListCampaigns)
			campaigns.GET("/:id", ctrls.Campaign.GetCampaign)
			campaigns.PUT("/:id", ctrls.Campaign.UpdateCampaign)
			campaigns.PUT("/:id/status", ctrls.Campaign.UpdateStatus)
		}

		badges := authenticated.Group("/student-badges")
		{
			badges.POST("", ctrls.Badge.CreateBadge)
			badges.GET("", ctrls.Badge.ListBadges)
			badges.GET("/:id", ctrls.Badge.GetBadge)
			badges.PUT("/:id", ctrls.Badge.UpdateBadge)
			badges.POST("/:id/award", ctrls.Badge.AwardBadge)
		}

		gps := authenticated.Group("/gps-tracking")
		{
			gps.POST("", ctrls.GPS.RecordPing)
			gps.GET("", ctrls.GPS.ListPings)
		}

		settings := authenticated.Group("/settings")
		{
			settings.POST("", ctrls.Setting.UpsertSetting)
			settings.GET("", ctrls.Setting.ListSettings)
			settings.GET("/:key", ctrls.Setting.GetSetting)
			settings.PUT("/:key", ctrls.Setting.UpsertSetting)
			settings.DELETE("/:key", ctrls.Setting.DeleteSetting)
		}

		// User management is restricted to admin and manager roles
		users := authenticated.Group("/user-management")
		users.Use(authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleManager)))
		{
			users.POST("", ctrls.User.CreateUser)
			users.GET("", ctrls.User.ListUsers)
			users.GET("/:id", ctrls.User.GetUser)
			users.PUT("/:id", ctrls.User.UpdateUser)
			users.DELETE("/:id", ctrls.User.DeactivateUser)
		}

		authenticated.GET("/dashboard/stats", ctrls.Dashboard.GetStats)
	}
}
