package routes

import (
	"time"

	"classboard/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDisplayRoutes registers the board, its live stream and the active view.
func RegisterDisplayRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/display", hb.DisplayHandler)
		api.GET("/display/stream", hb.DisplayStreamHandler)
		api.GET("/status", hb.StatusHandler)
		api.GET("/view", hb.GetViewHandler)
		api.PUT("/view", hb.SetViewHandler)
	}
}

// RegisterScheduleRoutes registers slot, timetable and reset endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/slots", hb.ListSlotsHandler)
		api.PATCH("/slots/:id", hb.UpdateSlotTimeHandler)
		api.GET("/timetable", hb.TimetableHandler)
		api.PUT("/timetable/:day/:slotId", hb.SetTimetableEntryHandler)
	}
	r.POST("/api/settings/reset", hb.ResetSettingsHandler)
}

// RegisterBroadcastRoutes registers the broadcast override and saved templates.
func RegisterBroadcastRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/broadcast")
	{
		api.GET("", hb.ActiveBroadcastHandler)
		api.POST("", hb.PublishBroadcastHandler)
		api.DELETE("", hb.DismissBroadcastHandler)
		api.POST("/quick", hb.QuickBroadcastHandler)
		api.GET("/quick-actions", hb.QuickActionsHandler)

		api.GET("/templates", hb.ListTemplatesHandler)
		api.POST("/templates", hb.AddTemplateHandler)
		api.PUT("/templates/:id", hb.UpdateTemplateHandler)
		api.DELETE("/templates/:id", hb.RemoveTemplateHandler)
		api.POST("/templates/:id/publish", hb.PublishTemplateHandler)
	}
}

// RegisterGradeRoutes registers the ledger endpoints.
func RegisterGradeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/grades")
	{
		api.GET("/semesters", hb.ListSemestersHandler)
		api.POST("/semesters", hb.AddSemesterHandler)
		api.DELETE("/semesters/:id", hb.RemoveSemesterHandler)
		api.GET("/semesters/:id/summary", hb.SemesterSummaryHandler)
		api.POST("/semesters/:id/courses", hb.AddCourseHandler)
		api.DELETE("/semesters/:id/courses/:courseId", hb.RemoveCourseHandler)
		api.GET("/summary", hb.LedgerSummaryHandler)
		api.GET("/categories", hb.CategoriesHandler)
	}
}

// RegisterAdvisorRoutes registers the AI advisor endpoints.
func RegisterAdvisorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/advisor")
	{
		api.POST("/analysis", hb.RequestAnalysisHandler)
		api.GET("/analysis", hb.GetAnalysisHandler)
		api.DELETE("/analysis", hb.CloseAnalysisHandler)
		api.POST("/chat", hb.ChatHandler)
		api.GET("/transcript", hb.TranscriptHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterDisplayRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterBroadcastRoutes(r, hb)
	RegisterGradeRoutes(r, hb)
	RegisterAdvisorRoutes(r, hb)
}
