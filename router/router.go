// Package router wires the HTTP routes onto a gin engine.
package router

import (
	"github.com/ncinga/temi-event-backend/config"
	"github.com/ncinga/temi-event-backend/handlers"
	"github.com/ncinga/temi-event-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies holds everything required for setting up routes.
type Dependencies struct {
	Config              *config.Config
	RegistrationHandler *handlers.RegistrationHandler
	FeedbackHandler     *handlers.FeedbackHandler
	ExportHandler       *handlers.ExportHandler
	VisitorHandler      *handlers.VisitorHandler
	PagesHandler        *handlers.PagesHandler
	HealthHandler       *handlers.HealthHandler
	TemplatesGlob       string
}

// SetupRouter configures and returns the main gin engine with all routes
// defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	if deps.TemplatesGlob != "" {
		r.LoadHTMLGlob(deps.TemplatesGlob)
	}

	// Health and metrics
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Kiosk JSON API
	api := r.Group("/api")
	{
		events := api.Group("/events/:event_id")
		{
			events.POST("/registrations", deps.RegistrationHandler.CreateRegistration)
			events.POST("/feedback", deps.FeedbackHandler.CreateFeedback)
			events.GET("/export/registrations.csv", deps.RegistrationHandler.ExportRegistrationsCSV)
			events.GET("/export/feedback.csv", deps.FeedbackHandler.ExportFeedbackCSV)
		}

		api.POST("/export/registrations/email", deps.ExportHandler.EmailRegistrationsExport)
		api.POST("/export-and-email", deps.ExportHandler.EmailVisitorExport)
		api.GET("/visitors/search", deps.VisitorHandler.SearchVisitors)
		api.GET("/debug/registrations/count", deps.RegistrationHandler.RegistrationsCount)
	}

	// QR phone pages
	r.GET("/r/:event_id", deps.PagesHandler.RegisterPage)
	r.POST("/r/:event_id", deps.PagesHandler.SubmitRegisterForm)
	r.GET("/f/:event_id", deps.PagesHandler.FeedbackPage)
	r.POST("/f/:event_id", deps.PagesHandler.SubmitFeedbackForm)

	return r
}
