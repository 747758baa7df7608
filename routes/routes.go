package routes

import (
	"time"

	"consultly/handlers"
	"consultly/middleware"
	"consultly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterConsultantRoutes registers availability and planner endpoints.
func RegisterConsultantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consultants")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:id/availability", hb.GetAvailabilityHandler)
		api.GET("/:id/dates", hb.GetDatesHandler)
		api.GET("/:id/calendar", hb.GetCalendarHandler)
		api.GET("/:id/slots", hb.GetSlotsHandler)
		api.GET("/:id/booked", hb.GetBookedHandler)
		api.GET("/:id/durations", hb.GetDurationsHandler)

		// Consultants edit only their own availability.
		api.PUT("/:id/availability",
			middleware.RequireRole(utils.RoleConsultant),
			middleware.RequireSelf("id"),
			hb.UpdateAvailabilityHandler)
	}
}

// RegisterBookingRoutes sets up direct bookings and the draft flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(utils.RoleClient))
		bookings.POST("", hb.SubmitBookingHandler)
		bookings.POST("/:id/confirm-payment", hb.ConfirmPaymentHandler)
	}

	drafts := r.Group("/api/booking/draft")
	{
		drafts.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(utils.RoleClient))
		drafts.POST("", hb.CreateDraftHandler)
		drafts.PUT("/:draftID", hb.UpdateDraftHandler)
		drafts.POST("/:draftID/submit", hb.SubmitDraftHandler)
		drafts.DELETE("/:draftID", hb.CancelDraftHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterConsultantRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
