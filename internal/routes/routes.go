package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/bookora/scheduler-api/internal/audit"
	"github.com/bookora/scheduler-api/internal/config"
	"github.com/bookora/scheduler-api/internal/handlers"
	"github.com/bookora/scheduler-api/internal/middleware"
	"github.com/bookora/scheduler-api/internal/notify"
	"github.com/bookora/scheduler-api/internal/store"
)

func RegisterRoutes(
	r *gin.Engine,
	st store.Store,
	cfg *config.Config,
	logger *zap.Logger,
	rdb *redis.Client,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(st)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	var sender notify.Sender = notify.Noop{}
	if cfg.SMTPHost != "" {
		sender = notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	}
	notifyDispatcher := notify.NewDispatcher(sender, logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	businessHandler := handlers.NewBusinessHandler(st)
	serviceHandler := handlers.NewServiceHandler(st)
	teamHandler := handlers.NewTeamHandler(st)
	availabilityHandler := handlers.NewAvailabilityHandler(st)
	websiteHandler := handlers.NewWebsiteHandler(st)
	exportHandler := handlers.NewExportHandler(st)
	auditLogsHandler := handlers.NewAuditLogsHandler(st)

	appointmentHandler := handlers.NewAppointmentHandler(
		st,
		auditDispatcher,
		notifyDispatcher,
	)

	publicHandler := handlers.NewPublicHandler(
		st,
		auditDispatcher,
		notifyDispatcher,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (por slug)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.Site)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST(
				"/:slug/appointments",
				middleware.RateLimit(rdb, 10, time.Minute),
				publicHandler.CreateAppointment,
			)
		}

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		biz := api.Group("/businesses")
		{
			biz.POST("", businessHandler.Create)
			biz.GET("/:id", businessHandler.Get)
			biz.PATCH("/:id", businessHandler.Update)

			biz.GET("/:id/availability", availabilityHandler.Get)
			biz.PUT("/:id/availability", availabilityHandler.Update)
			biz.GET("/:id/available-slots", availabilityHandler.AvailableSlots)

			biz.GET("/:id/services", serviceHandler.List)
			biz.POST("/:id/services", serviceHandler.Create)
			biz.PATCH("/:id/services/:serviceID", serviceHandler.Update)
			biz.DELETE("/:id/services/:serviceID", serviceHandler.Delete)

			biz.GET("/:id/team", teamHandler.List)
			biz.POST("/:id/team", teamHandler.Create)
			biz.PATCH("/:id/team/:memberID", teamHandler.Update)
			biz.DELETE("/:id/team/:memberID", teamHandler.Delete)

			biz.GET("/:id/website", websiteHandler.Get)
			biz.PUT("/:id/website", websiteHandler.Put)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			biz.POST("/:id/appointments", appointmentHandler.Create)
			biz.GET("/:id/appointments", appointmentHandler.List)
			biz.GET("/:id/appointments/export.ics", exportHandler.ICS)
			biz.GET("/:id/appointments/export.csv", exportHandler.CSV)
			biz.GET("/:id/appointments/:apptID", appointmentHandler.Get)
			biz.PATCH("/:id/appointments/:apptID/cancel", appointmentHandler.Cancel)
			biz.PATCH("/:id/appointments/:apptID/complete", appointmentHandler.Complete)
			biz.DELETE("/:id/appointments/:apptID", appointmentHandler.Delete)

			biz.GET("/:id/audit-logs", auditLogsHandler.List)
		}
	}
}
