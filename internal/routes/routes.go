package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Newksitesfss/barbearia-criatech/internal/audit"
	"github.com/Newksitesfss/barbearia-criatech/internal/config"
	"github.com/Newksitesfss/barbearia-criatech/internal/handlers"
	infraRepo "github.com/Newksitesfss/barbearia-criatech/internal/infra/repository"
	"github.com/Newksitesfss/barbearia-criatech/internal/middleware"
	"github.com/Newksitesfss/barbearia-criatech/internal/timezone"
	ucAppointment "github.com/Newksitesfss/barbearia-criatech/internal/usecase/appointment"
	ucStats "github.com/Newksitesfss/barbearia-criatech/internal/usecase/stats"
)

// RegisterRoutes monta a tabela estática de rotas; tudo é resolvido aqui,
// nada de lookup dinâmico por requisição.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	dailyStatsUC := ucStats.NewDailyStats(appointmentRepo, loc)
	monthlyStatsUC := ucStats.NewMonthlyStats(appointmentRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barberHandler := handlers.NewBarberHandler(db, auditLogger)
	haircutHandler := handlers.NewHaircutHandler(db, auditLogger)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		loc,
	)

	statsHandler := handlers.NewStatsHandler(dailyStatsUC, monthlyStatsUC, loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", middleware.OptionalAuthMiddleware(cfg), authHandler.Me)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.PATCH("/barbers/:id/active", barberHandler.ToggleActive)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.GET("/haircuts", haircutHandler.List)
			secured.POST("/haircuts", haircutHandler.Create)
			secured.PATCH("/haircuts/:id", haircutHandler.Update)
			secured.PATCH("/haircuts/:id/active", haircutHandler.ToggleActive)
			secured.DELETE("/haircuts/:id", haircutHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/stats/daily", statsHandler.Daily)
			secured.GET("/stats/monthly", statsHandler.Monthly)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
