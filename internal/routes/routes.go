package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/config"
	appointmentdomain "github.com/BruksfildServices01/barberias/internal/domain/appointment"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	catalogdomain "github.com/BruksfildServices01/barberias/internal/domain/catalog"
	scheduledomain "github.com/BruksfildServices01/barberias/internal/domain/schedule"
	tenantdomain "github.com/BruksfildServices01/barberias/internal/domain/tenant"
	"github.com/BruksfildServices01/barberias/internal/handlers"
	"github.com/BruksfildServices01/barberias/internal/middleware"
	"github.com/BruksfildServices01/barberias/internal/quota"
	ucAppointment "github.com/BruksfildServices01/barberias/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/barberias/internal/usecase/auth"
	ucCatalog "github.com/BruksfildServices01/barberias/internal/usecase/catalog"
	ucSchedule "github.com/BruksfildServices01/barberias/internal/usecase/schedule"
	ucTenant "github.com/BruksfildServices01/barberias/internal/usecase/tenant"
)

// Repositories is the storage the API runs on, Postgres or in-memory.
type Repositories struct {
	Tenants      tenantdomain.Repository
	Barbers      barberdomain.Repository
	Services     catalogdomain.Repository
	Schedules    scheduledomain.Repository
	Appointments appointmentdomain.Repository
	AuditLogs    audit.Store
}

// Infra holds the process-wide singletons. Quota and Media may be nil.
type Infra struct {
	Tokens         *auth.TokenManager
	Quota          *quota.Quota
	Media          *ucCatalog.MediaStore
	MaxUploadBytes int64
	Audit          audit.Sink
	Checks         map[string]handlers.Check
	Log            *zap.Logger
}

func RegisterRoutes(r *gin.Engine, repos Repositories, infra Infra, cfg *config.Config) {

	log := infra.Log
	if log == nil {
		log = zap.NewNop()
	}
	sink := infra.Audit
	if sink == nil {
		sink = audit.Discard{}
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Tenant.DomainSuffixes))

	// ======================================================
	// 🧠 USE CASES - TENANT / AUTH
	// ======================================================
	resolveTenantUC := ucTenant.NewResolve(
		repos.Tenants,
		cfg.Tenant.DomainSuffixes,
		cfg.Tenant.FallbackEnabled,
		log,
	)
	loginUC := ucAuth.NewLogin(repos.Barbers, infra.Tokens)

	// ======================================================
	// 🧠 USE CASES - SCHEDULES
	// ======================================================
	scheduleSource := ucSchedule.NewSource(repos.Barbers, repos.Schedules)

	getDefaultScheduleUC := ucSchedule.NewGetDefaultSchedule(repos.Barbers)
	updateDefaultScheduleUC := ucSchedule.NewUpdateDefaultSchedule(repos.Barbers, sink)

	createSpecialUC := ucSchedule.NewCreateSpecialSchedule(repos.Barbers, repos.Schedules, sink)
	listSpecialUC := ucSchedule.NewListSpecialSchedules(repos.Schedules)
	updateSpecialUC := ucSchedule.NewUpdateSpecialSchedule(repos.Schedules, sink)
	deleteSpecialUC := ucSchedule.NewDeleteSpecialSchedule(repos.Schedules, sink)

	// ======================================================
	// 🧠 USE CASES - APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(scheduleSource, repos.Appointments)

	createAppointmentUC := ucAppointment.NewCreatePublicAppointment(
		repos.Barbers,
		repos.Appointments,
		infra.Quota,
		sink,
	)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(repos.Barbers, repos.Appointments, sink)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(repos.Appointments, sink)

	listAppointmentsUC := ucAppointment.NewListAppointments(repos.Appointments)
	filterAppointmentsUC := ucAppointment.NewFilterAppointments(repos.Barbers, repos.Appointments)
	sameDayUC := ucAppointment.NewFindSameDayBooking(repos.Appointments)

	// ======================================================
	// 🧠 USE CASES - CATALOG
	// ======================================================
	listBarbersUC := ucCatalog.NewListBarbers(repos.Barbers)
	listServicesUC := ucCatalog.NewListServices(repos.Barbers, repos.Services)

	createServiceUC := ucCatalog.NewCreateService(repos.Barbers, repos.Services, sink)
	updateServiceUC := ucCatalog.NewUpdateService(repos.Services, sink)
	deleteServiceUC := ucCatalog.NewDeleteService(repos.Services, infra.Media, sink)

	uploadImageUC := ucCatalog.NewUploadServiceImage(repos.Services, infra.Media, sink)
	uploadLogoUC := ucCatalog.NewUploadLogo(repos.Tenants, infra.Media, sink)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, log)
	publicHandler := handlers.NewPublicHandler(listBarbersUC, listServicesUC, log)

	scheduleHandler := handlers.NewScheduleHandler(
		scheduleSource,
		getDefaultScheduleUC,
		updateDefaultScheduleUC,
		createSpecialUC,
		listSpecialUC,
		updateSpecialUC,
		deleteSpecialUC,
		log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		filterAppointmentsUC,
		sameDayUC,
		log,
	)

	catalogHandler := handlers.NewCatalogHandler(
		createServiceUC,
		updateServiceUC,
		deleteServiceUC,
		uploadImageUC,
		uploadLogoUC,
		infra.MaxUploadBytes,
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(repos.AuditLogs, log)
	healthHandler := handlers.NewHealthHandler(infra.Checks, log)

	r.GET("/health", healthHandler.Health)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// 🌐 API PÚBLICA (barbería por subdominio o ?barberia=)
		// ------------------------------
		public := api.Group("")
		public.Use(middleware.TenantMiddleware(resolveTenantUC, log))
		{
			public.GET("/barberia/config", publicHandler.Config)
			public.GET("/barberos", publicHandler.Barbers)
			public.GET("/barberos/:id/servicios", publicHandler.Services)
			public.GET("/barberos/:id/horario-defecto", scheduleHandler.GetDefault)
			public.GET("/horarios/fecha/:fecha", scheduleHandler.ByDate)
			public.GET("/disponibilidad", appointmentHandler.Availability)

			public.GET("/appointments/filter", appointmentHandler.Filter)
			public.GET("/appointments/existente", appointmentHandler.Existing)
			public.POST("/appointments", appointmentHandler.Create)
		}

		// ------------------------------
		// 🔐 API PRIVADA (barbería del token)
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(infra.Tokens, log))
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.POST("/horarios", scheduleHandler.CreateSpecial)
			secured.GET("/horarios", scheduleHandler.ListSpecial)
			secured.PUT("/horarios/:id", scheduleHandler.UpdateSpecial)
			secured.DELETE("/horarios/:id", scheduleHandler.DeleteSpecial)

			secured.PUT("/barberos/:id/horario-defecto", scheduleHandler.UpdateDefault)

			secured.POST("/servicios", catalogHandler.CreateService)
			secured.PUT("/servicios/:id", catalogHandler.UpdateService)
			secured.DELETE("/servicios/:id", catalogHandler.DeleteService)
			secured.POST("/servicios/:id/imagen", catalogHandler.UploadServiceImage)
			secured.POST("/barberia/logo", catalogHandler.UploadLogo)

			secured.GET("/audit-logs", middleware.AdminOnly(log), auditLogsHandler.List)
		}
	}
}
