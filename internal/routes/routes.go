package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/audit"
	"github.com/soulsyync/soulsyync-api/internal/config"
	"github.com/soulsyync/soulsyync-api/internal/handlers"
	infraRepo "github.com/soulsyync/soulsyync-api/internal/infra/repository"
	"github.com/soulsyync/soulsyync-api/internal/middleware"
	"github.com/soulsyync/soulsyync-api/internal/tokens"
	ucAppointment "github.com/soulsyync/soulsyync-api/internal/usecase/appointment"
	ucTestimonial "github.com/soulsyync/soulsyync-api/internal/usecase/testimonial"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, revoker *tokens.Revoker) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	testimonialRepo := infraRepo.NewTestimonialGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENT LIFECYCLE
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)

	// ======================================================
	// USE CASES — TESTIMONIAL MODERATION
	// ======================================================
	submitTestimonialUC := ucTestimonial.NewSubmitTestimonial(testimonialRepo)
	listTestimonialsUC := ucTestimonial.NewListTestimonials(testimonialRepo)
	approveTestimonialUC := ucTestimonial.NewApproveTestimonial(testimonialRepo, auditDispatcher)
	deleteTestimonialUC := ucTestimonial.NewDeleteTestimonial(testimonialRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, revoker)
	serviceHandler := handlers.NewServiceHandler(db)
	blogHandler := handlers.NewBlogHandler(db)
	horoscopeHandler := handlers.NewHoroscopeHandler(db)
	subscriberHandler := handlers.NewSubscriberHandler(db)
	userHandler := handlers.NewUserHandler(db)
	analyticsHandler := handlers.NewAnalyticsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
	)

	testimonialHandler := handlers.NewTestimonialHandler(
		submitTestimonialUC,
		listTestimonialsUC,
		approveTestimonialUC,
		deleteTestimonialUC,
	)

	authed := middleware.Authenticate(cfg, revoker)
	authedOptional := middleware.AuthenticateOptional(cfg, revoker)
	adminOnly := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authed, authHandler.Logout)
		api.GET("/auth/user", authed, authHandler.CurrentUser)

		// ------------------------------
		// SERVICES (catalog reads are public; mutation is admin)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.POST("/services", authed, adminOnly, serviceHandler.Create)
		api.PUT("/services/:id", authed, adminOnly, serviceHandler.Update)
		api.DELETE("/services/:id", authed, adminOnly, serviceHandler.Delete)

		// ------------------------------
		// APPOINTMENTS (ownership enforced in the usecases)
		// ------------------------------
		api.POST("/appointments", authed, appointmentHandler.Create)
		api.GET("/appointments", authed, appointmentHandler.List)
		api.GET("/appointments/:id", authed, appointmentHandler.Get)
		api.PUT("/appointments/:id", authed, appointmentHandler.Update)
		api.DELETE("/appointments/:id", authed, appointmentHandler.Delete)

		// ------------------------------
		// BLOG (create only needs auth; update/delete are admin)
		// ------------------------------
		api.GET("/blog-posts", blogHandler.List)
		api.GET("/blog-posts/:id", blogHandler.Get)
		api.POST("/blog-posts", authed, blogHandler.Create)
		api.PUT("/blog-posts/:id", authed, adminOnly, blogHandler.Update)
		api.DELETE("/blog-posts/:id", authed, adminOnly, blogHandler.Delete)

		// ------------------------------
		// HOROSCOPES (same create asymmetry as blog posts)
		// ------------------------------
		api.GET("/horoscopes", horoscopeHandler.List)
		api.POST("/horoscopes", authed, horoscopeHandler.Create)
		api.PUT("/horoscopes/:id", authed, adminOnly, horoscopeHandler.Update)

		// ------------------------------
		// NEWSLETTER
		// ------------------------------
		api.POST("/subscribers", subscriberHandler.Subscribe)
		api.GET("/subscribers", authed, adminOnly, subscriberHandler.List)

		// ------------------------------
		// TESTIMONIALS
		// ------------------------------
		api.GET("/testimonials", testimonialHandler.List)
		api.POST("/testimonials", authedOptional, testimonialHandler.Submit)
		api.GET("/testimonials/all", authed, testimonialHandler.ListAll)
		api.PATCH("/testimonials/:id/approve", authed, testimonialHandler.Approve)
		api.DELETE("/testimonials/:id", authed, testimonialHandler.Delete)
		api.POST("/testimonials/bulk-approve", authed, testimonialHandler.BulkApprove)
		api.POST("/testimonials/bulk-delete", authed, testimonialHandler.BulkDelete)

		// ------------------------------
		// USERS
		// ------------------------------
		api.GET("/users", authed, adminOnly, userHandler.List)
		api.GET("/users/:id", authed, userHandler.Get)
		api.PUT("/users/:id", authed, userHandler.Update)

		// ------------------------------
		// ANALYTICS
		// ------------------------------
		api.GET("/analytics", authed, adminOnly, analyticsHandler.Get)
	}
}
