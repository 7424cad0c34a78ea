package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/authz"
	"github.com/gimnasioapp/gym-api/internal/cache"
	"github.com/gimnasioapp/gym-api/internal/config"
	"github.com/gimnasioapp/gym-api/internal/delivery"
	"github.com/gimnasioapp/gym-api/internal/handlers"
	infraRepo "github.com/gimnasioapp/gym-api/internal/infra/repository"
	"github.com/gimnasioapp/gym-api/internal/mailer"
	"github.com/gimnasioapp/gym-api/internal/middleware"
	ucNotification "github.com/gimnasioapp/gym-api/internal/usecase/notification"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	notificationRepo := infraRepo.NewNotificationGormRepository(db)
	unreadCache := cache.New(cfg.RedisAddr)
	recorder := delivery.NewRecorder(db)
	mail := mailer.New(cfg)

	// ======================================================
	// USE CASES (NOTIFICATIONS)
	// ======================================================
	markReadUC := ucNotification.NewMarkRead(notificationRepo, unreadCache)
	markAllReadUC := ucNotification.NewMarkAllRead(notificationRepo, unreadCache)
	unreadCountUC := ucNotification.NewUnreadCount(notificationRepo, unreadCache)
	statsUC := ucNotification.NewStats(notificationRepo)
	bulkCreateUC := ucNotification.NewBulkCreate(notificationRepo, unreadCache, recorder)
	settingsUC := ucNotification.NewSettings(notificationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, mail)
	meHandler := handlers.NewMeHandler(db)

	membershipHandler := handlers.NewMembershipHandler(db)
	trainerHandler := handlers.NewTrainerHandler(db)
	classHandler := handlers.NewClassHandler(db)
	memberHandler := handlers.NewMemberHandler(db, cfg)
	paymentHandler := handlers.NewPaymentHandler(db)
	attendanceHandler := handlers.NewAttendanceHandler(db)
	enrollmentHandler := handlers.NewEnrollmentHandler(db)
	equipmentHandler := handlers.NewEquipmentHandler(db)

	notificationHandler := handlers.NewNotificationHandler(
		notificationRepo,
		recorder,
		markReadUC,
		markAllReadUC,
		unreadCountUC,
		statsUC,
		bulkCreateUC,
	)
	settingsHandler := handlers.NewSettingsHandler(settingsUC)
	templateHandler := handlers.NewTemplateHandler(db)
	logHandler := handlers.NewLogHandler(db)

	// ======================================================
	// AUTH (PUBLIC)
	// ======================================================
	auth := r.Group("/auth")
	{
		auth.POST("/users/", authHandler.Register)
		auth.POST("/users/activation/", authHandler.Activate)
		auth.POST("/users/reset_password/", authHandler.ResetPassword)
		auth.POST("/users/reset_password_confirm/", authHandler.ResetPasswordConfirm)
		auth.POST("/jwt/create/", authHandler.Login)
		auth.POST("/jwt/refresh/", authHandler.Refresh)

		auth.GET("/users/me/", middleware.AuthMiddleware(db, cfg), meHandler.GetMe)
	}

	// ======================================================
	// API (PRIVATE)
	// ======================================================
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(db, cfg))
	{
		// ------------------------------
		// CATALOG (STAFF WRITES ONLY)
		// ------------------------------
		memberships := api.Group("/membresias", authz.StaffOrReadOnly())
		{
			memberships.GET("/", membershipHandler.List)
			memberships.GET("/:id/", membershipHandler.Get)
			memberships.POST("/", membershipHandler.Create)
			memberships.PUT("/:id/", membershipHandler.Update)
			memberships.PATCH("/:id/", membershipHandler.Update)
			memberships.DELETE("/:id/", membershipHandler.Delete)
		}

		trainers := api.Group("/entrenadores", authz.StaffOrReadOnly())
		{
			trainers.GET("/", trainerHandler.List)
			trainers.GET("/:id/", trainerHandler.Get)
			trainers.POST("/", trainerHandler.Create)
			trainers.PUT("/:id/", trainerHandler.Update)
			trainers.PATCH("/:id/", trainerHandler.Update)
			trainers.DELETE("/:id/", trainerHandler.Delete)
		}

		classes := api.Group("/clases", authz.StaffOrReadOnly())
		{
			classes.GET("/", classHandler.List)
			classes.GET("/:id/", classHandler.Get)
			classes.POST("/", classHandler.Create)
			classes.PUT("/:id/", classHandler.Update)
			classes.PATCH("/:id/", classHandler.Update)
			classes.DELETE("/:id/", classHandler.Delete)
		}

		equipment := api.Group("/equipos", authz.StaffOrReadOnly())
		{
			equipment.GET("/", equipmentHandler.List)
			equipment.GET("/:id/", equipmentHandler.Get)
			equipment.POST("/", equipmentHandler.Create)
			equipment.PUT("/:id/", equipmentHandler.Update)
			equipment.PATCH("/:id/", equipmentHandler.Update)
			equipment.DELETE("/:id/", equipmentHandler.Delete)
		}

		// ------------------------------
		// MEMBER-SCOPED RESOURCES
		// ------------------------------
		members := api.Group("/socios")
		{
			members.GET("/", memberHandler.List)
			members.GET("/:id/", memberHandler.Get)
			members.POST("/", memberHandler.Create)
			members.PUT("/:id/", memberHandler.Update)
			members.PATCH("/:id/", memberHandler.Update)
			members.DELETE("/:id/", memberHandler.Delete)
		}

		payments := api.Group("/pagos")
		{
			payments.GET("/", paymentHandler.List)
			payments.GET("/:id/", paymentHandler.Get)
			payments.POST("/", paymentHandler.Create)
			payments.PUT("/:id/", paymentHandler.Update)
			payments.PATCH("/:id/", paymentHandler.Update)
			payments.DELETE("/:id/", paymentHandler.Delete)
		}

		attendance := api.Group("/asistencias")
		{
			attendance.GET("/", attendanceHandler.List)
			attendance.GET("/:id/", attendanceHandler.Get)
			attendance.POST("/", attendanceHandler.Create)
			attendance.PUT("/:id/", attendanceHandler.Update)
			attendance.PATCH("/:id/", attendanceHandler.Update)
			attendance.DELETE("/:id/", attendanceHandler.Delete)
		}

		enrollments := api.Group("/socio-clases")
		{
			enrollments.GET("/", enrollmentHandler.List)
			enrollments.GET("/:id/", enrollmentHandler.Get)
			enrollments.POST("/", enrollmentHandler.Create)
			enrollments.DELETE("/:id/", enrollmentHandler.Delete)
		}

		// ------------------------------
		// NOTIFICATIONS
		// ------------------------------
		notifications := api.Group("/notifications")
		{
			notifications.GET("/", notificationHandler.List)
			notifications.GET("/unread_count/", notificationHandler.UnreadCount)
			notifications.GET("/stats/", notificationHandler.Stats)
			notifications.POST("/", notificationHandler.Create)
			notifications.POST("/mark_all_read/", notificationHandler.MarkAllRead)
			notifications.POST("/bulk_create/", authz.StaffOnly(), notificationHandler.BulkCreate)
			notifications.GET("/:id/", notificationHandler.Get)
			notifications.PUT("/:id/", notificationHandler.Update)
			notifications.PATCH("/:id/", notificationHandler.Update)
			notifications.POST("/:id/mark_read/", notificationHandler.MarkRead)
			notifications.DELETE("/:id/", notificationHandler.Delete)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/my_settings/", settingsHandler.MySettings)
			settings.PUT("/my_settings/", settingsHandler.UpdateMySettings)
			settings.PATCH("/my_settings/", settingsHandler.UpdateMySettings)
		}

		templates := api.Group("/templates", authz.StaffOrReadOnly())
		{
			templates.GET("/", templateHandler.List)
			templates.GET("/:id/", templateHandler.Get)
			templates.POST("/", templateHandler.Create)
			templates.PUT("/:id/", templateHandler.Update)
			templates.PATCH("/:id/", templateHandler.Update)
			templates.POST("/:id/toggle_active/", templateHandler.ToggleActive)
			templates.DELETE("/:id/", templateHandler.Delete)
		}

		logs := api.Group("/logs")
		{
			logs.GET("/", logHandler.List)
			logs.GET("/delivery_stats/", logHandler.DeliveryStats)
			logs.GET("/:id/", logHandler.Get)
		}
	}
}
