package app

import (
	"fmt"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/database"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database schema", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailSender email.Provider
	if cfg.Email.SMTPHost != "" {
		sender, err := email.NewSMTPProvider(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize email sender", "error", err)
		}
		emailSender = sender
	} else {
		logger.Warn("SMTP is not configured, using mock email provider")
		emailSender = &MockEmailProvider{}
	}

	repos := services.Repositories{
		Users:             repositories.NewUserRepository(gormDB),
		EmployerProfiles:  repositories.NewEmployerProfileRepository(gormDB),
		CandidateProfiles: repositories.NewCandidateProfileRepository(gormDB),
		TeamMembers:       repositories.NewTeamMemberRepository(gormDB),
		Jobs:              repositories.NewJobRepository(gormDB),
		Applications:      repositories.NewApplicationRepository(gormDB),
		PrivacySettings:   repositories.NewPrivacySettingRepository(gormDB),
		ProfileViews:      repositories.NewProfileViewRepository(gormDB),
		Notifications:     repositories.NewNotificationRepository(gormDB),
		AuditLogs:         repositories.NewAuditLogRepository(gormDB),
		Subscriptions:     repositories.NewSubscriptionRepository(gormDB),
	}

	return services.NewServiceContainer(cfg, repos, emailSender)
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.Auth),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, container.Profiles),
		JobHandler:          handlers.NewJobHandler(baseHandler, container.Jobs),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, container.Applications),
		TeamHandler:         handlers.NewTeamHandler(baseHandler, container.Team),
		PrivacyHandler:      handlers.NewPrivacyHandler(baseHandler, container.Privacy, container.Audit),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.Notifications),
		SubscriptionHandler: handlers.NewSubscriptionHandler(baseHandler, container.Subscriptions),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
