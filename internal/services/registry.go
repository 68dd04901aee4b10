package services

import (
	"time"

	"jobboard_backend/internal/authz"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/dedup"
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/telemetry"
)

// Repositories - набор репозиториев, нужный сервисному слою.
type Repositories struct {
	Users             repositories.UserRepository
	EmployerProfiles  repositories.EmployerProfileRepository
	CandidateProfiles repositories.CandidateProfileRepository
	TeamMembers       repositories.TeamMemberRepository
	Jobs              repositories.JobRepository
	Applications      repositories.ApplicationRepository
	PrivacySettings   repositories.PrivacySettingRepository
	ProfileViews      repositories.ProfileViewRepository
	Notifications     repositories.NotificationRepository
	AuditLogs         repositories.AuditLogRepository
	Subscriptions     repositories.SubscriptionRepository
}

// ServiceContainer собирает все сервисы с зависимостями.
// Единственная точка композиции: ни один сервис не создает
// свои зависимости сам и не читает глобальное состояние.
type ServiceContainer struct {
	Auth          AuthService
	Team          TeamService
	Jobs          JobService
	Applications  ApplicationService
	Profiles      CandidateProfileService
	Privacy       PrivacyService
	Notifications NotificationService
	Subscriptions SubscriptionService
	Audit         AuditService
}

func NewServiceContainer(cfg *config.Config, repos Repositories, emailSender email.Provider) *ServiceContainer {
	resolver := authz.NewResolver(repos.EmployerProfiles, repos.TeamMembers)
	evaluator := authz.NewEvaluator(resolver)
	gate := authz.NewSubscriptionGate(repos.Subscriptions)

	window := dedup.NewWindow(time.Duration(cfg.App.ViewCooldownMinutes) * time.Minute)
	recorder := telemetry.NewViewRecorder(
		repos.ProfileViews,
		repos.Notifications,
		repos.AuditLogs,
		repos.CandidateProfiles,
		window,
	)

	return &ServiceContainer{
		Auth: NewAuthService(repos.Users, repos.EmployerProfiles, repos.CandidateProfiles),
		Team: NewTeamService(
			repos.TeamMembers,
			repos.Users,
			repos.EmployerProfiles,
			repos.AuditLogs,
			evaluator,
			emailSender,
			cfg.App.BaseURL,
			cfg.App.InvitationTTLDays,
		),
		Jobs: NewJobService(repos.Jobs, repos.Users, repos.EmployerProfiles, evaluator, gate),
		Applications: NewApplicationService(
			repos.Applications,
			repos.Jobs,
			repos.Users,
			repos.EmployerProfiles,
			repos.CandidateProfiles,
			repos.PrivacySettings,
			repos.Notifications,
			evaluator,
			gate,
			recorder,
		),
		Profiles: NewCandidateProfileService(
			repos.CandidateProfiles,
			repos.Users,
			repos.EmployerProfiles,
			repos.PrivacySettings,
			recorder,
		),
		Privacy:       NewPrivacyService(repos.PrivacySettings, repos.AuditLogs),
		Notifications: NewNotificationService(repos.Notifications),
		Subscriptions: NewSubscriptionService(repos.Subscriptions, repos.EmployerProfiles),
		Audit:         NewAuditService(repos.AuditLogs),
	}
}
