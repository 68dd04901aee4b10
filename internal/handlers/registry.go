package handlers

// AppHandlers - все HTTP-хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	TeamHandler         *TeamHandler
	PrivacyHandler      *PrivacyHandler
	NotificationHandler *NotificationHandler
	SubscriptionHandler *SubscriptionHandler
}
