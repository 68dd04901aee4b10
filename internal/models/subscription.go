package models

import "time"

// Subscription - локальная копия статуса подписки из биллинга.
// Статус синхронизируется провайдером; проверки доступа читают
// только эту таблицу и не ходят в биллинг.
type Subscription struct {
	BaseModel
	UserID            string             `gorm:"not null;index"`
	EmployerProfileID *string            `gorm:"index"`
	Status            SubscriptionStatus `gorm:"type:varchar(20);default:'trialing'"`
	PlanName          string
	ExternalID        string `gorm:"uniqueIndex"` // ID подписки у провайдера
	CurrentPeriodEnd  *time.Time
	CancelledAt       *time.Time
}
