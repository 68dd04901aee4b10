package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type SubscriptionResponse struct {
	Status           models.SubscriptionStatus `json:"status"`
	PlanName         string                    `json:"plan_name,omitempty"`
	CurrentPeriodEnd *time.Time                `json:"current_period_end,omitempty"`
	GatesAccess      bool                      `json:"gates_access"`
}

// SyncSubscriptionRequest - запись статуса от биллинг-провайдера
// в локальную таблицу. Вызывается интеграцией, не пользователем.
type SyncSubscriptionRequest struct {
	UserID           string                    `json:"user_id" binding:"required,uuid"`
	ExternalID       string                    `json:"external_id" binding:"required"`
	Status           models.SubscriptionStatus `json:"status" binding:"required,oneof=active trialing past_due cancelled expired"`
	PlanName         string                    `json:"plan_name"`
	CurrentPeriodEnd *time.Time                `json:"current_period_end"`
}
