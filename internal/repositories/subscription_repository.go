package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	// FindSubscriptionByUserID - последняя по дате подписка пользователя.
	FindSubscriptionByUserID(userID string) (*models.Subscription, error)
	// UpsertByExternalID пишет статус от биллинг-провайдера:
	// создает запись или обновляет существующую по external_id.
	UpsertByExternalID(sub *models.Subscription) error
	// ExpireOverdue переводит в expired подписки с истекшим периодом,
	// кроме past_due (grace period управляется провайдером).
	ExpireOverdue(now time.Time) (int64, error)
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

func (r *SubscriptionRepositoryImpl) FindSubscriptionByUserID(userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) UpsertByExternalID(sub *models.Subscription) error {
	var existing models.Subscription
	err := r.db.Where("external_id = ?", sub.ExternalID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(sub).Error
		}
		return err
	}

	existing.Status = sub.Status
	existing.PlanName = sub.PlanName
	existing.CurrentPeriodEnd = sub.CurrentPeriodEnd
	existing.CancelledAt = sub.CancelledAt
	return r.db.Save(&existing).Error
}

func (r *SubscriptionRepositoryImpl) ExpireOverdue(now time.Time) (int64, error) {
	result := r.db.Model(&models.Subscription{}).
		Where("status IN ?", []models.SubscriptionStatus{
			models.SubscriptionStatusActive,
			models.SubscriptionStatusTrialing,
		}).
		Where("current_period_end IS NOT NULL AND current_period_end < ?", now).
		Update("status", models.SubscriptionStatusExpired)
	return result.RowsAffected, result.Error
}
