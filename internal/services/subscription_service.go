package services

import (
	"errors"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type SubscriptionService interface {
	GetMySubscription(userID string) (*dto.SubscriptionResponse, error)
	// Sync пишет статус от биллинг-провайдера в локальную таблицу.
	// Единственный путь изменения статуса подписки.
	Sync(req *dto.SyncSubscriptionRequest) (*dto.SubscriptionResponse, error)
	// ExpireOverdue - периодическая уборка подписок с истекшим
	// периодом. Возвращает число затронутых строк.
	ExpireOverdue() (int64, error)
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	employerRepo     repositories.EmployerProfileRepository
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	employerRepo repositories.EmployerProfileRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		employerRepo:     employerRepo,
	}
}

func (s *subscriptionService) GetMySubscription(userID string) (*dto.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.FindSubscriptionByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// подписки нет: отдаем expired-вид, а не 404
			return &dto.SubscriptionResponse{
				Status:      models.SubscriptionStatusExpired,
				GatesAccess: false,
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return buildSubscriptionResponse(sub), nil
}

func (s *subscriptionService) Sync(req *dto.SyncSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	sub := &models.Subscription{
		UserID:           req.UserID,
		ExternalID:       req.ExternalID,
		Status:           req.Status,
		PlanName:         req.PlanName,
		CurrentPeriodEnd: req.CurrentPeriodEnd,
	}
	if req.Status == models.SubscriptionStatusCancelled {
		now := time.Now()
		sub.CancelledAt = &now
	}

	if profile, err := s.employerRepo.FindEmployerProfileByUserID(req.UserID); err == nil {
		sub.EmployerProfileID = &profile.ID
	}

	if err := s.subscriptionRepo.UpsertByExternalID(sub); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("subscription synced",
		"user_id", req.UserID, "external_id", req.ExternalID, "status", req.Status)
	return buildSubscriptionResponse(sub), nil
}

func (s *subscriptionService) ExpireOverdue() (int64, error) {
	affected, err := s.subscriptionRepo.ExpireOverdue(time.Now())
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	if affected > 0 {
		logger.Info("overdue subscriptions expired", "count", affected)
	}
	return affected, nil
}

func buildSubscriptionResponse(sub *models.Subscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		Status:           sub.Status,
		PlanName:         sub.PlanName,
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
		GatesAccess:      sub.Status.GatesAccess(),
	}
}
