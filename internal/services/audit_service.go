package services

import (
	"encoding/json"

	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// AuditService - transparency-отчет: пользователь видит, кто и когда
// совершал действия над его данными. Только чтение, журнал append-only.
type AuditService interface {
	GetMyAuditTrail(userID string, criteria dto.AuditTrailCriteria) (*dto.AuditTrailResponse, error)
}

type auditService struct {
	auditRepo repositories.AuditLogRepository
}

func NewAuditService(auditRepo repositories.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) GetMyAuditTrail(userID string, criteria dto.AuditTrailCriteria) (*dto.AuditTrailResponse, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 || criteria.PageSize > 200 {
		criteria.PageSize = 50
	}

	entries, total, err := s.auditRepo.FindByTargetUser(userID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.AuditTrailResponse{Total: total}
	for i := range entries {
		e := &entries[i]
		resp.Entries = append(resp.Entries, dto.AuditEntryResponse{
			ID:         e.ID,
			ActorID:    e.ActorID,
			ActionType: e.ActionType,
			Category:   e.Category,
			Metadata:   json.RawMessage(e.Metadata),
			CreatedAt:  e.CreatedAt,
		})
	}
	return resp, nil
}
