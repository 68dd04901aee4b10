package repositories

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"

	"gorm.io/gorm"
)

// AuditLogRepository - append-only журнал. Update/Delete
// намеренно отсутствуют в интерфейсе.
type AuditLogRepository interface {
	Create(entry *models.AuditLog) error
	FindByTargetUser(targetUserID string, criteria dto.AuditTrailCriteria) ([]models.AuditLog, int64, error)
}

type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &AuditLogRepositoryImpl{db: db}
}

func (r *AuditLogRepositoryImpl) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *AuditLogRepositoryImpl) FindByTargetUser(targetUserID string, criteria dto.AuditTrailCriteria) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	query := r.db.Model(&models.AuditLog{}).Where("target_user_id = ?", targetUserID)
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.Action != "" {
		query = query.Where("action_type = ?", criteria.Action)
	}
	if !criteria.DateFrom.IsZero() {
		query = query.Where("created_at >= ?", criteria.DateFrom)
	}
	if !criteria.DateTo.IsZero() {
		query = query.Where("created_at <= ?", criteria.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (criteria.Page - 1) * criteria.PageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(criteria.PageSize).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
