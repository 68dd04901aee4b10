package repositories

import (
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type ProfileViewRepository interface {
	Create(view *models.ProfileView) error
	// HasViewSince - есть ли просмотр этой пары (candidate, viewer)
	// новее cutoff. Нижняя граница окна дедупликации.
	HasViewSince(candidateID, viewerID string, cutoff time.Time) (bool, error)
	CountForCandidate(candidateID string) (int64, error)
	ListForCandidate(candidateID string, limit int) ([]models.ProfileView, error)
}

type ProfileViewRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileViewRepository(db *gorm.DB) ProfileViewRepository {
	return &ProfileViewRepositoryImpl{db: db}
}

func (r *ProfileViewRepositoryImpl) Create(view *models.ProfileView) error {
	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now()
	}
	return r.db.Create(view).Error
}

func (r *ProfileViewRepositoryImpl) HasViewSince(candidateID, viewerID string, cutoff time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProfileView{}).
		Where("candidate_id = ? AND viewer_id = ? AND viewed_at >= ?", candidateID, viewerID, cutoff).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProfileViewRepositoryImpl) CountForCandidate(candidateID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProfileView{}).
		Where("candidate_id = ?", candidateID).
		Count(&count).Error
	return count, err
}

func (r *ProfileViewRepositoryImpl) ListForCandidate(candidateID string, limit int) ([]models.ProfileView, error) {
	var views []models.ProfileView
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("viewed_at DESC").
		Limit(limit).
		Find(&views).Error
	return views, err
}
