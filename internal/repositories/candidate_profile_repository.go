package repositories

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"

	"gorm.io/gorm"
)

type CandidateProfileRepository interface {
	Create(profile *models.CandidateProfile) error
	FindByID(id string) (*models.CandidateProfile, error)
	FindByUserID(userID string) (*models.CandidateProfile, error)
	Update(profile *models.CandidateProfile) error
	IncrementViews(id string) error
	// Search ищет профили, исключая userIDs из excludeUserIDs
	// (кандидаты со скрытым profile_visibility).
	Search(criteria dto.CandidateSearchCriteria, excludeUserIDs []string) ([]models.CandidateProfile, int64, error)
}

type CandidateProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateProfileRepository(db *gorm.DB) CandidateProfileRepository {
	return &CandidateProfileRepositoryImpl{db: db}
}

func (r *CandidateProfileRepositoryImpl) Create(profile *models.CandidateProfile) error {
	var existing models.CandidateProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return errors.New("candidate profile already exists for this user")
	}
	return r.db.Create(profile).Error
}

func (r *CandidateProfileRepositoryImpl) FindByID(id string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	if err := r.db.Preload("User").Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CandidateProfileRepositoryImpl) FindByUserID(userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CandidateProfileRepositoryImpl) Update(profile *models.CandidateProfile) error {
	return r.db.Save(profile).Error
}

func (r *CandidateProfileRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.CandidateProfile{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *CandidateProfileRepositoryImpl) Search(criteria dto.CandidateSearchCriteria, excludeUserIDs []string) ([]models.CandidateProfile, int64, error) {
	var profiles []models.CandidateProfile
	var total int64

	query := r.db.Model(&models.CandidateProfile{}).Preload("User")

	if len(excludeUserIDs) > 0 {
		query = query.Where("user_id NOT IN ?", excludeUserIDs)
	}

	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("headline ILIKE ? OR bio ILIKE ? OR current_title ILIKE ?", search, search, search)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.Skill != "" {
		query = query.Where("skills::text ILIKE ?", "%"+criteria.Skill+"%")
	}
	if criteria.MinYears != nil {
		query = query.Where("years_of_exp >= ?", *criteria.MinYears)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (criteria.Page - 1) * criteria.PageSize
	err := query.Order("updated_at DESC").Offset(offset).Limit(criteria.PageSize).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}
