package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type EmployerProfileRepository interface {
	Create(profile *models.EmployerProfile) error
	FindByID(id string) (*models.EmployerProfile, error)
	FindEmployerProfileByUserID(userID string) (*models.EmployerProfile, error)
	Update(profile *models.EmployerProfile) error
}

type EmployerProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployerProfileRepository(db *gorm.DB) EmployerProfileRepository {
	return &EmployerProfileRepositoryImpl{db: db}
}

func (r *EmployerProfileRepositoryImpl) Create(profile *models.EmployerProfile) error {
	var existing models.EmployerProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return errors.New("employer profile already exists for this user")
	}
	return r.db.Create(profile).Error
}

func (r *EmployerProfileRepositoryImpl) FindByID(id string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *EmployerProfileRepositoryImpl) FindEmployerProfileByUserID(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *EmployerProfileRepositoryImpl) Update(profile *models.EmployerProfile) error {
	return r.db.Save(profile).Error
}
