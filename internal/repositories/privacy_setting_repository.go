package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type PrivacySettingRepository interface {
	FindActiveByUser(userID string) ([]models.PrivacySetting, error)
	FindActiveByUserAndType(userID string, settingType models.PrivacySettingType) (*models.PrivacySetting, error)
	// UpsertActive деактивирует текущую активную запись (user, type)
	// и вставляет новую в одной транзакции. История append-only,
	// активный указатель всегда один.
	UpsertActive(setting *models.PrivacySetting) error
	// FindHiddenProfileUserIDs - user_id кандидатов с явным
	// profile_visibility.public=false. Используется гейтом видимости
	// до загрузки профилей в поиск.
	FindHiddenProfileUserIDs() ([]string, error)
}

type PrivacySettingRepositoryImpl struct {
	db *gorm.DB
}

func NewPrivacySettingRepository(db *gorm.DB) PrivacySettingRepository {
	return &PrivacySettingRepositoryImpl{db: db}
}

func (r *PrivacySettingRepositoryImpl) FindActiveByUser(userID string) ([]models.PrivacySetting, error) {
	var settings []models.PrivacySetting
	err := r.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("setting_type ASC").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *PrivacySettingRepositoryImpl) FindActiveByUserAndType(userID string, settingType models.PrivacySettingType) (*models.PrivacySetting, error) {
	var setting models.PrivacySetting
	err := r.db.
		Where("user_id = ? AND setting_type = ? AND is_active = ?", userID, settingType, true).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (r *PrivacySettingRepositoryImpl) UpsertActive(setting *models.PrivacySetting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.PrivacySetting{}).
			Where("user_id = ? AND setting_type = ? AND is_active = ?",
				setting.UserID, setting.SettingType, true).
			Update("is_active", false).Error
		if err != nil {
			return err
		}

		setting.IsActive = true
		return tx.Create(setting).Error
	})
}

func (r *PrivacySettingRepositoryImpl) FindHiddenProfileUserIDs() ([]string, error) {
	var userIDs []string
	err := r.db.Model(&models.PrivacySetting{}).
		Where("setting_type = ? AND is_active = ?", models.PrivacyProfileVisibility, true).
		Where("setting_value->>'public' = 'false'").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}
