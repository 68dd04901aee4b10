package models

import "gorm.io/datatypes"

type PrivacySettingType string

const (
	PrivacyProfileVisibility   PrivacySettingType = "profile_visibility"
	PrivacyContactInfoSharing  PrivacySettingType = "contact_info_sharing"
	PrivacyAnonymizationLevel  PrivacySettingType = "anonymization_level"
	PrivacyReferenceVisibility PrivacySettingType = "reference_visibility"
)

// PrivacySetting - настройка приватности кандидата.
// История append-only: новая запись деактивирует предыдущую,
// активная запись на (user_id, setting_type) всегда ровно одна.
type PrivacySetting struct {
	BaseModel
	UserID       string             `gorm:"not null;index:idx_privacy_user_type"`
	SettingType  PrivacySettingType `gorm:"type:varchar(40);not null;index:idx_privacy_user_type"`
	SettingValue datatypes.JSON     `gorm:"type:jsonb"` // {"public": false} / {"enabled": false} / {"level": "advanced"}
	IsActive     bool               `gorm:"default:true"`
}

// ValidatePrivacySettingType проверяет тип настройки.
func ValidatePrivacySettingType(t PrivacySettingType) bool {
	switch t {
	case PrivacyProfileVisibility, PrivacyContactInfoSharing,
		PrivacyAnonymizationLevel, PrivacyReferenceVisibility:
		return true
	default:
		return false
	}
}
