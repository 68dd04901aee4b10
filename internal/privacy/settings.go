// Package privacy применяет настройки приватности кандидата
// к исходящему представлению его профиля.
package privacy

import (
	"encoding/json"

	"jobboard_backend/internal/models"
)

// AnonymizationLevel - уровень анонимизации профиля.
// Уровни строго упорядочены: maximum включает все редакции advanced,
// advanced - все редакции basic.
type AnonymizationLevel string

const (
	LevelNone     AnonymizationLevel = "none"
	LevelBasic    AnonymizationLevel = "basic"
	LevelAdvanced AnonymizationLevel = "advanced"
	LevelMaximum  AnonymizationLevel = "maximum"
)

// Settings - разрешенные активные настройки кандидата.
// Значения по умолчанию открытые (fail-open): ограничивает
// только явный opt-out в соответствующей записи.
type Settings struct {
	ProfilePublic    bool
	ContactShared    bool
	Level            AnonymizationLevel
	ReferencesPublic bool
}

// DefaultSettings - настройки при полном отсутствии записей.
func DefaultSettings() Settings {
	return Settings{
		ProfilePublic:    true,
		ContactShared:    true,
		Level:            LevelNone,
		ReferencesPublic: true,
	}
}

// ParseSettings собирает Settings из активных записей PrivacySetting.
// Кривые payload'ы отдельной записи игнорируются (остается default),
// профиль при этом не ломается.
func ParseSettings(rows []models.PrivacySetting) Settings {
	s := DefaultSettings()

	for _, row := range rows {
		if !row.IsActive || len(row.SettingValue) == 0 {
			continue
		}

		switch row.SettingType {
		case models.PrivacyProfileVisibility:
			var v struct {
				Public *bool `json:"public"`
			}
			// скрывает только явный public:false
			if err := json.Unmarshal(row.SettingValue, &v); err == nil && v.Public != nil && !*v.Public {
				s.ProfilePublic = false
			}

		case models.PrivacyContactInfoSharing:
			var v struct {
				Enabled *bool `json:"enabled"`
			}
			if err := json.Unmarshal(row.SettingValue, &v); err == nil && v.Enabled != nil && !*v.Enabled {
				s.ContactShared = false
			}

		case models.PrivacyAnonymizationLevel:
			var v struct {
				Level string `json:"level"`
			}
			if err := json.Unmarshal(row.SettingValue, &v); err == nil {
				switch AnonymizationLevel(v.Level) {
				case LevelBasic, LevelAdvanced, LevelMaximum:
					s.Level = AnonymizationLevel(v.Level)
				}
			}

		case models.PrivacyReferenceVisibility:
			var v struct {
				Public *bool `json:"public"`
			}
			if err := json.Unmarshal(row.SettingValue, &v); err == nil && v.Public != nil && !*v.Public {
				s.ReferencesPublic = false
			}
		}
	}

	return s
}

// ValidateSettingValue проверяет payload настройки перед сохранением.
// В отличие от чтения (fail-open), запись невалидного значения отклоняется.
func ValidateSettingValue(settingType models.PrivacySettingType, value json.RawMessage) bool {
	switch settingType {
	case models.PrivacyProfileVisibility, models.PrivacyReferenceVisibility:
		var v struct {
			Public *bool `json:"public"`
		}
		return json.Unmarshal(value, &v) == nil && v.Public != nil

	case models.PrivacyContactInfoSharing:
		var v struct {
			Enabled *bool `json:"enabled"`
		}
		return json.Unmarshal(value, &v) == nil && v.Enabled != nil

	case models.PrivacyAnonymizationLevel:
		var v struct {
			Level string `json:"level"`
		}
		if json.Unmarshal(value, &v) != nil {
			return false
		}
		switch AnonymizationLevel(v.Level) {
		case LevelNone, LevelBasic, LevelAdvanced, LevelMaximum:
			return true
		}
		return false

	default:
		return false
	}
}
