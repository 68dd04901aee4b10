package privacy

import (
	"encoding/json"
	"testing"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func setting(t models.PrivacySettingType, value string, active bool) models.PrivacySetting {
	return models.PrivacySetting{
		SettingType:  t,
		SettingValue: datatypes.JSON(value),
		IsActive:     active,
	}
}

func TestParseSettings_Defaults(t *testing.T) {
	s := ParseSettings(nil)

	assert.True(t, s.ProfilePublic)
	assert.True(t, s.ContactShared)
	assert.True(t, s.ReferencesPublic)
	assert.Equal(t, LevelNone, s.Level)
}

// Ограничивает только явный opt-out. Отсутствие поля, мусорный
// payload и неактивные записи читаются как открытые настройки.
func TestParseSettings_ExplicitOptOutOnly(t *testing.T) {
	tests := []struct {
		name string
		rows []models.PrivacySetting
		want func(t *testing.T, s Settings)
	}{
		{
			name: "явный public:false скрывает профиль",
			rows: []models.PrivacySetting{
				setting(models.PrivacyProfileVisibility, `{"public": false}`, true),
			},
			want: func(t *testing.T, s Settings) { assert.False(t, s.ProfilePublic) },
		},
		{
			name: "public:true оставляет открытым",
			rows: []models.PrivacySetting{
				setting(models.PrivacyProfileVisibility, `{"public": true}`, true),
			},
			want: func(t *testing.T, s Settings) { assert.True(t, s.ProfilePublic) },
		},
		{
			name: "payload без поля public читается как открытый",
			rows: []models.PrivacySetting{
				setting(models.PrivacyProfileVisibility, `{"other": 1}`, true),
			},
			want: func(t *testing.T, s Settings) { assert.True(t, s.ProfilePublic) },
		},
		{
			name: "битый json игнорируется",
			rows: []models.PrivacySetting{
				setting(models.PrivacyContactInfoSharing, `{not json`, true),
			},
			want: func(t *testing.T, s Settings) { assert.True(t, s.ContactShared) },
		},
		{
			name: "неактивная запись не учитывается",
			rows: []models.PrivacySetting{
				setting(models.PrivacyProfileVisibility, `{"public": false}`, false),
			},
			want: func(t *testing.T, s Settings) { assert.True(t, s.ProfilePublic) },
		},
		{
			name: "enabled:false закрывает контакты",
			rows: []models.PrivacySetting{
				setting(models.PrivacyContactInfoSharing, `{"enabled": false}`, true),
			},
			want: func(t *testing.T, s Settings) { assert.False(t, s.ContactShared) },
		},
		{
			name: "валидный уровень анонимизации применяется",
			rows: []models.PrivacySetting{
				setting(models.PrivacyAnonymizationLevel, `{"level": "advanced"}`, true),
			},
			want: func(t *testing.T, s Settings) { assert.Equal(t, LevelAdvanced, s.Level) },
		},
		{
			name: "неизвестный уровень остается none",
			rows: []models.PrivacySetting{
				setting(models.PrivacyAnonymizationLevel, `{"level": "paranoid"}`, true),
			},
			want: func(t *testing.T, s Settings) { assert.Equal(t, LevelNone, s.Level) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, ParseSettings(tt.rows))
		})
	}
}

// Запись строже чтения: невалидный payload отклоняется.
func TestValidateSettingValue(t *testing.T) {
	tests := []struct {
		name        string
		settingType models.PrivacySettingType
		value       string
		want        bool
	}{
		{"visibility valid", models.PrivacyProfileVisibility, `{"public": false}`, true},
		{"visibility missing field", models.PrivacyProfileVisibility, `{}`, false},
		{"visibility broken json", models.PrivacyProfileVisibility, `{oops`, false},
		{"contact valid", models.PrivacyContactInfoSharing, `{"enabled": true}`, true},
		{"contact missing field", models.PrivacyContactInfoSharing, `{"public": true}`, false},
		{"level valid", models.PrivacyAnonymizationLevel, `{"level": "maximum"}`, true},
		{"level none valid", models.PrivacyAnonymizationLevel, `{"level": "none"}`, true},
		{"level unknown", models.PrivacyAnonymizationLevel, `{"level": "paranoid"}`, false},
		{"references valid", models.PrivacyReferenceVisibility, `{"public": true}`, true},
		{"unknown type", models.PrivacySettingType("unknown"), `{"public": true}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSettingValue(tt.settingType, json.RawMessage(tt.value))
			assert.Equal(t, tt.want, got)
		})
	}
}
