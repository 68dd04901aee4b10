package dto

import (
	"encoding/json"
	"time"

	"jobboard_backend/internal/models"
)

type UpsertPrivacySettingRequest struct {
	SettingType  models.PrivacySettingType `json:"setting_type" binding:"required"`
	SettingValue json.RawMessage           `json:"setting_value" binding:"required"`
}

type PrivacySettingResponse struct {
	ID           string                    `json:"id"`
	SettingType  models.PrivacySettingType `json:"setting_type"`
	SettingValue json.RawMessage           `json:"setting_value"`
	IsActive     bool                      `json:"is_active"`
	CreatedAt    time.Time                 `json:"created_at"`
}

type PrivacySettingsListResponse struct {
	Settings []PrivacySettingResponse `json:"settings"`
}
