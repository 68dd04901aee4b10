package services

import (
	"encoding/json"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/privacy"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/telemetry"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type PrivacyService interface {
	ListSettings(userID string) (*dto.PrivacySettingsListResponse, error)
	// UpsertSetting пишет новую активную настройку. Валидация строгая:
	// невалидный тип или payload отклоняются до каких-либо записей.
	UpsertSetting(userID string, req *dto.UpsertPrivacySettingRequest) (*dto.PrivacySettingResponse, error)
}

type privacyService struct {
	privacyRepo repositories.PrivacySettingRepository
	auditRepo   repositories.AuditLogRepository
}

func NewPrivacyService(
	privacyRepo repositories.PrivacySettingRepository,
	auditRepo repositories.AuditLogRepository,
) PrivacyService {
	return &privacyService{
		privacyRepo: privacyRepo,
		auditRepo:   auditRepo,
	}
}

func (s *privacyService) ListSettings(userID string) (*dto.PrivacySettingsListResponse, error) {
	rows, err := s.privacyRepo.FindActiveByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.PrivacySettingsListResponse{}
	for i := range rows {
		resp.Settings = append(resp.Settings, *buildPrivacySettingResponse(&rows[i]))
	}
	return resp, nil
}

func (s *privacyService) UpsertSetting(userID string, req *dto.UpsertPrivacySettingRequest) (*dto.PrivacySettingResponse, error) {
	if !models.ValidatePrivacySettingType(req.SettingType) {
		return nil, apperrors.ErrInvalidPrivacySetting
	}
	if !privacy.ValidateSettingValue(req.SettingType, req.SettingValue) {
		return nil, apperrors.ErrInvalidPrivacySetting
	}

	setting := &models.PrivacySetting{
		UserID:       userID,
		SettingType:  req.SettingType,
		SettingValue: datatypes.JSON(req.SettingValue),
	}
	if err := s.privacyRepo.UpsertActive(setting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	telemetry.BestEffort("privacy.audit", func() error {
		metadata, err := json.Marshal(map[string]string{
			"settingType": string(req.SettingType),
			"newValue":    string(req.SettingValue),
		})
		if err != nil {
			return err
		}
		return s.auditRepo.Create(&models.AuditLog{
			ActorID:      userID,
			TargetUserID: userID,
			ActionType:   models.AuditActionPrivacyChange,
			Category:     models.AuditCategoryPrivacy,
			Metadata:     datatypes.JSON(metadata),
		})
	})

	logger.Info("privacy setting updated", "user_id", userID, "setting_type", req.SettingType)
	return buildPrivacySettingResponse(setting), nil
}

func buildPrivacySettingResponse(setting *models.PrivacySetting) *dto.PrivacySettingResponse {
	return &dto.PrivacySettingResponse{
		ID:           setting.ID,
		SettingType:  setting.SettingType,
		SettingValue: json.RawMessage(setting.SettingValue),
		IsActive:     setting.IsActive,
		CreatedAt:    setting.CreatedAt,
	}
}
