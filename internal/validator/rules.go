package validator

import (
	"log"

	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила на основе
// доменных enum'ов из models.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка конфигурации приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-team-role", validateTeamRole)
	mustRegister("is-privacy-setting-type", validatePrivacySettingType)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-subscription-status", validateSubscriptionStatus)
}

// Пустые значения пропускаются: обязательность проверяет 'required'.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleEmployer, models.UserRoleCandidate, models.UserRoleTeamMember:
		return true
	default:
		return false
	}
}

func validateTeamRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidateTeamRole(models.TeamRole(value)) == nil
}

func validatePrivacySettingType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidatePrivacySettingType(models.PrivacySettingType(value))
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPending, models.ApplicationStatusReviewed,
		models.ApplicationStatusShortlisted, models.ApplicationStatusRejected,
		models.ApplicationStatusHired:
		return true
	default:
		return false
	}
}

func validateSubscriptionStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.SubscriptionStatus(value) {
	case models.SubscriptionStatusActive, models.SubscriptionStatusTrialing,
		models.SubscriptionStatusPastDue, models.SubscriptionStatusCancelled,
		models.SubscriptionStatusExpired:
		return true
	default:
		return false
	}
}
