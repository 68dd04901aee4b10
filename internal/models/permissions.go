package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Capability - именованное разрешение внутри компании.
// Закрытый набор: неизвестный флаг не компилируется и не может
// появиться из данных.
type Capability string

const (
	CapPostJobs             Capability = "can_post_jobs"
	CapViewApplications     Capability = "can_view_applications"
	CapInterviewCandidates  Capability = "can_interview_candidates"
	CapManageTeam           Capability = "can_manage_team"
	CapReviewApplications   Capability = "can_review_applications"
	CapSendEmails           Capability = "can_send_emails"
	CapExportData           Capability = "can_export_data"
	CapAccessAnalytics      Capability = "can_access_analytics"
	CapManageCompanyProfile Capability = "can_manage_company_profile"
)

// PermissionSet - карта разрешений участника команды или профиля компании.
// Хранится как jsonb; пропущенные в данных поля читаются как false.
type PermissionSet struct {
	CanPostJobs             bool `json:"can_post_jobs"`
	CanViewApplications     bool `json:"can_view_applications"`
	CanInterviewCandidates  bool `json:"can_interview_candidates"`
	CanManageTeam           bool `json:"can_manage_team"`
	CanReviewApplications   bool `json:"can_review_applications"`
	CanSendEmails           bool `json:"can_send_emails"`
	CanExportData           bool `json:"can_export_data"`
	CanAccessAnalytics      bool `json:"can_access_analytics"`
	CanManageCompanyProfile bool `json:"can_manage_company_profile"`
}

// Allows проверяет один флаг. Fail closed: неизвестная capability = false.
func (p PermissionSet) Allows(c Capability) bool {
	switch c {
	case CapPostJobs:
		return p.CanPostJobs
	case CapViewApplications:
		return p.CanViewApplications
	case CapInterviewCandidates:
		return p.CanInterviewCandidates
	case CapManageTeam:
		return p.CanManageTeam
	case CapReviewApplications:
		return p.CanReviewApplications
	case CapSendEmails:
		return p.CanSendEmails
	case CapExportData:
		return p.CanExportData
	case CapAccessAnalytics:
		return p.CanAccessAnalytics
	case CapManageCompanyProfile:
		return p.CanManageCompanyProfile
	default:
		return false
	}
}

// FullPermissions - полный набор флагов (выдается primary owner'у).
func FullPermissions() PermissionSet {
	return PermissionSet{
		CanPostJobs:             true,
		CanViewApplications:     true,
		CanInterviewCandidates:  true,
		CanManageTeam:           true,
		CanReviewApplications:   true,
		CanSendEmails:           true,
		CanExportData:           true,
		CanAccessAnalytics:      true,
		CanManageCompanyProfile: true,
	}
}

// DefaultPermissionsForRole - стартовые флаги по роли участника команды.
func DefaultPermissionsForRole(role TeamRole) PermissionSet {
	switch role {
	case TeamRolePrimaryOwner, TeamRoleAdmin:
		return FullPermissions()
	case TeamRoleHRManager:
		return PermissionSet{
			CanPostJobs:           true,
			CanViewApplications:   true,
			CanReviewApplications: true,
			CanManageTeam:         true,
			CanSendEmails:         true,
		}
	case TeamRoleRecruiter:
		return PermissionSet{
			CanPostJobs:           true,
			CanViewApplications:   true,
			CanReviewApplications: true,
			CanSendEmails:         true,
		}
	case TeamRoleInterviewer:
		return PermissionSet{
			CanViewApplications:    true,
			CanInterviewCandidates: true,
		}
	default:
		return PermissionSet{}
	}
}

// Value реализует driver.Valuer для записи в jsonb колонку.
func (p PermissionSet) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan реализует sql.Scanner для чтения из jsonb колонки.
func (p *PermissionSet) Scan(value interface{}) error {
	if value == nil {
		*p = PermissionSet{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for PermissionSet: %T", value)
	}

	if len(raw) == 0 {
		*p = PermissionSet{}
		return nil
	}
	return json.Unmarshal(raw, p)
}

// ValidateTeamRole проверяет валидность роли участника команды.
func ValidateTeamRole(role TeamRole) error {
	switch role {
	case TeamRolePrimaryOwner, TeamRoleHRManager, TeamRoleRecruiter, TeamRoleInterviewer, TeamRoleAdmin:
		return nil
	default:
		return errors.New("invalid team role")
	}
}
