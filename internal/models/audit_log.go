package models

import "gorm.io/datatypes"

type AuditAction string
type AuditCategory string

const (
	AuditActionProfileView     AuditAction = "profile_view"
	AuditActionPrivacyChange   AuditAction = "privacy_setting_change"
	AuditActionDataExport      AuditAction = "data_export"
	AuditActionTeamInvite      AuditAction = "team_member_invited"
	AuditActionTeamRemove      AuditAction = "team_member_removed"
	AuditActionPermissionGrant AuditAction = "permissions_updated"

	AuditCategoryProfile  AuditCategory = "profile"
	AuditCategoryPrivacy  AuditCategory = "privacy"
	AuditCategoryTeam     AuditCategory = "team"
	AuditCategorySecurity AuditCategory = "security"
)

// AuditLog - append-only журнал чувствительных действий.
// Записи не изменяются и не удаляются.
type AuditLog struct {
	BaseModel
	ActorID      string         `gorm:"not null;index"`
	TargetUserID string         `gorm:"index"`
	ActionType   AuditAction    `gorm:"type:varchar(40);not null;index"`
	Category     AuditCategory  `gorm:"type:varchar(20);not null;index"`
	Metadata     datatypes.JSON `gorm:"type:jsonb"`
}
