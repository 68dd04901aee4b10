package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"not null"` // "profile_view", "team_invitation", "application_status"
	Title   string `gorm:"not null"`
	Message string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"viewerType": "...", "viewerCompany": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
