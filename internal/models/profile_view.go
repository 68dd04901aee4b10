package models

import "time"

// ProfileView - факт просмотра профиля кандидата.
// Дедупликация: одна запись на (candidate_id, viewer_id)
// в пределах 5-минутного окна от последнего просмотра.
type ProfileView struct {
	BaseModel
	CandidateID   string `gorm:"not null;index:idx_view_candidate_viewer"`
	ViewerID      string `gorm:"not null;index:idx_view_candidate_viewer"`
	ViewerType    string // "employer", "team_member", "candidate"
	ViewerEmail   string
	ViewerCompany string
	IPAddress     string
	UserAgent     string
	ViewedAt      time.Time `gorm:"not null;index"`
}
