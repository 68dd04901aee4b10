package models

import "time"

type Application struct {
	BaseModel
	JobID             string            `gorm:"not null;index:idx_app_job_candidate,unique"`
	CandidateID       string            `gorm:"not null;index:idx_app_job_candidate,unique"` // user_id кандидата
	EmployerProfileID string            `gorm:"not null;index"`                              // денормализовано для проверок прав
	CoverLetter       string
	Status            ApplicationStatus `gorm:"type:varchar(20);default:'pending'"`
	ReviewedAt        *time.Time
	ReviewedByUserID  *string

	// Relations
	Job Job `gorm:"foreignKey:JobID"`
}
