package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	EmployerProfileID string    `gorm:"not null;index"`
	CreatedByUserID   string    `gorm:"not null;index"`
	Title             string    `gorm:"not null"`
	Description       string
	Location          string
	SalaryMin         *float64
	SalaryMax         *float64
	EmploymentType    string         // "full_time", "part_time", "contract"
	Skills            datatypes.JSON `gorm:"type:jsonb"`
	Status            JobStatus      `gorm:"type:varchar(20);default:'draft'"`
	PublishedAt       *time.Time
	ClosesAt          *time.Time

	// Relations
	EmployerProfile EmployerProfile `gorm:"foreignKey:EmployerProfileID"`
	Applications    []Application   `gorm:"foreignKey:JobID"`
}
