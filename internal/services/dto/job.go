package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Location       string   `json:"location"`
	SalaryMin      *float64 `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax      *float64 `json:"salary_max" binding:"omitempty,min=0"`
	EmploymentType string   `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract"`
	Skills         []string `json:"skills"`
	Publish        bool     `json:"publish"`
}

type UpdateJobRequest struct {
	Title          *string           `json:"title"`
	Description    *string           `json:"description"`
	Location       *string           `json:"location"`
	SalaryMin      *float64          `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax      *float64          `json:"salary_max" binding:"omitempty,min=0"`
	EmploymentType *string           `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract"`
	Skills         []string          `json:"skills"`
	Status         *models.JobStatus `json:"status" binding:"omitempty,oneof=draft active closed"`
}

type JobResponse struct {
	ID                string           `json:"id"`
	EmployerProfileID string           `json:"employer_profile_id"`
	CompanyName       string           `json:"company_name,omitempty"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Location          string           `json:"location,omitempty"`
	SalaryMin         *float64         `json:"salary_min,omitempty"`
	SalaryMax         *float64         `json:"salary_max,omitempty"`
	EmploymentType    string           `json:"employment_type,omitempty"`
	Skills            []string         `json:"skills"`
	Status            models.JobStatus `json:"status"`
	PublishedAt       *time.Time       `json:"published_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int64         `json:"total"`
}
