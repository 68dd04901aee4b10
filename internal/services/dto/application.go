package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type ApplyRequest struct {
	JobID       string `json:"job_id" binding:"required,uuid"`
	CoverLetter string `json:"cover_letter"`
}

type ReviewApplicationRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=reviewed shortlisted rejected hired"`
}

// ApplicationResponse - отклик глазами компании. Поле Candidate
// заполняется полным профилем только после subscription-гейта
// и всегда проходит через privacy-фильтр.
type ApplicationResponse struct {
	ID          string                    `json:"id"`
	JobID       string                    `json:"job_id"`
	JobTitle    string                    `json:"job_title,omitempty"`
	CandidateID string                    `json:"candidate_id"`
	CoverLetter string                    `json:"cover_letter,omitempty"`
	Status      models.ApplicationStatus  `json:"status"`
	Candidate   *CandidateProfileResponse `json:"candidate,omitempty"`
	ReviewedAt  *time.Time                `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int64                 `json:"total"`
}
