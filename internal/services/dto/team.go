package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type InviteTeamMemberRequest struct {
	Email       string                `json:"email" binding:"required,email"`
	Name        string                `json:"name"`
	Role        models.TeamRole       `json:"role" binding:"required,oneof=hr_manager recruiter interviewer admin"`
	Permissions *models.PermissionSet `json:"permissions"` // nil = дефолт по роли
}

type AcceptInvitationRequest struct {
	Token    string `json:"token" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateTeamMemberRequest struct {
	Role        *models.TeamRole      `json:"role" binding:"omitempty,oneof=hr_manager recruiter interviewer admin"`
	Permissions *models.PermissionSet `json:"permissions"`
}

type TeamMemberResponse struct {
	ID               string                  `json:"id"`
	Email            string                  `json:"email"`
	Name             string                  `json:"name"`
	Role             models.TeamRole         `json:"role"`
	Permissions      models.PermissionSet    `json:"permissions"`
	InvitationStatus models.InvitationStatus `json:"invitation_status"`
	IsActive         bool                    `json:"is_active"`
	AcceptedAt       *time.Time              `json:"accepted_at,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
}

type TeamListResponse struct {
	Members []TeamMemberResponse `json:"members"`
	Total   int64                `json:"total"`
}
