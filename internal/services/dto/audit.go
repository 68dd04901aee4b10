package dto

import (
	"encoding/json"
	"time"

	"jobboard_backend/internal/models"
)

// AuditTrailCriteria - выборка журнала для transparency-отчета.
type AuditTrailCriteria struct {
	Category models.AuditCategory `form:"category"`
	Action   models.AuditAction   `form:"action"`
	DateFrom time.Time            `form:"date_from" time_format:"2006-01-02"`
	DateTo   time.Time            `form:"date_to" time_format:"2006-01-02"`
	Page     int                  `form:"page,default=1" binding:"min=1"`
	PageSize int                  `form:"page_size,default=50" binding:"min=1,max=200"`
}

type AuditEntryResponse struct {
	ID         string               `json:"id"`
	ActorID    string               `json:"actor_id"`
	ActionType models.AuditAction   `json:"action_type"`
	Category   models.AuditCategory `json:"category"`
	Metadata   json.RawMessage      `json:"metadata,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

type AuditTrailResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
	Total   int64                `json:"total"`
}
