package models

import "time"

// TeamMember - участник команды компании.
// Жизненный цикл: создается как pending с токеном приглашения (TTL 7 дней),
// после принятия привязывается к User и становится accepted.
// Деактивация через is_active=false, запись не удаляется.
type TeamMember struct {
	BaseModel
	EmployerProfileID string   `gorm:"not null;index"`
	UserID            *string  `gorm:"index"` // nil пока приглашение не принято
	Email             string   `gorm:"not null;index"`
	Name              string
	Role              TeamRole         `gorm:"type:varchar(20);not null"`
	Permissions       PermissionSet    `gorm:"type:jsonb"`
	InvitationStatus  InvitationStatus `gorm:"type:varchar(20);default:'pending'"`
	InvitationToken   string           `gorm:"index"` // очищается после принятия
	InvitationExpires *time.Time
	IsActive          bool `gorm:"default:true"`
	AcceptedAt        *time.Time

	// Relations
	EmployerProfile EmployerProfile `gorm:"foreignKey:EmployerProfileID"`
}

// InvitationValid - токен еще можно использовать.
func (m *TeamMember) InvitationValid(now time.Time) bool {
	if m.InvitationStatus != InvitationStatusPending || m.InvitationToken == "" {
		return false
	}
	return m.InvitationExpires != nil && m.InvitationExpires.After(now)
}
