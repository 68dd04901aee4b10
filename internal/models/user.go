package models

import "time"

type User struct {
	BaseModel
	Email             string     `gorm:"uniqueIndex;not null"`
	PasswordHash      string     `gorm:"not null"`
	Name              string     `gorm:"not null"`
	Role              UserRole   `gorm:"type:varchar(20);not null"`
	Status            UserStatus `gorm:"type:varchar(20);default:'pending'"`
	IsVerified        bool       `gorm:"default:false"`
	VerificationToken string
	ResetToken        string
	ResetTokenExp     *time.Time

	// Relations: профиль ровно один, по роли
	CandidateProfile *CandidateProfile `gorm:"foreignKey:UserID"`
	EmployerProfile  *EmployerProfile  `gorm:"foreignKey:UserID"`
	Subscription     *Subscription     `gorm:"foreignKey:UserID"`
}
