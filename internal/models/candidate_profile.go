package models

import "gorm.io/datatypes"

type CandidateProfile struct {
	BaseModel
	UserID         string `gorm:"not null;uniqueIndex"`
	Headline       string
	Bio            string
	Phone          string
	Skills         datatypes.JSON `gorm:"type:jsonb"` // ["go", "sql", ...]
	Location       string
	CurrentCompany string
	CurrentTitle   string
	YearsOfExp     int
	ExpectedSalary *float64
	References     datatypes.JSON `gorm:"type:jsonb"` // [{"name": "...", "contact": "..."}]
	ViewsCount     int64          `gorm:"default:0"`

	// Relations
	User User `gorm:"foreignKey:UserID"`
}
