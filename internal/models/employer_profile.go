package models

type EmployerProfile struct {
	BaseModel
	UserID         string `gorm:"not null;uniqueIndex"`
	CompanyName    string `gorm:"not null"`
	ContactPerson  string
	Phone          string
	Website        string
	City           string
	Industry       string
	Description    string
	IsVerified     bool          `gorm:"default:false"`
	IsPrimaryOwner bool          `gorm:"default:true"` // ровно один primary owner на компанию
	Permissions    PermissionSet `gorm:"type:jsonb"`

	// Relations
	TeamMembers []TeamMember `gorm:"foreignKey:EmployerProfileID"`
	Jobs        []Job        `gorm:"foreignKey:EmployerProfileID"`
}
