package dto

import "time"

// Reference - рекомендация в профиле кандидата.
type Reference struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Contact      string `json:"contact"`
}

// CandidateProfileResponse - исходящее представление профиля кандидата.
// Именно этот объект проходит через privacy-фильтр перед отдачей.
type CandidateProfileResponse struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	Name           string      `json:"name"`
	Headline       string      `json:"headline,omitempty"`
	Bio            string      `json:"bio,omitempty"`
	Email          string      `json:"email,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	Skills         []string    `json:"skills"`
	Location       string      `json:"location,omitempty"`
	CurrentCompany string      `json:"current_company,omitempty"`
	CurrentTitle   string      `json:"current_title,omitempty"`
	YearsOfExp     int         `json:"years_of_experience"`
	ExpectedSalary *float64    `json:"expected_salary,omitempty"`
	References     []Reference `json:"references,omitempty"`
	ViewsCount     int64       `json:"views_count,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// UpdateCandidateProfileRequest - правка собственного профиля.
type UpdateCandidateProfileRequest struct {
	Headline       *string     `json:"headline"`
	Bio            *string     `json:"bio"`
	Phone          *string     `json:"phone"`
	Skills         []string    `json:"skills"`
	Location       *string     `json:"location"`
	CurrentCompany *string     `json:"current_company"`
	CurrentTitle   *string     `json:"current_title"`
	YearsOfExp     *int        `json:"years_of_experience" binding:"omitempty,min=0,max=60"`
	ExpectedSalary *float64    `json:"expected_salary" binding:"omitempty,min=0"`
	References     []Reference `json:"references"`
}

// CandidateSearchCriteria - параметры поиска кандидатов.
type CandidateSearchCriteria struct {
	Query    string `form:"q"`
	Location string `form:"location"`
	Skill    string `form:"skill"`
	MinYears *int   `form:"min_years"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

// CandidateSearchResponse - страница результатов поиска.
type CandidateSearchResponse struct {
	Candidates []CandidateProfileResponse `json:"candidates"`
	Total      int64                      `json:"total"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"page_size"`
}
