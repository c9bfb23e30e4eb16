package dto

import "jobportal_backend/internal/models"

type SaveProfileRequest struct {
	Headline     string                  `json:"headline"`
	About        string                  `json:"about"`
	Location     string                  `json:"location"`
	Website      string                  `json:"website"`
	Skills       []string                `json:"skills"`
	Education    []models.EducationItem  `json:"education"`
	Experience   []models.ExperienceItem `json:"experience"`
	AvatarBase64 string                  `json:"avatarBase64"`
}

// EducationInput is a list item without an id; the service generates one.
type EducationInput struct {
	Institute string `json:"institute"`
	Degree    string `json:"degree"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

type ExperienceInput struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

type SaveCompanyProfileRequest struct {
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Employees   string `json:"employees"`
	FoundedYear string `json:"foundedYear"`
	LogoBase64  string `json:"logoBase64"`
}
