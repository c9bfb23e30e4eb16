package models

type Job struct {
	BaseModel
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"not null" json:"description"`
	CompanyName string  `gorm:"not null" json:"companyName"`
	Salary      *string `json:"salary"`
	Category    *string `json:"category"`
	Location    *string `json:"location"`
	JobType     JobType `gorm:"type:varchar(20);default:'FULL_TIME'" json:"jobType"`
	EmployerID  string  `gorm:"not null;index" json:"employerId"`

	Employer     *User         `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}
