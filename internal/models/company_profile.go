package models

type CompanyProfile struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;not null" json:"userId"`
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Employees   string `json:"employees"`
	FoundedYear string `json:"foundedYear"`
	Logo        string `json:"logo"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
