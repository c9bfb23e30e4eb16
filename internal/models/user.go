package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations. Role decides which profile a user actually owns; the
	// schema does not enforce that.
	Profile        *Profile        `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	CompanyProfile *CompanyProfile `gorm:"foreignKey:UserID" json:"companyProfile,omitempty"`
}
