package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// EducationItem is one entry of the profile's education list. Items live
// inside a JSON column and carry their own generated id so single entries
// can be updated or removed.
type EducationItem struct {
	ID        string `json:"id"`
	Institute string `json:"institute"`
	Degree    string `json:"degree"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

// ExperienceItem is one entry of the profile's experience list.
type ExperienceItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

// Profile is the candidate-side profile. Skills, Education and Experience
// are stored as JSON arrays and mutated whole; concurrent edits from two
// sessions of the same user are last-write-wins.
type Profile struct {
	BaseModel
	UserID     string         `gorm:"uniqueIndex;not null" json:"userId"`
	Headline   string         `json:"headline"`
	About      string         `json:"about"`
	Location   string         `json:"location"`
	Website    string         `json:"website"`
	Avatar     string         `json:"avatar"`
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Education  datatypes.JSON `gorm:"type:jsonb" json:"education"`
	Experience datatypes.JSON `gorm:"type:jsonb" json:"experience"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

func (p *Profile) SetSkills(skills []string) {
	if skills == nil {
		skills = []string{}
	}
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

func (p *Profile) GetEducation() []EducationItem {
	var items []EducationItem
	if len(p.Education) > 0 {
		_ = json.Unmarshal(p.Education, &items)
	}
	return items
}

func (p *Profile) SetEducation(items []EducationItem) {
	if items == nil {
		items = []EducationItem{}
	}
	data, _ := json.Marshal(items)
	p.Education = datatypes.JSON(data)
}

func (p *Profile) GetExperience() []ExperienceItem {
	var items []ExperienceItem
	if len(p.Experience) > 0 {
		_ = json.Unmarshal(p.Experience, &items)
	}
	return items
}

func (p *Profile) SetExperience(items []ExperienceItem) {
	if items == nil {
		items = []ExperienceItem{}
	}
	data, _ := json.Marshal(items)
	p.Experience = datatypes.JSON(data)
}
