package models

// Application links a candidate to a job. The composite unique index backs
// up the handler-level existence check for at most one application per
// (job, user) pair.
type Application struct {
	BaseModel
	JobID  string  `gorm:"not null;index;uniqueIndex:idx_applications_job_user" json:"jobId"`
	UserID string  `gorm:"not null;index;uniqueIndex:idx_applications_job_user" json:"userId"`
	Resume *string `json:"resume"`
	Status string  `gorm:"type:varchar(30);default:'pending'" json:"status"`

	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
