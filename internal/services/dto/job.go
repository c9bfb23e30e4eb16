package dto

type CreateJobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	CompanyName string  `json:"companyname" validate:"required"`
	Salary      *string `json:"salary"`
	Category    *string `json:"category"`
	Location    *string `json:"location"`
	JobType     string  `json:"jobType"`
}

type UpdateJobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	CompanyName string  `json:"companyname" validate:"required"`
	Salary      *string `json:"salary"`
	Category    *string `json:"category"`
	Location    *string `json:"location"`
	JobType     string  `json:"jobType"`
}

// JobFilters mirror the public search form. Empty fields are omitted from
// the query entirely. JobType accepts human labels ("Full-time") or stored
// tokens ("FULL_TIME").
type JobFilters struct {
	Search   string `json:"search"`
	Location string `json:"location"`
	Category string `json:"category"`
	JobType  string `json:"jobType"`
}
