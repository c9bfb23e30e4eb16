package dto

import "time"

type ApplyToJobRequest struct {
	JobID        string `json:"jobId" validate:"required"`
	UserID       string `json:"userId" validate:"required"`
	ResumeBase64 string `json:"resumeBase64"`
}

type UpdateApplicationStatusRequest struct {
	ApplicationID string `json:"applicationId" validate:"required"`
	Status        string `json:"status" validate:"required"`
}

// ApplicantSummary is the employer-facing projection of an application:
// applicant name, the job title as "role", status and resume link.
type ApplicantSummary struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
	Resume *string   `json:"resume"`
}

// ActivityEntry is the one-line feed item shown on the employer dashboard.
type ActivityEntry struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

// ApplicantsUpdate is the payload of the employer:updateApplicants event.
type ApplicantsUpdate struct {
	Application ApplicantSummary `json:"application"`
	Activity    ActivityEntry    `json:"activity"`
}

// ApplyResult carries everything the transport needs after a successful
// application: the ack payload and the employer room to notify.
type ApplyResult struct {
	ApplicationID string
	EmployerID    string
	Update        ApplicantsUpdate
}

// StatusUpdateResult carries the broadcast targets after a status change.
type StatusUpdateResult struct {
	ApplicationID string
	Status        string
	EmployerID    string
	CandidateID   string
	Update        ApplicantsUpdate
}
