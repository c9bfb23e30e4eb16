package models

type UserRole string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleCompany   UserRole = "company"
)

// JobType is the stored enum token. Clients send human labels ("Full-time");
// JobTypeFromLabel translates them before querying.
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeRemote     JobType = "REMOTE"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

var jobTypeLabels = map[string]JobType{
	"Full-time":  JobTypeFullTime,
	"Part-time":  JobTypePartTime,
	"Remote":     JobTypeRemote,
	"Contract":   JobTypeContract,
	"Internship": JobTypeInternship,
}

// JobTypeFromLabel maps a frontend label to the stored token. Unknown values
// pass through unchanged so already-translated tokens keep working.
func JobTypeFromLabel(label string) JobType {
	if t, ok := jobTypeLabels[label]; ok {
		return t
	}
	return JobType(label)
}

// Application status is free-form on the wire; these are the values the
// portal itself writes.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	// Rejected connections are deleted rather than stored; there is no
	// rejected status on purpose.
)

const (
	ConnectionActionAccepted = "accepted"
	ConnectionActionRejected = "rejected"
)
