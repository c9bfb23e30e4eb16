package services

import (
	"context"
	"fmt"
	"time"

	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*dto.ApplyResult, error)
	GetApplicants(employerID string) ([]dto.ApplicantSummary, error)
	HasApplied(jobID, userID string) (bool, error)
	UpdateStatus(callerID string, req *dto.UpdateApplicationStatusRequest) (*dto.StatusUpdateResult, error)
}

type applicationService struct {
	applicationRepo  repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	store            storage.Storage
	mailer           email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	store storage.Storage,
	mailer email.Provider,
) ApplicationService {
	return &applicationService{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		store:            store,
		mailer:           mailer,
	}
}

func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*dto.ApplyResult, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	// Check-then-create; the unique index on (job_id, user_id) catches the
	// race between two concurrent applies.
	exists, err := s.applicationRepo.ExistsByJobAndUser(req.JobID, req.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied()
	}

	var resumeURL *string
	if req.ResumeBase64 != "" {
		url, err := storage.UploadBase64(ctx, s.store, "resumes/"+req.JobID, req.ResumeBase64)
		if err != nil {
			return nil, apperrors.ErrUpstream(err, "Resume upload failed")
		}
		resumeURL = &url
	}

	application := &models.Application{
		JobID:  req.JobID,
		UserID: req.UserID,
		Resume: resumeURL,
		Status: models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrAlreadyApplied()
		}
		return nil, apperrors.InternalError(err)
	}

	applicant, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplyResult{
		ApplicationID: application.ID,
		EmployerID:    job.EmployerID,
		Update: dto.ApplicantsUpdate{
			Application: summarize(application, applicant.Name, job.Title),
			Activity: dto.ActivityEntry{
				Text: fmt.Sprintf("New application: %s → %s", applicant.Name, job.Title),
				Time: time.Now().Format(time.RFC3339),
			},
		},
	}, nil
}

func (s *applicationService) GetApplicants(employerID string) ([]dto.ApplicantSummary, error) {
	applications, err := s.applicationRepo.FindForEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.ApplicantSummary, 0, len(applications))
	for i := range applications {
		a := &applications[i]
		var name, title string
		if a.User != nil {
			name = a.User.Name
		}
		if a.Job != nil {
			title = a.Job.Title
		}
		summaries = append(summaries, summarize(a, name, title))
	}
	return summaries, nil
}

func (s *applicationService) HasApplied(jobID, userID string) (bool, error) {
	applied, err := s.applicationRepo.ExistsByJobAndUser(jobID, userID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return applied, nil
}

func (s *applicationService) UpdateStatus(callerID string, req *dto.UpdateApplicationStatusRequest) (*dto.StatusUpdateResult, error) {
	application, err := s.applicationRepo.FindByID(req.ApplicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if application.Job == nil || application.Job.EmployerID != callerID {
		return nil, apperrors.NewForbiddenError("Not authorized")
	}

	if err := s.applicationRepo.UpdateStatus(application.ID, req.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = req.Status

	s.notifyCandidate(application)

	var name string
	if application.User != nil {
		name = application.User.Name
	}

	verb := "Updated"
	switch req.Status {
	case models.ApplicationStatusAccepted:
		verb = "Accepted"
	case models.ApplicationStatusRejected:
		verb = "Rejected"
	}

	return &dto.StatusUpdateResult{
		ApplicationID: application.ID,
		Status:        application.Status,
		EmployerID:    callerID,
		CandidateID:   application.UserID,
		Update: dto.ApplicantsUpdate{
			Application: summarize(application, name, application.Job.Title),
			Activity: dto.ActivityEntry{
				Text: fmt.Sprintf("%s: %s → %s", verb, name, application.Job.Title),
				Time: time.Now().Format(time.RFC3339),
			},
		},
	}, nil
}

// notifyCandidate persists the status-change notification and, when mail is
// configured, sends it out too. Neither failure blocks the status update.
func (s *applicationService) notifyCandidate(application *models.Application) {
	message := fmt.Sprintf("Your application for %s was %s", application.Job.Title, application.Status)

	notification := &models.Notification{
		UserID:  application.UserID,
		Message: message,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.Error("failed to create status notification", "applicationId", application.ID, "error", err)
	}

	if application.User != nil {
		if err := s.mailer.Send(application.User.Email, "Application update", message); err != nil {
			logger.Warn("failed to send status email", "to", application.User.Email, "error", err)
		}
	}
}

func summarize(a *models.Application, applicantName, jobTitle string) dto.ApplicantSummary {
	return dto.ApplicantSummary{
		ID:     a.ID,
		Name:   applicantName,
		Role:   jobTitle,
		Status: a.Status,
		Date:   a.CreatedAt,
		Resume: a.Resume,
	}
}
