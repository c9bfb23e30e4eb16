package services_test

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal_backend/internal/email"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

func newApplicationService(t *testing.T, db *gorm.DB) services.ApplicationService {
	t.Helper()
	return services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewNotificationRepository(db),
		newTestStorage(t),
		email.Noop{},
	)
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	employer := createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)
	candidate := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	job := createJob(t, db, employer.ID, "Frontend Engineer", models.JobTypeFullTime)

	result, err := svc.Apply(context.Background(), &dto.ApplyToJobRequest{JobID: job.ID, UserID: candidate.ID})
	require.NoError(t, err)

	assert.Equal(t, employer.ID, result.EmployerID)
	assert.Equal(t, "pending", result.Update.Application.Status)
	assert.Equal(t, "John Doe", result.Update.Application.Name)
	assert.Equal(t, "Frontend Engineer", result.Update.Application.Role)
	assert.Nil(t, result.Update.Application.Resume)
	assert.Equal(t, "New application: John Doe → Frontend Engineer", result.Update.Activity.Text)

	var stored models.Application
	require.NoError(t, db.First(&stored, "id = ?", result.ApplicationID).Error)
	assert.Equal(t, "pending", stored.Status)
	assert.Nil(t, stored.Resume)
}

func TestApplyTwiceFailsAlreadyApplied(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	employer := createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)
	candidate := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	job := createJob(t, db, employer.ID, "Frontend Engineer", models.JobTypeFullTime)

	req := &dto.ApplyToJobRequest{JobID: job.ID, UserID: candidate.ID}
	_, err := svc.Apply(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "You have already applied to this job", apperrors.ClientMessage(err))

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyUnknownJob(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	candidate := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)

	_, err := svc.Apply(context.Background(), &dto.ApplyToJobRequest{JobID: "missing", UserID: candidate.ID})
	require.Error(t, err)
	assert.Equal(t, "Job not found", apperrors.ClientMessage(err))
}

func TestApplyStoresResumeURL(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	employer := createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)
	candidate := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	job := createJob(t, db, employer.ID, "Frontend Engineer", models.JobTypeFullTime)

	result, err := svc.Apply(context.Background(), &dto.ApplyToJobRequest{
		JobID:        job.ID,
		UserID:       candidate.ID,
		ResumeBase64: base64.StdEncoding.EncodeToString([]byte("resume bytes")),
	})
	require.NoError(t, err)

	var stored models.Application
	require.NoError(t, db.First(&stored, "id = ?", result.ApplicationID).Error)
	require.NotNil(t, stored.Resume)
	assert.True(t, strings.Contains(*stored.Resume, "resumes/"+job.ID))
}

func TestUpdateStatusNonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	employer := createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)
	intruder := createUser(t, db, "Other Corp", "other@example.com", models.UserRoleCompany)
	candidate := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	job := createJob(t, db, employer.ID, "Frontend Engineer", models.JobTypeFullTime)

	result, err := svc.Apply(context.Background(), &dto.ApplyToJobRequest{JobID: job.ID, UserID: candidate.ID})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(intruder.ID, &dto.UpdateApplicationStatusRequest{
		ApplicationID: result.ApplicationID,
		Status:        models.ApplicationStatusAccepted,
	})
	require.Error(t, err)
	assert.Equal(t, "Not authorized", apperrors.ClientMessage(err))

	var stored models.Application
	require.NoError(t, db.First(&stored, "id = ?", result.ApplicationID).Error)
	assert.Equal(t, "pending", stored.Status)
}

func TestUpdateStatusAcceptedNotifiesCandidate(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	employer := createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)
	candidate := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	job := createJob(t, db, employer.ID, "Frontend Engineer", models.JobTypeFullTime)

	applied, err := svc.Apply(context.Background(), &dto.ApplyToJobRequest{JobID: job.ID, UserID: candidate.ID})
	require.NoError(t, err)

	result, err := svc.UpdateStatus(employer.ID, &dto.UpdateApplicationStatusRequest{
		ApplicationID: applied.ApplicationID,
		Status:        models.ApplicationStatusAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, result.Status)
	assert.Equal(t, candidate.ID, result.CandidateID)
	assert.Equal(t, employer.ID, result.EmployerID)
	assert.Equal(t, models.ApplicationStatusAccepted, result.Update.Application.Status)

	var stored models.Application
	require.NoError(t, db.First(&stored, "id = ?", applied.ApplicationID).Error)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)

	var notification models.Notification
	require.NoError(t, db.First(&notification, "user_id = ?", candidate.ID).Error)
	assert.Equal(t, "Your application for Frontend Engineer was accepted", notification.Message)
	assert.False(t, notification.Read)
}

func TestGetApplicantsScopedToEmployer(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	employer := createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)
	other := createUser(t, db, "Other Corp", "other@example.com", models.UserRoleCompany)
	candidate := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	mine := createJob(t, db, employer.ID, "Frontend Engineer", models.JobTypeFullTime)
	theirs := createJob(t, db, other.ID, "Backend Engineer", models.JobTypeFullTime)

	_, err := svc.Apply(context.Background(), &dto.ApplyToJobRequest{JobID: mine.ID, UserID: candidate.ID})
	require.NoError(t, err)
	_, err = svc.Apply(context.Background(), &dto.ApplyToJobRequest{JobID: theirs.ID, UserID: candidate.ID})
	require.NoError(t, err)

	applicants, err := svc.GetApplicants(employer.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "Frontend Engineer", applicants[0].Role)
	assert.Equal(t, "John Doe", applicants[0].Name)
}

func TestHasApplied(t *testing.T) {
	db := newTestDB(t)
	svc := newApplicationService(t, db)
	employer := createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)
	candidate := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	job := createJob(t, db, employer.ID, "Frontend Engineer", models.JobTypeFullTime)

	applied, err := svc.HasApplied(job.ID, candidate.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	_, err = svc.Apply(context.Background(), &dto.ApplyToJobRequest{JobID: job.ID, UserID: candidate.ID})
	require.NoError(t, err)

	applied, err = svc.HasApplied(job.ID, candidate.ID)
	require.NoError(t, err)
	assert.True(t, applied)
}
