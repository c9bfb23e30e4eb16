package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists for this job and user")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	ExistsByJobAndUser(jobID, userID string) (bool, error)
	FindForEmployer(employerID string) ([]models.Application, error)
	UpdateStatus(id, status string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil && isUniqueViolation(err) {
		// The composite unique index closes the check-then-create window.
		return ErrApplicationExists
	}
	return err
}

// FindByID loads the application with its job and applicant, which the
// status-update flow needs for ownership checks and notifications.
func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("User").First(&application, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, ErrApplicationNotFound)
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ExistsByJobAndUser(jobID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}

// FindForEmployer returns every application targeting one of the employer's
// jobs, newest first, with job and applicant preloaded.
func (r *ApplicationRepositoryImpl) FindForEmployer(employerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("User").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id, status string) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
