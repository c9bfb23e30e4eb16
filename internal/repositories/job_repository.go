package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobSearchCriteria is the conjunctive filter for the public job list.
// Zero-valued fields are omitted from the query, not defaulted.
type JobSearchCriteria struct {
	Search   string
	Location string
	Category string
	JobType  models.JobType
}

type JobRepository interface {
	Create(job *models.Job) error
	Update(job *models.Job) error
	Delete(id string) error
	FindByID(id string) (*models.Job, error)
	FindByEmployer(employerID string) ([]models.Job, error)
	Search(criteria JobSearchCriteria) ([]models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Search(criteria JobSearchCriteria) ([]models.Job, error) {
	query := r.db.Model(&models.Job{})

	// LOWER(...) LIKE keeps the case-insensitive match portable between
	// Postgres and the SQLite test database.
	if criteria.Search != "" {
		pattern := "%" + toLowerPattern(criteria.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if criteria.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+toLowerPattern(criteria.Location)+"%")
	}
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.JobType != "" {
		query = query.Where("job_type = ?", criteria.JobType)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}
