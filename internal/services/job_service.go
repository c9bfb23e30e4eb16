package services

import (
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type JobService interface {
	Create(employerID string, req *dto.CreateJobRequest) (*models.Job, error)
	Update(employerID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(employerID, jobID string) error
	ListMine(employerID string, role models.UserRole) ([]models.Job, error)
	Search(filters *dto.JobFilters) ([]models.Job, error)
	GetByID(jobID string) (*models.Job, error)
}

type jobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) Create(employerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		CompanyName: req.CompanyName,
		Salary:      req.Salary,
		Category:    req.Category,
		Location:    req.Location,
		JobType:     jobTypeOrDefault(req.JobType),
		EmployerID:  employerID,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) Update(employerID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.findOwned(employerID, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.CompanyName = req.CompanyName
	job.Salary = req.Salary
	job.Category = req.Category
	job.Location = req.Location
	job.JobType = jobTypeOrDefault(req.JobType)

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) Delete(employerID, jobID string) error {
	if _, err := s.findOwned(employerID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *jobService) ListMine(employerID string, role models.UserRole) ([]models.Job, error) {
	if role != models.UserRoleCompany {
		return nil, apperrors.NewForbiddenError("Not authorized")
	}
	jobs, err := s.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) Search(filters *dto.JobFilters) ([]models.Job, error) {
	criteria := repositories.JobSearchCriteria{}
	if filters != nil {
		criteria.Search = filters.Search
		criteria.Location = filters.Location
		criteria.Category = filters.Category
		if filters.JobType != "" {
			criteria.JobType = models.JobTypeFromLabel(filters.JobType)
		}
	}

	jobs, err := s.jobRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) GetByID(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) findOwned(employerID, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.NewForbiddenError("Not authorized")
	}
	return job, nil
}

func jobTypeOrDefault(label string) models.JobType {
	if label == "" {
		return models.JobTypeFullTime
	}
	return models.JobTypeFromLabel(label)
}
