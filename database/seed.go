package database

import (
	"fmt"

	"gorm.io/gorm"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
)

// SeedDemoData populates an empty database with a demo company, candidate,
// job and application for local development. A non-empty users table makes
// this a no-op.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	company := &models.User{
		Name:         "Tech Corp",
		Email:        "company@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleCompany,
	}
	candidate := &models.User{
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleCandidate,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		if err := tx.Create(candidate).Error; err != nil {
			return err
		}

		salary := "50000"
		job := &models.Job{
			Title:       "Frontend Engineer",
			Description: "Build modern UI.",
			CompanyName: "Tech Corp",
			Salary:      &salary,
			JobType:     models.JobTypeFullTime,
			EmployerID:  company.ID,
		}
		if err := tx.Create(job).Error; err != nil {
			return err
		}

		resume := "https://res.cloudinary.com/demo/sample.pdf"
		application := &models.Application{
			JobID:  job.ID,
			UserID: candidate.ID,
			Resume: &resume,
			Status: models.ApplicationStatusPending,
		}
		if err := tx.Create(application).Error; err != nil {
			return err
		}

		logger.Info("Demo data seeded", "company", company.Email, "candidate", candidate.Email)
		return nil
	})
}
