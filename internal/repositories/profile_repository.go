package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrCompanyProfileNotFound = errors.New("company profile not found")
)

type ProfileRepository interface {
	// Candidate profile operations
	FindByUserID(userID string) (*models.Profile, error)
	FindByUserIDWithUser(userID string) (*models.Profile, error)
	Upsert(profile *models.Profile) error
	Update(profile *models.Profile) error

	// Company profile operations
	FindCompanyByUserID(userID string) (*models.CompanyProfile, error)
	FindCompanyByUserIDWithUser(userID string) (*models.CompanyProfile, error)
	UpsertCompany(profile *models.CompanyProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, notFound(err, ErrProfileNotFound)
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserIDWithUser(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, notFound(err, ErrProfileNotFound)
	}
	return &profile, nil
}

// Upsert creates the profile on first save and overwrites it afterwards.
// The profile is keyed by user id, one per user.
func (r *ProfileRepositoryImpl) Upsert(profile *models.Profile) error {
	var existing models.Profile
	err := r.db.First(&existing, "user_id = ?", profile.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) FindCompanyByUserID(userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, notFound(err, ErrCompanyProfileNotFound)
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCompanyByUserIDWithUser(userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, notFound(err, ErrCompanyProfileNotFound)
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpsertCompany(profile *models.CompanyProfile) error {
	var existing models.CompanyProfile
	err := r.db.First(&existing, "user_id = ?", profile.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}
