package services

import (
	"context"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"
)

type CompanyProfileService interface {
	Get(userID string) (*models.CompanyProfile, error)
	Save(ctx context.Context, userID string, req *dto.SaveCompanyProfileRequest) (*models.CompanyProfile, error)
}

type companyProfileService struct {
	profileRepo repositories.ProfileRepository
	store       storage.Storage
}

func NewCompanyProfileService(profileRepo repositories.ProfileRepository, store storage.Storage) CompanyProfileService {
	return &companyProfileService{profileRepo: profileRepo, store: store}
}

func (s *companyProfileService) Get(userID string) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.FindCompanyByUserIDWithUser(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *companyProfileService) Save(ctx context.Context, userID string, req *dto.SaveCompanyProfileRequest) (*models.CompanyProfile, error) {
	profile := &models.CompanyProfile{
		UserID:      userID,
		CompanyName: req.CompanyName,
		Description: req.Description,
		Location:    req.Location,
		Website:     req.Website,
		Industry:    req.Industry,
		Employees:   req.Employees,
		FoundedYear: req.FoundedYear,
	}

	if req.LogoBase64 != "" {
		url, err := storage.UploadBase64(ctx, s.store, "company-logos", req.LogoBase64)
		if err != nil {
			return nil, apperrors.ErrUpstream(err, "Logo upload failed")
		}
		profile.Logo = url
	} else if existing, err := s.profileRepo.FindCompanyByUserID(userID); err == nil {
		profile.Logo = existing.Logo
	}

	if err := s.profileRepo.UpsertCompany(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
