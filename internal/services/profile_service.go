package services

import (
	"context"

	"github.com/google/uuid"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"
)

type ProfileService interface {
	Get(userID string) (*models.Profile, error)
	Save(ctx context.Context, userID string, req *dto.SaveProfileRequest) (*models.Profile, error)

	AddEducation(userID string, input *dto.EducationInput) ([]models.EducationItem, error)
	UpdateEducation(userID, itemID string, changes *dto.EducationInput) ([]models.EducationItem, error)
	RemoveEducation(userID, itemID string) ([]models.EducationItem, error)

	AddExperience(userID string, input *dto.ExperienceInput) ([]models.ExperienceItem, error)
	UpdateExperience(userID, itemID string, changes *dto.ExperienceInput) ([]models.ExperienceItem, error)
	RemoveExperience(userID, itemID string) ([]models.ExperienceItem, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	store       storage.Storage
}

func NewProfileService(profileRepo repositories.ProfileRepository, store storage.Storage) ProfileService {
	return &profileService{profileRepo: profileRepo, store: store}
}

func (s *profileService) Get(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserIDWithUser(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Save upserts the whole profile. The list fields are written as sent: this
// is a full overwrite, and the last writer wins across sessions.
func (s *profileService) Save(ctx context.Context, userID string, req *dto.SaveProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:   userID,
		Headline: req.Headline,
		About:    req.About,
		Location: req.Location,
		Website:  req.Website,
	}
	profile.SetSkills(req.Skills)
	profile.SetEducation(req.Education)
	profile.SetExperience(req.Experience)

	if req.AvatarBase64 != "" {
		url, err := storage.UploadBase64(ctx, s.store, "profile-avatars", req.AvatarBase64)
		if err != nil {
			return nil, apperrors.ErrUpstream(err, "Avatar upload failed")
		}
		profile.Avatar = url
	} else if existing, err := s.profileRepo.FindByUserID(userID); err == nil {
		// No new avatar: keep the stored one.
		profile.Avatar = existing.Avatar
	}

	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) AddEducation(userID string, input *dto.EducationInput) ([]models.EducationItem, error) {
	profile, err := s.findProfile(userID)
	if err != nil {
		return nil, err
	}

	items := append(profile.GetEducation(), models.EducationItem{
		ID:        uuid.NewString(),
		Institute: input.Institute,
		Degree:    input.Degree,
		StartYear: input.StartYear,
		EndYear:   input.EndYear,
	})
	return s.saveEducation(profile, items)
}

func (s *profileService) UpdateEducation(userID, itemID string, changes *dto.EducationInput) ([]models.EducationItem, error) {
	profile, err := s.findProfile(userID)
	if err != nil {
		return nil, err
	}

	items := profile.GetEducation()
	for i := range items {
		if items[i].ID == itemID {
			items[i].Institute = changes.Institute
			items[i].Degree = changes.Degree
			items[i].StartYear = changes.StartYear
			items[i].EndYear = changes.EndYear
		}
	}
	return s.saveEducation(profile, items)
}

func (s *profileService) RemoveEducation(userID, itemID string) ([]models.EducationItem, error) {
	profile, err := s.findProfile(userID)
	if err != nil {
		return nil, err
	}

	items := profile.GetEducation()
	kept := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	return s.saveEducation(profile, kept)
}

func (s *profileService) AddExperience(userID string, input *dto.ExperienceInput) ([]models.ExperienceItem, error) {
	profile, err := s.findProfile(userID)
	if err != nil {
		return nil, err
	}

	items := append(profile.GetExperience(), models.ExperienceItem{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Company:   input.Company,
		StartYear: input.StartYear,
		EndYear:   input.EndYear,
	})
	return s.saveExperience(profile, items)
}

func (s *profileService) UpdateExperience(userID, itemID string, changes *dto.ExperienceInput) ([]models.ExperienceItem, error) {
	profile, err := s.findProfile(userID)
	if err != nil {
		return nil, err
	}

	items := profile.GetExperience()
	for i := range items {
		if items[i].ID == itemID {
			items[i].Title = changes.Title
			items[i].Company = changes.Company
			items[i].StartYear = changes.StartYear
			items[i].EndYear = changes.EndYear
		}
	}
	return s.saveExperience(profile, items)
}

func (s *profileService) RemoveExperience(userID, itemID string) ([]models.ExperienceItem, error) {
	profile, err := s.findProfile(userID)
	if err != nil {
		return nil, err
	}

	items := profile.GetExperience()
	kept := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	return s.saveExperience(profile, kept)
}

func (s *profileService) findProfile(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) saveEducation(profile *models.Profile, items []models.EducationItem) ([]models.EducationItem, error) {
	profile.SetEducation(items)
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *profileService) saveExperience(profile *models.Profile, items []models.ExperienceItem) ([]models.ExperienceItem, error) {
	profile.SetExperience(items)
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}
