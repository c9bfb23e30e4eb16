package ws

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"jobportal_backend/internal/services/dto"
)

type profileTargetPayload struct {
	UserID string `json:"userId"`
}

func (s *Server) handleGetProfile(c *Client, data json.RawMessage) (gin.H, error) {
	var payload profileTargetPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}
	if payload.UserID == "" {
		payload.UserID = c.UserID()
	}

	profile, err := s.svc.Profiles.Get(payload.UserID)
	if err != nil {
		return nil, err
	}
	return gin.H{"profile": profile}, nil
}

type profileByIDPayload struct {
	UserID string `json:"userId" validate:"required"`
}

func (s *Server) handleGetProfileByID(c *Client, data json.RawMessage) (gin.H, error) {
	var payload profileByIDPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	profile, err := s.svc.Profiles.Get(payload.UserID)
	if err != nil {
		return nil, err
	}
	return gin.H{"profile": profile}, nil
}

func (s *Server) handleSaveProfile(c *Client, data json.RawMessage) (gin.H, error) {
	var req dto.SaveProfileRequest
	if err := s.bind(data, &req); err != nil {
		return nil, err
	}

	profile, err := s.svc.Profiles.Save(c.ctx, c.UserID(), &req)
	if err != nil {
		return nil, err
	}

	s.hub.EmitToRoom(userRoom(c.UserID()), "profile:updated", profile)
	return gin.H{"profile": profile}, nil
}

func (s *Server) handleAddEducation(c *Client, data json.RawMessage) (gin.H, error) {
	var input dto.EducationInput
	if err := s.bind(data, &input); err != nil {
		return nil, err
	}

	items, err := s.svc.Profiles.AddEducation(c.UserID(), &input)
	if err != nil {
		return nil, err
	}
	return gin.H{"education": items}, nil
}

type updateEducationPayload struct {
	ID string `json:"id" validate:"required"`
	dto.EducationInput
}

func (s *Server) handleUpdateEducation(c *Client, data json.RawMessage) (gin.H, error) {
	var payload updateEducationPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	items, err := s.svc.Profiles.UpdateEducation(c.UserID(), payload.ID, &payload.EducationInput)
	if err != nil {
		return nil, err
	}
	return gin.H{"education": items}, nil
}

func (s *Server) handleRemoveEducation(c *Client, data json.RawMessage) (gin.H, error) {
	var payload idPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	items, err := s.svc.Profiles.RemoveEducation(c.UserID(), payload.ID)
	if err != nil {
		return nil, err
	}
	return gin.H{"education": items}, nil
}

func (s *Server) handleAddExperience(c *Client, data json.RawMessage) (gin.H, error) {
	var input dto.ExperienceInput
	if err := s.bind(data, &input); err != nil {
		return nil, err
	}

	items, err := s.svc.Profiles.AddExperience(c.UserID(), &input)
	if err != nil {
		return nil, err
	}
	return gin.H{"experience": items}, nil
}

type updateExperiencePayload struct {
	ID string `json:"id" validate:"required"`
	dto.ExperienceInput
}

func (s *Server) handleUpdateExperience(c *Client, data json.RawMessage) (gin.H, error) {
	var payload updateExperiencePayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	items, err := s.svc.Profiles.UpdateExperience(c.UserID(), payload.ID, &payload.ExperienceInput)
	if err != nil {
		return nil, err
	}
	return gin.H{"experience": items}, nil
}

func (s *Server) handleRemoveExperience(c *Client, data json.RawMessage) (gin.H, error) {
	var payload idPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	items, err := s.svc.Profiles.RemoveExperience(c.UserID(), payload.ID)
	if err != nil {
		return nil, err
	}
	return gin.H{"experience": items}, nil
}
