package ws

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"jobportal_backend/internal/services/dto"
)

func (s *Server) handleGetCompanyProfile(c *Client, data json.RawMessage) (gin.H, error) {
	var payload profileTargetPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}
	if payload.UserID == "" {
		payload.UserID = c.UserID()
	}

	profile, err := s.svc.CompanyProfiles.Get(payload.UserID)
	if err != nil {
		return nil, err
	}
	return gin.H{"companyProfile": profile}, nil
}

func (s *Server) handleSaveCompanyProfile(c *Client, data json.RawMessage) (gin.H, error) {
	var req dto.SaveCompanyProfileRequest
	if err := s.bind(data, &req); err != nil {
		return nil, err
	}

	profile, err := s.svc.CompanyProfiles.Save(c.ctx, c.UserID(), &req)
	if err != nil {
		return nil, err
	}

	s.hub.EmitToRoom(userRoom(c.UserID()), "companyProfile:updated", profile)
	return gin.H{"companyProfile": profile}, nil
}
