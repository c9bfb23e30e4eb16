package ws

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"jobportal_backend/internal/services/dto"
)

func (s *Server) handleApplyToJob(c *Client, data json.RawMessage) (gin.H, error) {
	var req dto.ApplyToJobRequest
	if err := decode(data, &req); err != nil {
		return nil, err
	}
	if req.UserID == "" {
		req.UserID = c.UserID()
	}
	if err := s.check(&req); err != nil {
		return nil, err
	}

	result, err := s.svc.Applications.Apply(c.ctx, &req)
	if err != nil {
		return nil, err
	}

	s.hub.EmitToRoom(userRoom(result.EmployerID), "employer:updateApplicants", result.Update)
	return gin.H{"applicationId": result.ApplicationID}, nil
}

func (s *Server) handleGetApplicants(c *Client, data json.RawMessage) (gin.H, error) {
	applicants, err := s.svc.Applications.GetApplicants(c.UserID())
	if err != nil {
		return nil, err
	}
	return gin.H{"applicants": applicants}, nil
}

type appliedCheckPayload struct {
	JobID  string `json:"jobId" validate:"required"`
	UserID string `json:"userId"`
}

func (s *Server) handleGetApplicantsForUser(c *Client, data json.RawMessage) (gin.H, error) {
	var payload appliedCheckPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}
	if payload.UserID == "" {
		payload.UserID = c.UserID()
	}

	applied, err := s.svc.Applications.HasApplied(payload.JobID, payload.UserID)
	if err != nil {
		return nil, err
	}
	return gin.H{"applied": applied}, nil
}

func (s *Server) handleUpdateApplicationStatus(c *Client, data json.RawMessage) (gin.H, error) {
	var req dto.UpdateApplicationStatusRequest
	if err := s.bind(data, &req); err != nil {
		return nil, err
	}

	result, err := s.svc.Applications.UpdateStatus(c.UserID(), &req)
	if err != nil {
		return nil, err
	}

	s.hub.EmitToRoom(userRoom(result.EmployerID), "employer:updateApplicants", result.Update)
	s.hub.EmitToRoom(userRoom(result.CandidateID), "application:statusUpdated", gin.H{
		"applicationId": result.ApplicationID,
		"status":        result.Status,
	})
	return gin.H{"applicationId": result.ApplicationID, "status": result.Status}, nil
}
