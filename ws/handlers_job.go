package ws

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"jobportal_backend/internal/services/dto"
)

type idPayload struct {
	ID string `json:"id" validate:"required"`
}

func (s *Server) handleCreateJob(c *Client, data json.RawMessage) (gin.H, error) {
	var req dto.CreateJobRequest
	if err := s.bind(data, &req); err != nil {
		return nil, err
	}

	job, err := s.svc.Jobs.Create(c.UserID(), &req)
	if err != nil {
		return nil, err
	}

	s.hub.EmitToRoom(TopicJobs, "job:created", job)
	return gin.H{"job": job}, nil
}

type updateJobPayload struct {
	ID string `json:"id" validate:"required"`
	dto.UpdateJobRequest
}

func (s *Server) handleUpdateJob(c *Client, data json.RawMessage) (gin.H, error) {
	var payload updateJobPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	job, err := s.svc.Jobs.Update(c.UserID(), payload.ID, &payload.UpdateJobRequest)
	if err != nil {
		return nil, err
	}

	s.hub.EmitToRoom(TopicJobs, "job:updated", job)
	return gin.H{"job": job}, nil
}

func (s *Server) handleDeleteJob(c *Client, data json.RawMessage) (gin.H, error) {
	var payload idPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	if err := s.svc.Jobs.Delete(c.UserID(), payload.ID); err != nil {
		return nil, err
	}

	s.hub.EmitToRoom(TopicJobs, "job:deleted", gin.H{"jobId": payload.ID})
	return gin.H{"id": payload.ID}, nil
}

func (s *Server) handleGetMyJobs(c *Client, data json.RawMessage) (gin.H, error) {
	jobs, err := s.svc.Jobs.ListMine(c.UserID(), c.Role())
	if err != nil {
		return nil, err
	}
	return gin.H{"jobs": jobs}, nil
}

func (s *Server) handleGetJobs(c *Client, data json.RawMessage) (gin.H, error) {
	var filters dto.JobFilters
	if err := s.bind(data, &filters); err != nil {
		return nil, err
	}

	jobs, err := s.svc.Jobs.Search(&filters)
	if err != nil {
		return nil, err
	}
	return gin.H{"jobs": jobs}, nil
}

func (s *Server) handleGetJobByID(c *Client, data json.RawMessage) (gin.H, error) {
	var payload idPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	job, err := s.svc.Jobs.GetByID(payload.ID)
	if err != nil {
		return nil, err
	}
	return gin.H{"job": job}, nil
}
