package ws

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type authenticatePayload struct {
	Token string `json:"token" validate:"required"`
}

// handleAuthenticate verifies the session token, attaches {userId, role} to
// the connection and joins the user's room. Tokens from older builds may
// lack the role claim; it is then looked up from storage.
func (s *Server) handleAuthenticate(c *Client, data json.RawMessage) (gin.H, error) {
	var payload authenticatePayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	claims, err := auth.ParseToken(payload.Token)
	if err != nil {
		if apperrors.Is(err, auth.ErrMissingUserID) {
			return nil, apperrors.NewUnauthorizedError("Token missing userId")
		}
		return nil, apperrors.NewUnauthorizedError("Invalid token")
	}

	role := models.UserRole(claims.Role)
	if role == "" {
		user, err := s.svc.Users.FindByID(claims.UserID)
		if err != nil {
			return nil, apperrors.NewUnauthorizedError("Invalid token")
		}
		role = user.Role
	}

	c.setSession(claims.UserID, role)
	s.hub.JoinRoom(c, userRoom(claims.UserID))

	return gin.H{"userId": claims.UserID, "role": string(role)}, nil
}

func (s *Server) handleRegister(c *Client, data json.RawMessage) (gin.H, error) {
	var req dto.RegisterRequest
	if err := s.bind(data, &req); err != nil {
		return nil, err
	}

	res, err := s.svc.Auth.Register(&req)
	if err != nil {
		return nil, err
	}
	return gin.H{"token": res.Token, "user": res.User}, nil
}

func (s *Server) handleLogin(c *Client, data json.RawMessage) (gin.H, error) {
	var req dto.LoginRequest
	if err := s.bind(data, &req); err != nil {
		return nil, err
	}

	res, err := s.svc.Auth.Login(&req)
	if err != nil {
		return nil, err
	}
	return gin.H{"token": res.Token, "user": res.User}, nil
}

// handleLogout acknowledges and nothing more. The token stays valid until it
// expires; there is no server-side revocation.
func (s *Server) handleLogout(c *Client, data json.RawMessage) (gin.H, error) {
	return gin.H{}, nil
}
