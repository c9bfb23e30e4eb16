package ws

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

type connectionRequestPayload struct {
	ReceiverID string `json:"receiverId" validate:"required"`
}

func (s *Server) handleSendConnectionRequest(c *Client, data json.RawMessage) (gin.H, error) {
	var payload connectionRequestPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	result, err := s.svc.Network.SendConnectionRequest(c.UserID(), payload.ReceiverID)
	if err != nil {
		return nil, err
	}

	// Only the receiver hears about the new request.
	s.hub.EmitToRoom(userRoom(result.ReceiverID), "notification:new", result.Notification)
	return gin.H{"connection": result.Connection}, nil
}

type respondConnectionPayload struct {
	ConnectionID string `json:"connectionId" validate:"required"`
	Action       string `json:"action" validate:"required"`
}

func (s *Server) handleRespondConnectionRequest(c *Client, data json.RawMessage) (gin.H, error) {
	var payload respondConnectionPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	result, err := s.svc.Network.RespondConnectionRequest(c.UserID(), payload.ConnectionID, payload.Action)
	if err != nil {
		return nil, err
	}

	// The receiver's pending-request notification is retracted immediately;
	// the requester is the only one to get a persisted outcome.
	s.hub.EmitToRoom(userRoom(result.ReceiverID), "notification:removedConnection", gin.H{
		"connectionId": result.ConnectionID,
	})
	s.hub.EmitToRoom(userRoom(result.RequesterID), "notification:new", result.RequesterNotification)

	return gin.H{"connectionId": result.ConnectionID, "action": result.Action}, nil
}

func (s *Server) handleGetNotifications(c *Client, data json.RawMessage) (gin.H, error) {
	res, err := s.svc.Notifications.List(c.UserID())
	if err != nil {
		return nil, err
	}
	return gin.H{"notifications": res.Notifications, "unreadCount": res.UnreadCount}, nil
}

func (s *Server) handleMarkNotificationRead(c *Client, data json.RawMessage) (gin.H, error) {
	var payload idPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	if err := s.svc.Notifications.MarkRead(c.UserID(), payload.ID); err != nil {
		return nil, err
	}

	// Own-room echo keeps other tabs of the same user in sync.
	s.hub.EmitToRoom(userRoom(c.UserID()), "notification:read", gin.H{"id": payload.ID})
	return gin.H{"id": payload.ID}, nil
}

func (s *Server) handleMarkAllNotificationsRead(c *Client, data json.RawMessage) (gin.H, error) {
	if err := s.svc.Notifications.MarkAllRead(c.UserID()); err != nil {
		return nil, err
	}

	s.hub.EmitToRoom(userRoom(c.UserID()), "notification:read", gin.H{"all": true})
	return gin.H{}, nil
}

func (s *Server) handleDeleteNotification(c *Client, data json.RawMessage) (gin.H, error) {
	var payload idPayload
	if err := s.bind(data, &payload); err != nil {
		return nil, err
	}

	if err := s.svc.Notifications.Delete(c.UserID(), payload.ID); err != nil {
		return nil, err
	}

	s.hub.EmitToRoom(userRoom(c.UserID()), "notification:removed", gin.H{"id": payload.ID})
	return gin.H{}, nil
}

func (s *Server) handleGetAllUsers(c *Client, data json.RawMessage) (gin.H, error) {
	users, err := s.svc.Network.GetAllUsers()
	if err != nil {
		return nil, err
	}
	return gin.H{"users": users}, nil
}
