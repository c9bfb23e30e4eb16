package dto

import "jobportal_backend/internal/models"

// UserSummary is the network directory projection: the user plus a few
// profile fields when a candidate profile exists.
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Headline string `json:"headline,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Location string `json:"location,omitempty"`
}

// ConnectionRequestResult tells the transport whom to notify after a new
// connection request.
type ConnectionRequestResult struct {
	Connection   *models.Connection
	Notification *models.Notification
	ReceiverID   string
}

// RespondResult tells the transport whom to notify after the receiver
// accepted or rejected a request. Only the requester gets a persisted
// notification; the receiver's pending one is retracted.
type RespondResult struct {
	ConnectionID          string
	Action                string
	RequesterID           string
	ReceiverID            string
	RequesterNotification *models.Notification
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
}
