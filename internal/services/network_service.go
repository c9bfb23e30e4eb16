package services

import (
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

// Message texts are part of the wire contract: the frontend renders them
// verbatim.
const (
	msgConnectionRequest  = "📨 You received a new connection request!"
	msgConnectionAccepted = "✅ Your connection request was accepted!"
	msgConnectionRejected = "❌ Your connection request was rejected!"
)

type NetworkService interface {
	GetAllUsers() ([]dto.UserSummary, error)
	SendConnectionRequest(requesterID, receiverID string) (*dto.ConnectionRequestResult, error)
	RespondConnectionRequest(callerID, connectionID, action string) (*dto.RespondResult, error)
}

type networkService struct {
	connectionRepo   repositories.ConnectionRepository
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	mailer           email.Provider
}

func NewNetworkService(
	connectionRepo repositories.ConnectionRepository,
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	mailer email.Provider,
) NetworkService {
	return &networkService{
		connectionRepo:   connectionRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
	}
}

func (s *networkService) GetAllUsers() ([]dto.UserSummary, error) {
	users, err := s.userRepo.FindCandidates()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		u := &users[i]
		summary := dto.UserSummary{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		}
		if u.Profile != nil {
			summary.Headline = u.Profile.Headline
			summary.Avatar = u.Profile.Avatar
			summary.Location = u.Profile.Location
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *networkService) SendConnectionRequest(requesterID, receiverID string) (*dto.ConnectionRequestResult, error) {
	if requesterID == receiverID {
		return nil, apperrors.ErrSelfConnection()
	}

	receiver, err := s.userRepo.FindByID(receiverID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.connectionRepo.ExistsBetween(requesterID, receiverID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrConnectionExists()
	}

	connection := &models.Connection{
		RequesterID: requesterID,
		ReceiverID:  receiverID,
		Status:      models.ConnectionStatusPending,
	}
	if err := s.connectionRepo.Create(connection); err != nil {
		return nil, apperrors.InternalError(err)
	}

	notification := &models.Notification{
		UserID:       receiverID,
		Message:      msgConnectionRequest,
		ConnectionID: &connection.ID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.Send(receiver.Email, "New connection request", msgConnectionRequest); err != nil {
		logger.Warn("failed to send connection email", "to", receiver.Email, "error", err)
	}

	return &dto.ConnectionRequestResult{
		Connection:   connection,
		Notification: notification,
		ReceiverID:   receiverID,
	}, nil
}

// RespondConnectionRequest handles accept/reject by the receiver. Accepting
// keeps the row with status accepted; rejecting deletes it, leaving no
// queryable record. Either way the receiver's pending notification is
// removed and only the requester gets a persisted outcome notification.
func (s *networkService) RespondConnectionRequest(callerID, connectionID, action string) (*dto.RespondResult, error) {
	connection, err := s.connectionRepo.FindByID(connectionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, apperrors.ErrNotFound(err, "Connection not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if connection.ReceiverID != callerID {
		return nil, apperrors.NewForbiddenError("Not authorized")
	}

	var message string
	switch action {
	case models.ConnectionActionAccepted:
		if err := s.connectionRepo.UpdateStatus(connectionID, models.ConnectionStatusAccepted); err != nil {
			return nil, apperrors.InternalError(err)
		}
		message = msgConnectionAccepted
	case models.ConnectionActionRejected:
		if err := s.connectionRepo.Delete(connectionID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		message = msgConnectionRejected
	default:
		return nil, apperrors.NewBadRequestError("Invalid action: " + action)
	}

	// Retract the receiver's own "pending request" notification.
	if err := s.notificationRepo.DeleteByConnectionAndUser(connectionID, callerID); err != nil {
		logger.Error("failed to delete pending notification", "connectionId", connectionID, "error", err)
	}

	notification := &models.Notification{
		UserID:       connection.RequesterID,
		Message:      message,
		ConnectionID: &connectionID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RespondResult{
		ConnectionID:          connectionID,
		Action:                action,
		RequesterID:           connection.RequesterID,
		ReceiverID:            connection.ReceiverID,
		RequesterNotification: notification,
	}, nil
}
