package services

import (
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

// notificationPageSize caps the notification list at the most recent 50.
const notificationPageSize = 50

type NotificationService interface {
	List(userID string) (*dto.NotificationListResponse, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error
	Delete(userID, notificationID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(userID string) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindLatestByUser(userID, notificationPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	unread, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkRead(userID, notificationID string) error {
	if err := s.authorize(userID, notificationID); err != nil {
		return err
	}
	if err := s.notificationRepo.MarkRead(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) Delete(userID, notificationID string) error {
	if err := s.authorize(userID, notificationID); err != nil {
		return err
	}
	if err := s.notificationRepo.Delete(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) authorize(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	if notification.UserID != userID {
		return apperrors.NewForbiddenError("Not authorized")
	}
	return nil
}
