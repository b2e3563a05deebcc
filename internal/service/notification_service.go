package service

import (
	"context"
	"time"

	"estate-backoffice/internal/models"
	"estate-backoffice/internal/repository"
	"estate-backoffice/pkg/logger"
	"estate-backoffice/pkg/validator"
)

type NotificationService struct {
	notificationRepo repository.NotificationRepository
	events           *Events
}

func NewNotificationService(notificationRepo repository.NotificationRepository, events *Events) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		events:           events,
	}
}

// Notify stores a dashboard notification and publishes it on the bus
// with the recipient's fresh unread count, so connected dashboards can
// update their badge without polling.
func (s *NotificationService) Notify(userID uint, notificationType, title, message string) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   validator.SanitizeString(title),
		Message: validator.SanitizeString(message),
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		logger.Warn("Failed to count unread notifications", map[string]interface{}{"user_id": userID, "error": err.Error()})
		unread = -1
	}

	s.events.Publish(Event{
		Type:   EventNotificationCreated,
		UserID: userID,
		Payload: map[string]interface{}{
			"notification_id": notification.ID,
			"type":            notification.Type,
			"unread_count":    unread,
		},
	})

	return notification, nil
}

func (s *NotificationService) GetForUser(userID uint, offset, limit int, unreadOnly bool) ([]models.Notification, int64, error) {
	return s.notificationRepo.GetForUser(userID, offset, limit, unreadOnly)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.notificationRepo.UnreadCount(userID)
}

func (s *NotificationService) MarkRead(id, userID uint) error {
	return s.notificationRepo.MarkRead(id, userID)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.notificationRepo.MarkAllRead(userID)
}

// PurgeRead drops read notifications older than the retention window.
// Called from the background scheduler.
func (s *NotificationService) PurgeRead(ctx context.Context, olderThan time.Duration) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().Add(-olderThan)
	return s.notificationRepo.DeleteReadBefore(cutoff)
}
