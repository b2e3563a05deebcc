package repository

import (
	"time"

	"estate-backoffice/internal/models"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetForUser(userID uint, offset, limit int, unreadOnly bool) ([]models.Notification, int64, error)
	UnreadCount(userID uint) (int64, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
	DeleteReadBefore(cutoff time.Time) (int64, error)
}

type notificationRepository struct {
	conn Conn
}

func NewNotificationRepository(conn Conn) NotificationRepository {
	return &notificationRepository{conn: conn}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.conn.DB().Create(notification).Error
}

func (r *notificationRepository) GetForUser(userID uint, offset, limit int, unreadOnly bool) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.conn.DB().Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	query.Count(&total)

	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&notifications).Error
	return notifications, total, err
}

func (r *notificationRepository) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.conn.DB().Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead scopes by owner so a user cannot acknowledge someone else's
// notification. A miss is not an error.
func (r *notificationRepository) MarkRead(id, userID uint) error {
	now := time.Now().UTC()
	return r.conn.DB().Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"read": true, "read_at": &now}).Error
}

func (r *notificationRepository) MarkAllRead(userID uint) error {
	now := time.Now().UTC()
	return r.conn.DB().Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]interface{}{"read": true, "read_at": &now}).Error
}

func (r *notificationRepository) DeleteReadBefore(cutoff time.Time) (int64, error) {
	result := r.conn.DB().
		Where("read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
