package repository

import (
	"context"

	"luxride/internal/models"
)

func (s *Store) CreateNotification(ctx context.Context, n *models.Notification) error {
	return s.conn(ctx).Omit("Booking").Create(n).Error
}

func (s *Store) Notifications(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	err := s.conn(ctx).Preload("Booking").
		Where("user_id = ?", userID).
		Order("created_at desc").Order("id desc").
		Find(&out).Error
	return out, err
}

// MarkRead sets read on exactly one notification. Unknown ids are a no-op.
func (s *Store) MarkRead(ctx context.Context, userID, id string) error {
	return s.conn(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true).Error
}

func (s *Store) DeleteNotification(ctx context.Context, userID, id string) error {
	return s.conn(ctx).Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{}).Error
}

func (s *Store) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := s.conn(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&n).Error
	return n, err
}
