package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"luxride/internal/models"
)

func (s *Store) CreateBooking(ctx context.Context, b *models.Booking) error {
	return s.conn(ctx).Create(b).Error
}

func (s *Store) Booking(ctx context.Context, userID, id string) (*models.Booking, error) {
	var b models.Booking
	if err := s.conn(ctx).Where("id = ? AND user_id = ?", id, userID).First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (s *Store) Bookings(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	err := s.conn(ctx).Where("user_id = ?", userID).
		Order("created_at desc").Order("id desc").
		Find(&out).Error
	return out, err
}

func (s *Store) SaveBooking(ctx context.Context, b *models.Booking) error {
	return s.conn(ctx).Save(b).Error
}

func (s *Store) Draft(ctx context.Context, userID string) (*models.BookingDraft, error) {
	var d models.BookingDraft
	if err := s.conn(ctx).Where("user_id = ?", userID).First(&d).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (s *Store) SaveDraft(ctx context.Context, d *models.BookingDraft) error {
	return s.conn(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(d).Error
}

func (s *Store) DeleteDraft(ctx context.Context, userID string) error {
	return s.conn(ctx).Where("user_id = ?", userID).Delete(&models.BookingDraft{}).Error
}
