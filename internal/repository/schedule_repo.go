package repository

import (
	"context"
	"time"

	"luxride/internal/models"
)

// CreateScheduledRide stores Datetime in UTC. SQLite compares times as text,
// so every row and query bound must share one offset.
func (s *Store) CreateScheduledRide(ctx context.Context, r *models.ScheduledRide) error {
	r.Datetime = r.Datetime.UTC()
	return s.conn(ctx).Create(r).Error
}

func (s *Store) ScheduledRidesAfter(ctx context.Context, userID string, t time.Time) ([]models.ScheduledRide, error) {
	var out []models.ScheduledRide
	err := s.conn(ctx).Where("user_id = ? AND datetime >= ?", userID, t.UTC()).
		Order("datetime").
		Find(&out).Error
	return out, err
}

func (s *Store) CreateRating(ctx context.Context, r *models.Rating) error {
	return s.conn(ctx).Create(r).Error
}

func (s *Store) Ratings(ctx context.Context, userID string) ([]models.Rating, error) {
	var out []models.Rating
	err := s.conn(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&out).Error
	return out, err
}
