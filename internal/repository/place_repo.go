package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"luxride/internal/models"
)

func (s *Store) AddFavorite(ctx context.Context, userID, location string) (bool, error) {
	var existing models.Favorite
	err := s.conn(ctx).Where("user_id = ? AND location = ?", userID, location).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.conn(ctx).Create(&models.Favorite{UserID: userID, Location: location}).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) RemoveFavorite(ctx context.Context, userID, location string) error {
	return s.conn(ctx).Where("user_id = ? AND location = ?", userID, location).
		Delete(&models.Favorite{}).Error
}

func (s *Store) Favorites(ctx context.Context, userID string, limit int) ([]string, error) {
	var out []string
	err := s.conn(ctx).Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at desc").Order("id desc").
		Limit(limit).
		Pluck("location", &out).Error
	return out, err
}

func (s *Store) AddRecent(ctx context.Context, userID, location string, retain int) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.RecentLocation{}).
			Where("user_id = ? AND location = ?", userID, location).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		if err := tx.Create(&models.RecentLocation{UserID: userID, Location: location}).Error; err != nil {
			return err
		}

		var ids []string
		if err := tx.Model(&models.RecentLocation{}).
			Where("user_id = ?", userID).
			Order("created_at desc").Order("id desc").
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) <= retain {
			return nil
		}
		return tx.Where("id IN ?", ids[retain:]).Delete(&models.RecentLocation{}).Error
	})
}

func (s *Store) Recents(ctx context.Context, userID string, limit int) ([]string, error) {
	var out []string
	err := s.conn(ctx).Model(&models.RecentLocation{}).
		Where("user_id = ?", userID).
		Order("created_at desc").Order("id desc").
		Limit(limit).
		Pluck("location", &out).Error
	return out, err
}

func (s *Store) SavePlace(ctx context.Context, p *models.SavedPlace) error {
	return s.conn(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}

func (s *Store) SavedPlaces(ctx context.Context, userID string) ([]models.SavedPlace, error) {
	var out []models.SavedPlace
	err := s.conn(ctx).Where("user_id = ?", userID).Order("kind").Find(&out).Error
	return out, err
}

func (s *Store) Increment(ctx context.Context, userID, location string) error {
	row := models.PopularDestination{UserID: userID, Location: location, Count: 1}
	return s.conn(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "location"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("popular_destinations.count + 1"),
		}),
	}).Create(&row).Error
}

func (s *Store) Top(ctx context.Context, userID string, n int) ([]models.PopularDestination, error) {
	var out []models.PopularDestination
	err := s.conn(ctx).Where("user_id = ?", userID).
		Order("count desc").Order("location").
		Limit(n).
		Find(&out).Error
	return out, err
}
