package repository

import (
	"context"

	"luxride/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return s.conn(ctx).Create(u).Error
}

func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.conn(ctx).Preload("DriverProfile").Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.conn(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *Store) UsersByIdentifier(ctx context.Context, identifier string, t models.UserType) ([]models.User, error) {
	var users []models.User
	err := s.conn(ctx).
		Where("(email = ? OR phone = ?) AND user_type = ?", identifier, identifier, t).
		Find(&users).Error
	return users, err
}

func (s *Store) SaveUser(ctx context.Context, u *models.User) error {
	return s.conn(ctx).Omit("DriverProfile").Save(u).Error
}

func (s *Store) CreateDriverProfile(ctx context.Context, p *models.DriverProfile) error {
	return s.conn(ctx).Create(p).Error
}

func (s *Store) DriverProfileByUser(ctx context.Context, userID string) (*models.DriverProfile, error) {
	var p models.DriverProfile
	if err := s.conn(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
