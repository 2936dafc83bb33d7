// Package repository persists riders' data behind narrow store interfaces.
// Every collection is scoped to its owning user. Concurrent writers to the
// same row follow last-write-wins; there is no optimistic locking.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"luxride/internal/models"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("record not found")

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UsersByIdentifier matches the email or the phone number within a user type.
	UsersByIdentifier(ctx context.Context, identifier string, t models.UserType) ([]models.User, error)
	SaveUser(ctx context.Context, u *models.User) error
}

type DriverProfileStore interface {
	CreateDriverProfile(ctx context.Context, p *models.DriverProfile) error
	DriverProfileByUser(ctx context.Context, userID string) (*models.DriverProfile, error)
}

type BookingStore interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	Booking(ctx context.Context, userID, id string) (*models.Booking, error)
	// Bookings lists newest first.
	Bookings(ctx context.Context, userID string) ([]models.Booking, error)
	SaveBooking(ctx context.Context, b *models.Booking) error
}

type DraftStore interface {
	Draft(ctx context.Context, userID string) (*models.BookingDraft, error)
	SaveDraft(ctx context.Context, d *models.BookingDraft) error
	DeleteDraft(ctx context.Context, userID string) error
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	// Notifications lists newest first.
	Notifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	DeleteNotification(ctx context.Context, userID, id string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type PlaceStore interface {
	AddFavorite(ctx context.Context, userID, location string) (added bool, err error)
	RemoveFavorite(ctx context.Context, userID, location string) error
	Favorites(ctx context.Context, userID string, limit int) ([]string, error)

	// AddRecent prepends location unless already present and keeps at most
	// retain entries.
	AddRecent(ctx context.Context, userID, location string, retain int) error
	Recents(ctx context.Context, userID string, limit int) ([]string, error)

	SavePlace(ctx context.Context, p *models.SavedPlace) error
	SavedPlaces(ctx context.Context, userID string) ([]models.SavedPlace, error)
}

// PopularityCounter tracks how often each destination is booked.
type PopularityCounter interface {
	Increment(ctx context.Context, userID, location string) error
	Top(ctx context.Context, userID string, n int) ([]models.PopularDestination, error)
}

type ScheduleStore interface {
	CreateScheduledRide(ctx context.Context, r *models.ScheduledRide) error
	// ScheduledRidesAfter lists rides at or after t, soonest first.
	ScheduledRidesAfter(ctx context.Context, userID string, t time.Time) ([]models.ScheduledRide, error)
}

type RatingStore interface {
	CreateRating(ctx context.Context, r *models.Rating) error
	Ratings(ctx context.Context, userID string) ([]models.Rating, error)
}

// Store implements every store interface on one GORM handle.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for components that need raw SQL.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn against a store bound to one database transaction.
// Any error returned by fn rolls back every write made through it.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

var (
	_ UserStore          = (*Store)(nil)
	_ DriverProfileStore = (*Store)(nil)
	_ BookingStore       = (*Store)(nil)
	_ DraftStore         = (*Store)(nil)
	_ NotificationStore  = (*Store)(nil)
	_ PlaceStore         = (*Store)(nil)
	_ PopularityCounter  = (*Store)(nil)
	_ ScheduleStore      = (*Store)(nil)
	_ RatingStore        = (*Store)(nil)
)
