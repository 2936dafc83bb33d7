package services

import (
	"context"
	"strings"
	"time"

	"luxride/internal/models"
	"luxride/internal/repository"
)

type RatingInput struct {
	Stars     int    `json:"rating"`
	Feedback  string `json:"feedback"`
	BookingID string `json:"booking_id"`
}

type Ratings struct {
	store    repository.RatingStore
	bookings repository.BookingStore
	now      func() time.Time
}

func NewRatings(store repository.RatingStore, bookings repository.BookingStore) *Ratings {
	return &Ratings{store: store, bookings: bookings, now: time.Now}
}

// Submit records a 1-5 star rating. A booking id, when given, must belong to
// the user.
func (r *Ratings) Submit(ctx context.Context, userID string, in RatingInput) (*models.Rating, error) {
	if in.Stars < 1 || in.Stars > 5 {
		return nil, ErrRatingNotSelected
	}
	rating := &models.Rating{
		UserID:    userID,
		Stars:     in.Stars,
		Feedback:  strings.TrimSpace(in.Feedback),
		Timestamp: r.now(),
	}
	if id := strings.TrimSpace(in.BookingID); id != "" {
		if _, err := r.bookings.Booking(ctx, userID, id); err != nil {
			return nil, err
		}
		rating.BookingID = &id
	}
	if err := r.store.CreateRating(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (r *Ratings) List(ctx context.Context, userID string) ([]models.Rating, error) {
	return r.store.Ratings(ctx, userID)
}
