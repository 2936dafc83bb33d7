package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"luxride/internal/booking"
	"luxride/internal/changes"
	"luxride/internal/events"
	"luxride/internal/fare"
	"luxride/internal/models"
	"luxride/internal/repository"
)

// Collections named in change notifications.
const (
	CollectionBookings      = "bookings"
	CollectionDraft         = "booking_draft"
	CollectionNotifications = "notifications"
	CollectionRecents       = "recent_locations"
	CollectionFavorites     = "favorites"
	CollectionScheduled     = "scheduled_rides"
	CollectionProfile       = "profile"
)

// DraftInput replaces the form fields of a draft. The step is left alone.
type DraftInput struct {
	Pickup      string             `json:"pickup"`
	Destination string             `json:"destination"`
	Datetime    string             `json:"datetime"`
	VehicleType models.VehicleType `json:"vehicle_type"`
}

// DraftView is a draft as the booking page renders it.
type DraftView struct {
	Step        string             `json:"step"`
	StepNumber  int                `json:"step_number"`
	Pickup      string             `json:"pickup"`
	Destination string             `json:"destination"`
	Datetime    string             `json:"datetime"`
	VehicleType models.VehicleType `json:"vehicle_type"`
	Estimate    fare.Estimate      `json:"estimate"`
}

func viewOf(f *booking.Flow) DraftView {
	est := fare.Calculate(f.Pickup, f.Destination, f.VehicleType)
	if f.Pickup != "" && f.Destination != "" {
		est.Recommended = fare.Recommend(est.DistanceKm)
	}
	return DraftView{
		Step:        f.Step.String(),
		StepNumber:  int(f.Step),
		Pickup:      f.Pickup,
		Destination: f.Destination,
		Datetime:    f.Datetime,
		VehicleType: f.VehicleType,
		Estimate:    est,
	}
}

// Bookings runs the booking form and owns confirmed bookings.
type Bookings struct {
	store    *repository.Store
	popular  repository.PopularityCounter
	notifier changes.Notifier
	events   events.Publisher
	loc      *time.Location
	now      func() time.Time
}

func NewBookings(store *repository.Store, popular repository.PopularityCounter, notifier changes.Notifier, pub events.Publisher) *Bookings {
	if popular == nil {
		popular = store
	}
	if pub == nil {
		pub = events.Nop{}
	}
	return &Bookings{
		store:    store,
		popular:  popular,
		notifier: notifier,
		events:   pub,
		loc:      time.Local,
		now:      time.Now,
	}
}

func (s *Bookings) flow(ctx context.Context, userID string) (*booking.Flow, error) {
	d, err := s.store.Draft(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return booking.New(), nil
	}
	if err != nil {
		return nil, err
	}
	return booking.FromDraft(*d), nil
}

func (s *Bookings) save(ctx context.Context, userID string, f *booking.Flow) (DraftView, error) {
	d := f.Draft(userID)
	if err := s.store.SaveDraft(ctx, &d); err != nil {
		return DraftView{}, err
	}
	changes.Announce(ctx, s.notifier, changes.Change{UserID: userID, Collection: CollectionDraft, Action: changes.ActionUpdated})
	return viewOf(f), nil
}

// Draft returns the user's form in progress, or a fresh one.
func (s *Bookings) Draft(ctx context.Context, userID string) (DraftView, error) {
	f, err := s.flow(ctx, userID)
	if err != nil {
		return DraftView{}, err
	}
	return viewOf(f), nil
}

func (s *Bookings) UpdateDraft(ctx context.Context, userID string, in DraftInput) (DraftView, error) {
	if in.VehicleType != "" {
		if _, ok := models.FindVehicle(in.VehicleType); !ok {
			return DraftView{}, fmt.Errorf("%w: %s", ErrUnknownVehicle, in.VehicleType)
		}
	}
	f, err := s.flow(ctx, userID)
	if err != nil {
		return DraftView{}, err
	}
	f.Pickup = strings.TrimSpace(in.Pickup)
	f.Destination = strings.TrimSpace(in.Destination)
	f.Datetime = strings.TrimSpace(in.Datetime)
	f.VehicleType = in.VehicleType
	return s.save(ctx, userID, f)
}

// Next advances the form. A failed guard leaves the stored draft unchanged.
func (s *Bookings) Next(ctx context.Context, userID string) (DraftView, error) {
	f, err := s.flow(ctx, userID)
	if err != nil {
		return DraftView{}, err
	}
	if err := f.Next(); err != nil {
		return viewOf(f), err
	}
	return s.save(ctx, userID, f)
}

func (s *Bookings) Back(ctx context.Context, userID string) (DraftView, error) {
	f, err := s.flow(ctx, userID)
	if err != nil {
		return DraftView{}, err
	}
	f.Back()
	return s.save(ctx, userID, f)
}

// CancelDraft abandons the form. Nothing else is written.
func (s *Bookings) CancelDraft(ctx context.Context, userID string) error {
	if err := s.store.DeleteDraft(ctx, userID); err != nil {
		return err
	}
	changes.Announce(ctx, s.notifier, changes.Change{UserID: userID, Collection: CollectionDraft, Action: changes.ActionDeleted})
	return nil
}

// Confirm turns the draft into a booking. The booking, its notification, the
// recent locations and the draft removal commit together or not at all.
func (s *Bookings) Confirm(ctx context.Context, userID string) (*models.Booking, error) {
	f, err := s.flow(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := f.Ready(); err != nil {
		return nil, err
	}
	when, err := f.When(s.loc)
	if err != nil {
		return nil, err
	}
	vehicle, _ := models.FindVehicle(f.VehicleType)
	est := fare.Calculate(f.Pickup, f.Destination, f.VehicleType)
	now := s.now()

	b := &models.Booking{
		UserID:      userID,
		Pickup:      f.Pickup,
		Destination: f.Destination,
		Date:        when.Format("2006-01-02"),
		Time:        when.Format("15:04"),
		Datetime:    when,
		VehicleType: vehicle.Type,
		VehicleName: vehicle.Name,
		Price:       est.Fare,
		Status:      models.BookingRequested,
		Distance:    est.DistanceKm,
		Duration:    est.DurationMin,
		Timestamp:   now,
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}
		n := &models.Notification{
			UserID:    userID,
			Type:      models.NotifBookingConfirmed,
			Title:     "Ride Booked Successfully",
			Message:   fmt.Sprintf("Your ride from %s to %s has been booked. %s will pick you up.", b.Pickup, b.Destination, b.VehicleName),
			Timestamp: now,
			BookingID: &b.ID,
		}
		if err := tx.CreateNotification(ctx, n); err != nil {
			return err
		}
		for _, loc := range []string{b.Pickup, b.Destination} {
			if err := tx.AddRecent(ctx, userID, loc, RecentRetain); err != nil {
				return err
			}
		}
		return tx.DeleteDraft(ctx, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"booking_id": b.ID,
		"vehicle":    b.VehicleType,
		"price":      b.Price,
	}).Info("Booking confirmed")

	if err := s.popular.Increment(ctx, userID, b.Destination); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("Failed to count popular destination")
	}
	for _, c := range []string{CollectionBookings, CollectionNotifications, CollectionRecents} {
		changes.Announce(ctx, s.notifier, changes.Change{UserID: userID, Collection: c, Action: changes.ActionCreated, ID: b.ID})
	}
	changes.Announce(ctx, s.notifier, changes.Change{UserID: userID, Collection: CollectionDraft, Action: changes.ActionDeleted})
	events.Emit(ctx, s.events, events.BookingCreated, *b, now)
	return b, nil
}

// List returns the user's bookings, newest first.
func (s *Bookings) List(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.store.Bookings(ctx, userID)
}

// Trips returns the history view of every booking, newest first.
func (s *Bookings) Trips(ctx context.Context, userID string) ([]models.Trip, error) {
	bookings, err := s.store.Bookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	trips := make([]models.Trip, 0, len(bookings))
	for _, b := range bookings {
		trips = append(trips, b.Trip())
	}
	return trips, nil
}

func (s *Bookings) Get(ctx context.Context, userID, id string) (*models.Booking, error) {
	return s.store.Booking(ctx, userID, id)
}

// Cancel marks a booking cancelled and tells the rider. Cancelling twice is a
// no-op; completed rides cannot be cancelled.
func (s *Bookings) Cancel(ctx context.Context, userID, id string) (*models.Booking, error) {
	b, err := s.store.Booking(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	switch b.Status {
	case models.BookingCancelled:
		return b, nil
	case models.BookingCompleted:
		return nil, ErrBookingClosed
	}

	now := s.now()
	b.Status = models.BookingCancelled
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.SaveBooking(ctx, b); err != nil {
			return err
		}
		return tx.CreateNotification(ctx, &models.Notification{
			UserID:    userID,
			Type:      models.NotifBookingCancelled,
			Title:     "Ride Cancelled",
			Message:   fmt.Sprintf("Your ride from %s to %s has been cancelled.", b.Pickup, b.Destination),
			Timestamp: now,
			BookingID: &b.ID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "booking_id": b.ID}).Info("Booking cancelled")
	changes.Announce(ctx, s.notifier, changes.Change{UserID: userID, Collection: CollectionBookings, Action: changes.ActionUpdated, ID: b.ID})
	changes.Announce(ctx, s.notifier, changes.Change{UserID: userID, Collection: CollectionNotifications, Action: changes.ActionCreated})
	events.Emit(ctx, s.events, events.BookingCancelled, *b, now)
	return b, nil
}
