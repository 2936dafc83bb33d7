package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"luxride/internal/booking"
	"luxride/internal/changes"
	"luxride/internal/fare"
	"luxride/internal/models"
	"luxride/internal/repository"
)

type ScheduleInput struct {
	Pickup      string             `json:"pickup"`
	Destination string             `json:"destination"`
	Datetime    string             `json:"datetime"`
	VehicleType models.VehicleType `json:"vehicle_type"`
}

// Schedules books rides for a later time.
type Schedules struct {
	store    *repository.Store
	notifier changes.Notifier
	loc      *time.Location
	now      func() time.Time
}

func NewSchedules(store *repository.Store, notifier changes.Notifier) *Schedules {
	return &Schedules{store: store, notifier: notifier, loc: time.Local, now: time.Now}
}

func (s *Schedules) Create(ctx context.Context, userID string, in ScheduleInput) (*models.ScheduledRide, error) {
	f := booking.Flow{
		Pickup:      strings.TrimSpace(in.Pickup),
		Destination: strings.TrimSpace(in.Destination),
		Datetime:    strings.TrimSpace(in.Datetime),
		VehicleType: in.VehicleType,
	}
	if f.VehicleType == "" {
		f.VehicleType = models.VehicleStandard
	}
	if err := required(
		field{"pickup", f.Pickup}, field{"destination", f.Destination}, field{"datetime", f.Datetime},
	); err != nil {
		return nil, err
	}
	if _, ok := models.FindVehicle(f.VehicleType); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVehicle, f.VehicleType)
	}
	when, err := f.When(s.loc)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !when.After(now) {
		return nil, ErrPastDatetime
	}

	est := fare.Calculate(f.Pickup, f.Destination, f.VehicleType)
	ride := &models.ScheduledRide{
		UserID:      userID,
		Pickup:      f.Pickup,
		Destination: f.Destination,
		Datetime:    when.UTC(),
		VehicleType: f.VehicleType,
		Price:       est.Fare,
		Distance:    est.DistanceKm,
		Status:      models.RideScheduled,
		Timestamp:   now.UTC(),
	}
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.CreateScheduledRide(ctx, ride); err != nil {
			return err
		}
		return tx.CreateNotification(ctx, &models.Notification{
			UserID:    userID,
			Type:      models.NotifRideScheduled,
			Title:     "Ride Scheduled",
			Message:   fmt.Sprintf("Your ride from %s to %s is scheduled for %s.", ride.Pickup, ride.Destination, when.Format("Jan 2, 2006, 3:04 PM")),
			Timestamp: now,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("schedule ride: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": userID, "ride_id": ride.ID, "at": when}).Info("Ride scheduled")
	changes.Announce(ctx, s.notifier, changes.Change{UserID: userID, Collection: CollectionScheduled, Action: changes.ActionCreated, ID: ride.ID})
	changes.Announce(ctx, s.notifier, changes.Change{UserID: userID, Collection: CollectionNotifications, Action: changes.ActionCreated})
	return ride, nil
}

// ListActive returns rides not yet due, soonest first.
func (s *Schedules) ListActive(ctx context.Context, userID string) ([]models.ScheduledRide, error) {
	return s.store.ScheduledRidesAfter(ctx, userID, s.now().UTC())
}
