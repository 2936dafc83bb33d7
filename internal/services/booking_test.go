package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxride/internal/events"
	"luxride/internal/fare"
	"luxride/internal/models"
	"luxride/internal/repository"
)

func newBookings(t *testing.T) (*Bookings, *repository.Store, *recordingNotifier, *recordingPublisher) {
	t.Helper()
	store := newStore(t)
	n := &recordingNotifier{}
	p := &recordingPublisher{}
	s := NewBookings(store, nil, n, p)
	s.now = fixedClock
	s.loc = time.UTC
	return s, store, n, p
}

func fillDraft(t *testing.T, s *Bookings, userID string) {
	t.Helper()
	ctx := context.Background()
	_, err := s.UpdateDraft(ctx, userID, DraftInput{
		Pickup: "A", Destination: "B", Datetime: "2026-10-16T08:30", VehicleType: models.VehicleStandard,
	})
	require.NoError(t, err)
	v, err := s.Next(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "vehicle_selection", v.Step)
	v, err = s.Next(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "confirmation", v.Step)
}

func TestConfirmCreatesBookingNotificationAndTrip(t *testing.T) {
	s, store, notifier, pub := newBookings(t)
	ctx := context.Background()
	uid := signupRider(t, store, "r@x.com")
	fillDraft(t, s, uid)

	b, err := s.Confirm(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, models.BookingRequested, b.Status)
	assert.Equal(t, "2026-10-16", b.Date)
	assert.Equal(t, "08:30", b.Time)
	assert.Equal(t, "Standard Sedan", b.VehicleName)
	assert.InDelta(t, fare.Fare(7, models.VehicleStandard), b.Price, 1e-9)

	bookings, err := s.List(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	trips, err := s.Trips(ctx, uid)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "A to B", trips[0].Route)
	assert.Equal(t, "Upcoming", trips[0].Status)

	notes, err := store.Notifications(ctx, uid)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotifBookingConfirmed, notes[0].Type)
	assert.Equal(t, "Your ride from A to B has been booked. Standard Sedan will pick you up.", notes[0].Message)
	require.NotNil(t, notes[0].BookingID)
	assert.Equal(t, b.ID, *notes[0].BookingID)

	recents, err := store.Recents(ctx, uid, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, recents)

	top, err := store.Top(ctx, uid, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "B", top[0].Location)

	_, err = store.Draft(ctx, uid)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.BookingCreated, pub.events[0].Type)
	assert.Contains(t, notifier.collections(), CollectionBookings)
}

func TestConfirmRequiresConfirmationStep(t *testing.T) {
	s, store, _, _ := newBookings(t)
	ctx := context.Background()
	uid := signupRider(t, store, "r@x.com")

	_, err := s.Confirm(ctx, uid)
	assert.ErrorIs(t, err, ErrInvalidStep)

	bookings, err := s.List(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBackAndCancelWriteNothing(t *testing.T) {
	s, store, _, pub := newBookings(t)
	ctx := context.Background()
	uid := signupRider(t, store, "r@x.com")
	fillDraft(t, s, uid)

	v, err := s.Back(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "vehicle_selection", v.Step)
	v, err = s.Back(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "location_entry", v.Step)
	v, err = s.Back(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "location_entry", v.Step)

	require.NoError(t, s.CancelDraft(ctx, uid))

	v, err = s.Draft(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "location_entry", v.Step)
	assert.Empty(t, v.Pickup)

	bookings, err := s.List(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	notes, err := store.Notifications(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Empty(t, pub.events)
}

func TestNextGuards(t *testing.T) {
	s, store, _, _ := newBookings(t)
	ctx := context.Background()
	uid := signupRider(t, store, "r@x.com")

	_, err := s.Next(ctx, uid)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = s.UpdateDraft(ctx, uid, DraftInput{Pickup: "A", Destination: "B", Datetime: "2026-10-16T08:30"})
	require.NoError(t, err)
	_, err = s.Next(ctx, uid)
	require.NoError(t, err)
	_, err = s.Next(ctx, uid)
	assert.ErrorIs(t, err, ErrNoVehicle)

	_, err = s.UpdateDraft(ctx, uid, DraftInput{Pickup: "A", Destination: "B", Datetime: "x", VehicleType: "rocket"})
	assert.ErrorIs(t, err, ErrUnknownVehicle)

	v, err := s.Draft(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "vehicle_selection", v.Step)
	assert.Equal(t, models.VehicleStandard, v.Estimate.Recommended)
}

func TestCancelBooking(t *testing.T) {
	s, store, _, pub := newBookings(t)
	ctx := context.Background()
	uid := signupRider(t, store, "r@x.com")
	fillDraft(t, s, uid)
	b, err := s.Confirm(ctx, uid)
	require.NoError(t, err)

	got, err := s.Cancel(ctx, uid, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, got.Status)

	_, err = s.Cancel(ctx, uid, b.ID)
	require.NoError(t, err)

	notes, err := store.Notifications(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
	assert.Len(t, pub.events, 2)

	trips, err := s.Trips(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", trips[0].Status)

	_, err = s.Cancel(ctx, "someone-else", b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelCompletedBookingFails(t *testing.T) {
	s, store, _, _ := newBookings(t)
	ctx := context.Background()
	uid := signupRider(t, store, "r@x.com")
	b := &models.Booking{UserID: uid, Pickup: "A", Destination: "B", Status: models.BookingCompleted}
	require.NoError(t, store.CreateBooking(ctx, b))

	_, err := s.Cancel(ctx, uid, b.ID)
	assert.ErrorIs(t, err, ErrBookingClosed)
}

func TestReceiptText(t *testing.T) {
	b := models.Booking{
		Record:      models.Record{ID: "bk-1"},
		Pickup:      "A",
		Destination: "B",
		Datetime:    time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC),
		VehicleType: models.VehicleStandard,
		VehicleName: "Standard Sedan",
		Price:       34.5,
		Status:      models.BookingRequested,
		Distance:    7,
		Duration:    14,
	}
	r := NewReceipt(b)
	assert.InDelta(t, 17.5, r.DistanceCharge, 1e-9)
	assert.InDelta(t, 7.0, r.TimeCharge, 1e-9)
	assert.Equal(t, "luxride-receipt-bk-1.txt", r.Filename())

	text := r.Text()
	assert.Contains(t, text, "Booking ID: bk-1")
	assert.Contains(t, text, "Status: REQUESTED")
	assert.Contains(t, text, "Base Fare: $10.00")
	assert.Contains(t, text, "Distance: 7 km")
	assert.Contains(t, text, "Time: 14 min")
	assert.Contains(t, text, "TOTAL: $34.50")
}
