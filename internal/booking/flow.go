// Package booking holds the three-step booking form: locations, vehicle,
// confirmation. Steps only move on explicit Next/Back calls.
package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"luxride/internal/models"
)

type Step int

const (
	LocationEntry Step = iota + 1
	VehicleSelection
	Confirmation
)

func (s Step) String() string {
	switch s {
	case LocationEntry:
		return "location_entry"
	case VehicleSelection:
		return "vehicle_selection"
	case Confirmation:
		return "confirmation"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// DatetimeLayout is the format of the datetime form field.
const DatetimeLayout = "2006-01-02T15:04"

var (
	ErrMissingField   = errors.New("missing field")
	ErrNoVehicle      = errors.New("no vehicle selected")
	ErrUnknownVehicle = errors.New("unknown vehicle type")
	ErrNotConfirming  = errors.New("booking is not at the confirmation step")
	ErrBadDatetime    = errors.New("invalid datetime")
)

// Flow is the form state of one booking in progress.
type Flow struct {
	Step        Step
	Pickup      string
	Destination string
	Datetime    string
	VehicleType models.VehicleType
}

// New starts a flow at location entry.
func New() *Flow {
	return &Flow{Step: LocationEntry}
}

// FromDraft restores a flow from its persisted draft.
func FromDraft(d models.BookingDraft) *Flow {
	step := Step(d.Step)
	if step < LocationEntry || step > Confirmation {
		step = LocationEntry
	}
	return &Flow{
		Step:        step,
		Pickup:      d.Pickup,
		Destination: d.Destination,
		Datetime:    d.Datetime,
		VehicleType: d.VehicleType,
	}
}

// Draft returns the persistable form of the flow.
func (f *Flow) Draft(userID string) models.BookingDraft {
	return models.BookingDraft{
		UserID:      userID,
		Step:        int(f.Step),
		Pickup:      f.Pickup,
		Destination: f.Destination,
		Datetime:    f.Datetime,
		VehicleType: f.VehicleType,
	}
}

// Next advances one step if the current step's guard holds.
func (f *Flow) Next() error {
	switch f.Step {
	case LocationEntry:
		if err := f.checkLocations(); err != nil {
			return err
		}
		f.Step = VehicleSelection
	case VehicleSelection:
		if err := f.checkVehicle(); err != nil {
			return err
		}
		f.Step = Confirmation
	}
	return nil
}

// Back moves one step back. It is a no-op at the first step.
func (f *Flow) Back() {
	if f.Step > LocationEntry {
		f.Step--
	}
}

// Ready reports whether the flow can be confirmed.
func (f *Flow) Ready() error {
	if f.Step != Confirmation {
		return ErrNotConfirming
	}
	if err := f.checkLocations(); err != nil {
		return err
	}
	return f.checkVehicle()
}

// When parses the entered datetime in loc.
func (f *Flow) When(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DatetimeLayout, f.Datetime, loc)
	if err != nil {
		t, err = time.Parse(time.RFC3339, f.Datetime)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrBadDatetime, f.Datetime)
		}
	}
	return t, nil
}

func (f *Flow) checkLocations() error {
	var missing []string
	if strings.TrimSpace(f.Pickup) == "" {
		missing = append(missing, "pickup")
	}
	if strings.TrimSpace(f.Destination) == "" {
		missing = append(missing, "destination")
	}
	if strings.TrimSpace(f.Datetime) == "" {
		missing = append(missing, "datetime")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

func (f *Flow) checkVehicle() error {
	if f.VehicleType == "" {
		return ErrNoVehicle
	}
	if _, ok := models.FindVehicle(f.VehicleType); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVehicle, f.VehicleType)
	}
	return nil
}
