package models

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingRequested BookingStatus = "requested"
	BookingAccepted  BookingStatus = "accepted"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Record
	UserID      string        `json:"user_id" gorm:"index;size:36"`
	Pickup      string        `json:"pickup"`
	Destination string        `json:"destination"`
	Date        string        `json:"date"` // YYYY-MM-DD
	Time        string        `json:"time"` // HH:MM
	Datetime    time.Time     `json:"datetime"`
	VehicleType VehicleType   `json:"vehicle_type" gorm:"size:16"`
	VehicleName string        `json:"vehicle_name"`
	Price       float64       `json:"price"`
	Status      BookingStatus `json:"status" gorm:"size:16"`
	Distance    float64       `json:"distance"` // km
	Duration    int           `json:"duration"` // minutes
	Timestamp   time.Time     `json:"timestamp"`
}

// Trip is the history view of a booking. It is derived on read and never
// stored, so it cannot drift from the booking it describes.
type Trip struct {
	ID     string  `json:"id"`
	Route  string  `json:"route"`
	Date   string  `json:"date"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

// Trip projects the booking into its history view.
func (b Booking) Trip() Trip {
	return Trip{
		ID:     b.ID,
		Route:  fmt.Sprintf("%s to %s", b.Pickup, b.Destination),
		Date:   b.Date,
		Type:   b.VehicleName,
		Price:  b.Price,
		Status: tripStatus(b.Status),
	}
}

func tripStatus(s BookingStatus) string {
	switch s {
	case BookingCompleted:
		return "Completed"
	case BookingCancelled:
		return "Cancelled"
	default:
		return "Upcoming"
	}
}

// BookingDraft holds the in-progress booking form of one user.
type BookingDraft struct {
	UserID      string      `json:"user_id" gorm:"primaryKey;size:36"`
	Step        int         `json:"step"`
	Pickup      string      `json:"pickup"`
	Destination string      `json:"destination"`
	Datetime    string      `json:"datetime"` // as entered, e.g. 2026-10-15T18:30
	VehicleType VehicleType `json:"vehicle_type" gorm:"size:16"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
