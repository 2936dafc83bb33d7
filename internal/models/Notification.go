package models

import "time"

type NotificationType string

const (
	NotifBookingConfirmed NotificationType = "booking_confirmed"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifRideScheduled    NotificationType = "ride_scheduled"
)

type Notification struct {
	Record
	UserID    string           `json:"user_id" gorm:"index;size:36"`
	Type      NotificationType `json:"type" gorm:"size:32"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	BookingID *string          `json:"booking_id,omitempty" gorm:"size:36"`
	Booking   *Booking         `gorm:"foreignKey:BookingID;constraint:OnDelete:SET NULL;" json:"booking,omitempty"`
}
