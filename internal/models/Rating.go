package models

import "time"

type Rating struct {
	Record
	UserID    string    `json:"user_id" gorm:"index;size:36"`
	BookingID *string   `json:"booking_id,omitempty" gorm:"size:36"`
	Stars     int       `json:"rating"`
	Feedback  string    `json:"feedback"`
	Timestamp time.Time `json:"timestamp"`
}
