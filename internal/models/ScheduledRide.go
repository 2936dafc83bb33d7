package models

import "time"

const RideScheduled = "scheduled"

type ScheduledRide struct {
	Record
	UserID      string      `json:"user_id" gorm:"index;size:36"`
	Pickup      string      `json:"pickup"`
	Destination string      `json:"destination"`
	Datetime    time.Time   `json:"datetime" gorm:"index"`
	VehicleType VehicleType `json:"vehicle_type" gorm:"size:16"`
	Price       float64     `json:"price"`
	Distance    float64     `json:"distance"`
	Status      string      `json:"status" gorm:"size:16"`
	Timestamp   time.Time   `json:"timestamp"`
}
