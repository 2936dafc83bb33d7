package models

import "time"

// UserType distinguishes riders from drivers. It is part of the login key.
type UserType string

const (
	UserTypeRider  UserType = "rider"
	UserTypeDriver UserType = "driver"
)

type User struct {
	Record
	Name      string     `json:"name"`
	Email     string     `json:"email" gorm:"uniqueIndex"`
	Phone     string     `json:"phone" gorm:"index"`
	Password  string     `json:"-"` // bcrypt hash
	UserType  UserType   `json:"user_type" gorm:"size:16"`
	Photo     string     `json:"photo,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`

	DriverProfile *DriverProfile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"driver_profile,omitempty"`
}
