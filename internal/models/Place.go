package models

// Favorite is a location string the user starred.
type Favorite struct {
	Record
	UserID   string `json:"user_id" gorm:"uniqueIndex:idx_favorite_user_location;size:36"`
	Location string `json:"location" gorm:"uniqueIndex:idx_favorite_user_location"`
}

// RecentLocation is a location string the user recently picked.
type RecentLocation struct {
	Record
	UserID   string `json:"user_id" gorm:"uniqueIndex:idx_recent_user_location;size:36"`
	Location string `json:"location" gorm:"uniqueIndex:idx_recent_user_location"`
}

type SavedPlaceKind string

const (
	PlaceHome SavedPlaceKind = "home"
	PlaceWork SavedPlaceKind = "work"
)

type SavedPlace struct {
	UserID  string         `json:"-" gorm:"primaryKey;size:36"`
	Kind    SavedPlaceKind `json:"kind" gorm:"primaryKey;size:8"`
	Address string         `json:"address"`
}

// PopularDestination counts how often a user booked a ride to a location.
type PopularDestination struct {
	UserID   string `json:"-" gorm:"primaryKey;size:36"`
	Location string `json:"location" gorm:"primaryKey"`
	Count    int64  `json:"count"`
}
