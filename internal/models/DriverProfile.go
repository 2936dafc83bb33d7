package models

// DriverProfile is created alongside a driver account at signup.
type DriverProfile struct {
	Record
	UserID     string `json:"user_id" gorm:"uniqueIndex;size:36"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DriverCode string `json:"driver_id"` // "DR-" + last 4 digits of the signup time
}
