package services

import (
	"fmt"
	"strings"

	"luxride/internal/fare"
	"luxride/internal/models"
)

// Receipt is the fare breakdown of one booking.
type Receipt struct {
	Booking        models.Booking `json:"booking"`
	BaseFare       float64        `json:"base_fare"`
	DistanceCharge float64        `json:"distance_charge"`
	TimeCharge     float64        `json:"time_charge"`
	Total          float64        `json:"total"`
	PaymentMethod  string         `json:"payment_method"`
	Driver         string         `json:"driver"`
}

func NewReceipt(b models.Booking) Receipt {
	var perKm float64
	if v, ok := models.FindVehicle(b.VehicleType); ok {
		perKm = v.RatePerKm
	}
	return Receipt{
		Booking:        b,
		BaseFare:       fare.BaseFare,
		DistanceCharge: b.Distance * perKm,
		TimeCharge:     float64(b.Duration) * fare.PerMinuteRate,
		Total:          b.Price,
		PaymentMethod:  "Cash/Card",
		Driver:         "Assigned Driver",
	}
}

// Filename is the download name of the text receipt.
func (r Receipt) Filename() string {
	return "luxride-receipt-" + r.Booking.ID + ".txt"
}

// Text renders the downloadable plain-text receipt.
func (r Receipt) Text() string {
	b := r.Booking
	var sb strings.Builder
	fmt.Fprintln(&sb, "LUXRIDE RECEIPT")
	fmt.Fprintln(&sb, "==============================")
	fmt.Fprintln(&sb)
	fmt.Fprintf(&sb, "Booking ID: %s\n", b.ID)
	fmt.Fprintf(&sb, "Date: %s\n", b.Datetime.Format("Jan 2, 2006, 3:04 PM"))
	fmt.Fprintf(&sb, "Status: %s\n", strings.ToUpper(string(b.Status)))
	fmt.Fprintln(&sb)
	fmt.Fprintf(&sb, "PICKUP LOCATION\n%s\n\n", b.Pickup)
	fmt.Fprintf(&sb, "DESTINATION\n%s\n\n", b.Destination)
	fmt.Fprintf(&sb, "VEHICLE\n%s\n\n", b.VehicleName)
	fmt.Fprintln(&sb, "FARE BREAKDOWN")
	fmt.Fprintf(&sb, "Base Fare: $%.2f\n", r.BaseFare)
	fmt.Fprintf(&sb, "Distance: %g km\n", b.Distance)
	fmt.Fprintf(&sb, "Time: %d min\n", b.Duration)
	fmt.Fprintln(&sb, "--------------------------------")
	fmt.Fprintf(&sb, "TOTAL: $%.2f\n", r.Total)
	fmt.Fprintln(&sb)
	fmt.Fprintf(&sb, "Payment Method: %s\n", r.PaymentMethod)
	fmt.Fprintf(&sb, "Driver: %s\n", r.Driver)
	fmt.Fprintln(&sb)
	fmt.Fprintln(&sb, "Thank you for choosing Luxride!")
	return sb.String()
}
