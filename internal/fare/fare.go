// Package fare turns a pickup/destination pair and a vehicle tier into a
// distance, duration and price estimate.
//
// Distances are a heuristic over the input strings, not a route. The same
// inputs always produce the same estimate.
package fare

import (
	"math"
	"unicode/utf8"

	"luxride/internal/models"
)

const (
	BaseFare      = 10.0
	PerMinuteRate = 0.5
	// MinutesPerKm encodes a flat 30 km/h.
	MinutesPerKm = 2.0

	minDistanceKm  = 5
	distanceSpread = 20

	longTripKm = 15.0
)

// Estimate is what a rider sees before booking.
type Estimate struct {
	DistanceKm  float64            `json:"distance_km"`
	DurationMin int                `json:"duration_min"`
	Fare        float64            `json:"fare"`
	Recommended models.VehicleType `json:"recommended,omitempty"`
}

// EstimateDistance returns (runes(pickup+destination) mod 20) + 5 km.
func EstimateDistance(pickup, destination string) float64 {
	n := utf8.RuneCountInString(pickup + destination)
	return float64(n%distanceSpread + minDistanceKm)
}

// Duration rounds the travel time of d km to whole minutes.
func Duration(d float64) int {
	return int(math.Round(d * MinutesPerKm))
}

// Fare prices d km in the given tier. Unknown tiers price at zero.
func Fare(d float64, tier models.VehicleType) float64 {
	v, ok := models.FindVehicle(tier)
	if !ok {
		return 0
	}
	return BaseFare + d*v.RatePerKm + float64(Duration(d))*PerMinuteRate
}

// Recommend picks a tier for a trip of d km.
func Recommend(d float64) models.VehicleType {
	if d > longTripKm {
		return models.VehiclePremium
	}
	return models.VehicleStandard
}

// Calculate estimates a ride. Empty locations short-circuit to a zero
// estimate; an empty or unknown tier still yields distance and duration.
func Calculate(pickup, destination string, tier models.VehicleType) Estimate {
	if pickup == "" || destination == "" {
		return Estimate{}
	}
	d := EstimateDistance(pickup, destination)
	return Estimate{
		DistanceKm:  d,
		DurationMin: Duration(d),
		Fare:        Fare(d, tier),
		Recommended: Recommend(d),
	}
}
