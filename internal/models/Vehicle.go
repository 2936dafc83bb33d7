package models

import "sort"

// VehicleType names one of the four fixed tiers.
type VehicleType string

const (
	VehicleStandard VehicleType = "standard"
	VehiclePremium  VehicleType = "premium"
	VehicleLuxury   VehicleType = "luxury"
	VehicleXL       VehicleType = "xl"
)

// Vehicle is a catalog entry. The catalog is compiled in and never persisted.
type Vehicle struct {
	Type       VehicleType `json:"type"`
	Name       string      `json:"name"`
	RatePerKm  float64     `json:"rate_per_km"`
	Capacity   int         `json:"capacity"`
	Image      string      `json:"image"`
	Features   []string    `json:"features"`
	Details    string      `json:"details"`
	Badge      string      `json:"badge"`
	Popularity int         `json:"popularity"`
}

var catalog = []Vehicle{
	{
		Type:       VehicleStandard,
		Name:       "Standard Sedan",
		RatePerKm:  2.5,
		Capacity:   4,
		Image:      "https://images.pexels.com/photos/1719648/pexels-photo-1719648.jpeg?auto=compress&cs=tinysrgb&w=800",
		Features:   []string{"AC", "Music", "Charging"},
		Details:    "Perfect for everyday rides. Comfortable seating for up to 4 passengers with ample luggage space.",
		Badge:      "Popular",
		Popularity: 85,
	},
	{
		Type:       VehiclePremium,
		Name:       "Premium SUV",
		RatePerKm:  3.5,
		Capacity:   6,
		Image:      "https://images.pexels.com/photos/3764988/pexels-photo-3764988.jpeg?auto=compress&cs=tinysrgb&w=800",
		Features:   []string{"Leather", "WiFi", "Drinks"},
		Details:    "Luxury and comfort for a premium experience. Ideal for business trips or special occasions.",
		Badge:      "Premium",
		Popularity: 60,
	},
	{
		Type:       VehicleLuxury,
		Name:       "Luxury Van",
		RatePerKm:  4.0,
		Capacity:   8,
		Image:      "https://images.pexels.com/photos/358070/pexels-photo-358070.jpeg?auto=compress&cs=tinysrgb&w=800",
		Features:   []string{"Spacious", "Luggage", "Safety"},
		Details:    "Spacious and robust, perfect for groups or extra luggage.",
		Badge:      "Adventure",
		Popularity: 70,
	},
	{
		Type:       VehicleXL,
		Name:       "XL Executive",
		RatePerKm:  5.0,
		Capacity:   10,
		Image:      "https://images.pexels.com/photos/116675/pexels-photo-116675.jpeg?auto=compress&cs=tinysrgb&w=800",
		Features:   []string{"Extra Space", "Luggage", "Party"},
		Details:    "Extra-large vehicle for big groups or lots of luggage.",
		Badge:      "Group",
		Popularity: 40,
	},
}

// Catalog returns a copy of the vehicle catalog, most popular first.
func Catalog() []Vehicle {
	out := make([]Vehicle, len(catalog))
	for i, v := range catalog {
		v.Features = append([]string(nil), v.Features...)
		out[i] = v
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	return out
}

// FindVehicle looks up a tier in the catalog.
func FindVehicle(t VehicleType) (Vehicle, bool) {
	for _, v := range catalog {
		if v.Type == t {
			v.Features = append([]string(nil), v.Features...)
			return v, true
		}
	}
	return Vehicle{}, false
}
