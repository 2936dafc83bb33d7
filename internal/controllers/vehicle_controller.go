package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxride/internal/fare"
	"luxride/internal/models"
)

// ListVehicles returns the catalog, most popular first.
func ListVehicles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vehicles": models.Catalog()})
}

// EstimateFare prices a pickup/destination pair for one tier, or for every
// tier when vehicle_type is omitted.
func EstimateFare(c *gin.Context) {
	pickup := c.Query("pickup")
	destination := c.Query("destination")
	if pickup == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pickup and destination are required"})
		return
	}

	if t := models.VehicleType(c.Query("vehicle_type")); t != "" {
		if _, ok := models.FindVehicle(t); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown vehicle type: " + string(t)})
			return
		}
		est := fare.Calculate(pickup, destination, t)
		est.Recommended = fare.Recommend(est.DistanceKm)
		c.JSON(http.StatusOK, gin.H{"estimate": est})
		return
	}

	fares := make(map[models.VehicleType]float64)
	var est fare.Estimate
	for _, v := range models.Catalog() {
		est = fare.Calculate(pickup, destination, v.Type)
		fares[v.Type] = est.Fare
	}
	c.JSON(http.StatusOK, gin.H{
		"distance_km":  est.DistanceKm,
		"duration_min": est.DurationMin,
		"recommended":  fare.Recommend(est.DistanceKm),
		"fares":        fares,
	})
}
