package routes

import (
	"github.com/gin-gonic/gin"

	"luxride/internal/controllers"
)

// VehicleRoutes are public so the home page can price a ride before login.
func VehicleRoutes(r *gin.Engine) {
	r.GET("/vehicles", controllers.ListVehicles)
	r.GET("/fare/estimate", controllers.EstimateFare)
}
