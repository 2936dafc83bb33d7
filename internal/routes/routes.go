package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxride/internal/controllers"
	"luxride/internal/middleware"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Booking  *controllers.BookingController
	Inbox    *controllers.InboxController
	Place    *controllers.PlaceController
	Schedule *controllers.ScheduleController
	Location *controllers.LocationController
	Socket   *controllers.SocketController
}

// SetupRouter mounts every route on r.
func SetupRouter(r *gin.Engine, ctl Controllers, auth *middleware.Auth) *gin.Engine {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	AuthRoutes(r, ctl.Auth, auth)
	VehicleRoutes(r)
	BookingRoutes(r, ctl.Booking, auth)
	InboxRoutes(r, ctl.Inbox, auth)
	PlaceRoutes(r, ctl.Place, ctl.Location, auth)
	ScheduleRoutes(r, ctl.Schedule, auth)
	WebSocketRoutes(r, ctl.Socket)

	return r
}
