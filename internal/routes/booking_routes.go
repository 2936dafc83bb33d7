package routes

import (
	"github.com/gin-gonic/gin"

	"luxride/internal/controllers"
	"luxride/internal/middleware"
)

func BookingRoutes(r *gin.Engine, bc *controllers.BookingController, auth *middleware.Auth) {
	draft := r.Group("/booking/draft")
	draft.Use(auth.RequireAuth())
	{
		draft.GET("", bc.GetDraft)
		draft.PUT("", bc.UpdateDraft)
		draft.DELETE("", bc.CancelDraft)
		draft.POST("/next", bc.NextStep)
		draft.POST("/back", bc.PreviousStep)
		draft.POST("/confirm", bc.ConfirmBooking)
	}

	bookings := r.Group("/bookings")
	bookings.Use(auth.RequireAuth())
	{
		bookings.GET("", bc.ListBookings)
		bookings.GET("/:id", bc.GetBooking)
		bookings.GET("/:id/receipt.txt", bc.DownloadReceipt)
		bookings.POST("/:id/cancel", bc.CancelBooking)
	}

	r.GET("/trips", auth.RequireAuth(), bc.ListTrips)
}
