package routes

import (
	"github.com/gin-gonic/gin"

	"luxride/internal/controllers"
	"luxride/internal/middleware"
)

func ScheduleRoutes(r *gin.Engine, sc *controllers.ScheduleController, auth *middleware.Auth) {
	scheduled := r.Group("/scheduled")
	scheduled.Use(auth.RequireAuth())
	{
		scheduled.POST("", sc.CreateScheduledRide)
		scheduled.GET("", sc.ListScheduledRides)
	}

	ratings := r.Group("/ratings")
	ratings.Use(auth.RequireAuth())
	{
		ratings.POST("", sc.SubmitRating)
		ratings.GET("", sc.ListRatings)
	}
}
