package routes

import (
	"github.com/gin-gonic/gin"

	"luxride/internal/controllers"
	"luxride/internal/middleware"
)

func PlaceRoutes(r *gin.Engine, pc *controllers.PlaceController, lc *controllers.LocationController, auth *middleware.Auth) {
	places := r.Group("/places")
	places.Use(auth.RequireAuth())
	{
		places.GET("/favorites", pc.ListFavorites)
		places.POST("/favorites", pc.AddFavorite)
		places.DELETE("/favorites", pc.RemoveFavorite)
		places.GET("/recents", pc.ListRecents)
		places.POST("/recents", pc.AddRecent)
		places.GET("/saved", pc.ListSavedPlaces)
		places.PUT("/saved/:kind", pc.SavePlace)
		places.GET("/popular", pc.ListPopular)
		places.GET("/suggestions", pc.Suggest)
	}

	r.POST("/location/current", auth.RequireAuth(), lc.CurrentLocation)
}
