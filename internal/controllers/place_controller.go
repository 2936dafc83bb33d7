package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxride/internal/middleware"
	"luxride/internal/models"
	"luxride/internal/services"
)

type PlaceController struct {
	places *services.Places
}

func NewPlaceController(places *services.Places) *PlaceController {
	return &PlaceController{places: places}
}

type locationInput struct {
	Location string `json:"location"`
}

func (pc *PlaceController) ListFavorites(c *gin.Context) {
	favs, err := pc.places.Favorites(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}

func (pc *PlaceController) AddFavorite(c *gin.Context) {
	var input locationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	if err := pc.places.AddFavorite(c.Request.Context(), middleware.UserID(c), input.Location); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"location": input.Location})
}

func (pc *PlaceController) RemoveFavorite(c *gin.Context) {
	if err := pc.places.RemoveFavorite(c.Request.Context(), middleware.UserID(c), c.Query("location")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (pc *PlaceController) ListRecents(c *gin.Context) {
	recents, err := pc.places.Recents(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recents": recents})
}

func (pc *PlaceController) AddRecent(c *gin.Context) {
	var input locationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	if err := pc.places.AddRecent(c.Request.Context(), middleware.UserID(c), input.Location); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (pc *PlaceController) ListSavedPlaces(c *gin.Context) {
	saved, err := pc.places.SavedPlaces(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (pc *PlaceController) SavePlace(c *gin.Context) {
	var input struct {
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	kind := models.SavedPlaceKind(c.Param("kind"))
	sp, err := pc.places.SavePlace(c.Request.Context(), middleware.UserID(c), kind, input.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"place": sp})
}

func (pc *PlaceController) ListPopular(c *gin.Context) {
	top, err := pc.places.Popular(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"popular": top})
}

func (pc *PlaceController) Suggest(c *gin.Context) {
	got, err := pc.places.Suggest(c.Request.Context(), middleware.UserID(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": got})
}
