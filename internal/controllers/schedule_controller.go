package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxride/internal/middleware"
	"luxride/internal/services"
)

type ScheduleController struct {
	schedules *services.Schedules
	ratings   *services.Ratings
}

func NewScheduleController(schedules *services.Schedules, ratings *services.Ratings) *ScheduleController {
	return &ScheduleController{schedules: schedules, ratings: ratings}
}

func (sc *ScheduleController) CreateScheduledRide(c *gin.Context) {
	var input services.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	ride, err := sc.schedules.Create(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ride": ride})
}

// ListScheduledRides returns upcoming rides only; past ones are dropped.
func (sc *ScheduleController) ListScheduledRides(c *gin.Context) {
	rides, err := sc.schedules.ListActive(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rides": rides})
}

func (sc *ScheduleController) SubmitRating(c *gin.Context) {
	var input services.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	rating, err := sc.ratings.Submit(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rating": rating})
}

func (sc *ScheduleController) ListRatings(c *gin.Context) {
	list, err := sc.ratings.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": list})
}
