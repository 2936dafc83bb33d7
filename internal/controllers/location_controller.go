package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxride/internal/geo"
)

type LocationController struct {
	resolver *geo.Resolver
}

func NewLocationController(resolver *geo.Resolver) *LocationController {
	return &LocationController{resolver: resolver}
}

// CurrentLocation turns the device's reported position into a pickup address.
func (lc *LocationController) CurrentLocation(c *gin.Context) {
	var pos geo.Position
	if err := c.ShouldBindJSON(&pos); err != nil {
		badRequest(c, err)
		return
	}
	loc, err := lc.resolver.Resolve(c.Request.Context(), pos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc})
}
