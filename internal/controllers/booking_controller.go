package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxride/internal/middleware"
	"luxride/internal/services"
)

type BookingController struct {
	bookings *services.Bookings
}

func NewBookingController(bookings *services.Bookings) *BookingController {
	return &BookingController{bookings: bookings}
}

func (bc *BookingController) GetDraft(c *gin.Context) {
	draft, err := bc.bookings.Draft(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (bc *BookingController) UpdateDraft(c *gin.Context) {
	var input services.DraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	draft, err := bc.bookings.UpdateDraft(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (bc *BookingController) NextStep(c *gin.Context) {
	draft, err := bc.bookings.Next(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error(), "draft": draft})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (bc *BookingController) PreviousStep(c *gin.Context) {
	draft, err := bc.bookings.Back(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (bc *BookingController) CancelDraft(c *gin.Context) {
	if err := bc.bookings.CancelDraft(c.Request.Context(), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (bc *BookingController) ConfirmBooking(c *gin.Context) {
	b, err := bc.bookings.Confirm(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b, "trip": b.Trip()})
}

func (bc *BookingController) ListBookings(c *gin.Context) {
	list, err := bc.bookings.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

func (bc *BookingController) ListTrips(c *gin.Context) {
	trips, err := bc.bookings.Trips(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GetBooking returns the booking with its fare breakdown.
func (bc *BookingController) GetBooking(c *gin.Context) {
	b, err := bc.bookings.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": services.NewReceipt(*b)})
}

func (bc *BookingController) DownloadReceipt(c *gin.Context) {
	b, err := bc.bookings.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	r := services.NewReceipt(*b)
	c.Header("Content-Disposition", `attachment; filename="`+r.Filename()+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(r.Text()))
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	b, err := bc.bookings.Cancel(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
