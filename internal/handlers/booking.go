package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
	"github.com/Elie-MK/eventBooking-microservice/internal/pricing"
	"github.com/Elie-MK/eventBooking-microservice/internal/service"
)

type BookingHandler struct {
	svc *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Register mounts the booking routes under /api/bookings.
func (h *BookingHandler) Register(r gin.IRouter) {
	bookings := r.Group("/api/bookings")
	bookings.GET("", h.ListBookings)
	bookings.POST("", h.CreateBooking)
	bookings.GET("/:id", h.GetBooking)
	bookings.PUT("/:id/cancel", h.CancelBooking)
	bookings.GET("/user/:userId", h.ListUserBookings)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid booking ID")
		return
	}

	booking, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if booking == nil {
		notFound(c, "booking not found")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	bookings, err := h.svc.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if !pricing.Known(req.Category) {
		badRequest(c, fmt.Sprintf("category must be one of %v", pricing.Categories()))
		return
	}

	booking, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// CancelBooking answers 202 with kind BOOKING_CANCELLED on success.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid booking ID")
		return
	}

	result, err := h.svc.Cancel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": fmt.Sprintf("booking %d was cancelled", result.Booking.ID),
		"kind":    string(result.Outcome),
	})
}
