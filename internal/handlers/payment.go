package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
	"github.com/Elie-MK/eventBooking-microservice/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// Register mounts the payment routes under /api/payment.
func (h *PaymentHandler) Register(r gin.IRouter) {
	payments := r.Group("/api/payment")
	payments.GET("", h.ListPayments)
	payments.POST("", h.ProcessPayment)
	payments.GET("/booking/:bookingId", h.ListBookingPayments)
}

func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req models.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	payment, err := h.svc.Process(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) ListBookingPayments(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		badRequest(c, "invalid booking ID")
		return
	}

	payments, err := h.svc.GetByBooking(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
