package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Elie-MK/eventBooking-microservice/internal/pricing"
	"github.com/Elie-MK/eventBooking-microservice/internal/service"
)

// Stable error kinds returned in the "kind" field of error bodies.
const (
	KindNotFound              = "NOT_FOUND"
	KindEventNotFound         = "EVENT_NOT_FOUND"
	KindBookingNotFound       = "BOOKING_NOT_FOUND"
	KindAlreadyCancelled      = "ALREADY_CANCELLED"
	KindBookingCancelled      = "BOOKING_CANCELLED"
	KindUnknownCategory       = "UNKNOWN_CATEGORY"
	KindInvalidRequest        = "INVALID_REQUEST"
	KindDependencyUnavailable = "DEPENDENCY_UNAVAILABLE"
	KindInternal              = "INTERNAL"
)

var errorKinds = []struct {
	err    error
	status int
	kind   string
}{
	{service.ErrEventNotFound, http.StatusNotFound, KindEventNotFound},
	{service.ErrBookingNotFound, http.StatusNotFound, KindBookingNotFound},
	{service.ErrPaymentNotFound, http.StatusNotFound, KindNotFound},
	{service.ErrAlreadyCancelled, http.StatusConflict, KindAlreadyCancelled},
	{service.ErrBookingCancelled, http.StatusConflict, KindBookingCancelled},
	{service.ErrInvalidQuantity, http.StatusBadRequest, KindInvalidRequest},
	{service.ErrDependencyUnavailable, http.StatusServiceUnavailable, KindDependencyUnavailable},
	{pricing.ErrUnknownCategory, http.StatusInternalServerError, KindUnknownCategory},
}

// classify maps an error to its HTTP status and kind.
func classify(err error) (int, string) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.status, k.kind
		}
	}
	return http.StatusInternalServerError, KindInternal
}

func respondError(c *gin.Context, err error) {
	status, kind := classify(err)
	if status >= http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "kind": KindInvalidRequest})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg, "kind": KindNotFound})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️ Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, map[string]string{"error": msg, "kind": kind})
}
