package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jitendrapal/pathology-v1/internal/service"
)

// writeError maps the service sentinels onto HTTP statuses. Anything
// unrecognized is a 500 with the detail kept server-side.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrDraftIncomplete),
		errors.Is(err, service.ErrOrderNotCancelable),
		errors.Is(err, service.ErrOrderCancelled):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPatientNotFound),
		errors.Is(err, service.ErrTestNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrDraftNotFound),
		errors.Is(err, service.ErrNoBillFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrOverpaymentRejected),
		errors.Is(err, service.ErrDuplicatePhone),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrReportNotReady):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input data: " + err.Error()})
}
