package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jitendrapal/pathology-v1/internal/service"
	"github.com/shopspring/decimal"
)

type paymentInput struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Method          string          `json:"payment_method" binding:"omitempty,oneof=cash card upi bank_transfer"`
	Type            string          `json:"payment_type" binding:"omitempty,oneof=advance partial full remaining final"`
	ReferenceNumber *string         `json:"reference_number"`
	Notes           *string         `json:"notes"`
	RecordedBy      *string         `json:"recorded_by"`
}

func (in paymentInput) toService() service.PaymentInput {
	return service.PaymentInput{
		Amount:          in.Amount,
		Method:          in.Method,
		Type:            in.Type,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		RecordedBy:      in.RecordedBy,
	}
}

type discountInput struct {
	Percentage *decimal.Decimal `json:"percentage"`
	Amount     *decimal.Decimal `json:"amount"`
}

type dueDateInput struct {
	DueDate *time.Time `json:"due_date"`
}

// getPatientBilling returns the bill, the payment history and the orders
// behind the charges in one payload, the billing page's single fetch.
func (s *Server) getPatientBilling(c *gin.Context) {
	patientID := c.Param("id")

	bill, err := s.billing.GetBill(c.Request.Context(), patientID)
	if err != nil {
		writeError(c, err)
		return
	}

	payments, err := s.billing.ListPayments(c.Request.Context(), patientID)
	if err != nil {
		writeError(c, err)
		return
	}

	orders, err := s.orders.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bill":     bill,
		"payments": payments,
		"orders":   orders,
	})
}

func (s *Server) getBalance(c *gin.Context) {
	balance, err := s.billing.GetBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (s *Server) addPayment(c *gin.Context) {
	var input paymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	payment, bill, err := s.billing.AddPayment(c.Request.Context(), c.Param("id"), input.toService())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment": payment, "bill": bill})
}

func (s *Server) applyDiscount(c *gin.Context) {
	var input discountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	bill, err := s.billing.ApplyDiscount(c.Request.Context(), c.Param("id"), service.DiscountInput{
		Percentage: input.Percentage,
		Amount:     input.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (s *Server) setDueDate(c *gin.Context) {
	var input dueDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	bill, err := s.billing.SetDueDate(c.Request.Context(), c.Param("id"), input.DueDate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}
