package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jitendrapal/pathology-v1/internal/repository"
	"github.com/jitendrapal/pathology-v1/internal/service"
)

type assignInput struct {
	PatientID       string        `json:"patient_id" binding:"required"`
	TestIDs         []string      `json:"test_ids" binding:"required,min=1"`
	SampleCollector *string       `json:"sample_collector"`
	Notes           *string       `json:"notes"`
	OrderedAt       *time.Time    `json:"ordered_at"`
	Advance         *paymentInput `json:"advance"`
}

type updateOrderInput struct {
	Status          *string `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	Results         *string `json:"results"`
	Notes           *string `json:"notes"`
	SampleCollector *string `json:"sample_collector"`
}

func (s *Server) assignTests(c *gin.Context) {
	var input assignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	assign := service.AssignInput{
		PatientID:       input.PatientID,
		TestIDs:         input.TestIDs,
		SampleCollector: input.SampleCollector,
		Notes:           input.Notes,
		OrderedAt:       input.OrderedAt,
	}
	if input.Advance != nil {
		advance := input.Advance.toService()
		assign.Advance = &advance
	}

	result, err := s.orders.Assign(c.Request.Context(), assign)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) listOrders(c *gin.Context) {
	filter := repository.OrderFilter{
		Status:    c.Query("status"),
		PatientID: c.Query("patient_id"),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
			return
		}
		filter.To = &t
	}

	orders, err := s.orders.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) updateOrder(c *gin.Context) {
	var input updateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	order, err := s.orders.Update(c.Request.Context(), c.Param("id"), service.UpdateOrderInput{
		Status:          input.Status,
		Results:         input.Results,
		Notes:           input.Notes,
		SampleCollector: input.SampleCollector,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
