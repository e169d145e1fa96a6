package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jitendrapal/pathology-v1/internal/service"
	"github.com/shopspring/decimal"
)

type testInput struct {
	Name           string          `json:"name" binding:"required"`
	Description    *string         `json:"description"`
	NormalRange    *string         `json:"normal_range"`
	NormalRangeMin *float64        `json:"normal_range_min"`
	NormalRangeMax *float64        `json:"normal_range_max"`
	Unit           string          `json:"unit"`
	Price          decimal.Decimal `json:"price"`
	Category       *string         `json:"category"`
}

func (in testInput) toService() service.TestInput {
	return service.TestInput{
		Name:           in.Name,
		Description:    in.Description,
		NormalRange:    in.NormalRange,
		NormalRangeMin: in.NormalRangeMin,
		NormalRangeMax: in.NormalRangeMax,
		Unit:           in.Unit,
		Price:          in.Price,
		Category:       in.Category,
	}
}

func (s *Server) createTest(c *gin.Context) {
	var input testInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	test, err := s.catalog.CreateTest(c.Request.Context(), input.toService())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, test)
}

func (s *Server) updateTest(c *gin.Context) {
	var input testInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	test, err := s.catalog.UpdateTest(c.Request.Context(), c.Param("id"), input.toService())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (s *Server) getTest(c *gin.Context) {
	test, err := s.catalog.GetTest(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (s *Server) listTests(c *gin.Context) {
	tests, err := s.catalog.ListTests(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}
