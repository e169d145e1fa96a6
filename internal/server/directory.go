package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jitendrapal/pathology-v1/internal/service"
)

type hospitalInput struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type collectorInput struct {
	Name       string  `json:"name" binding:"required"`
	EmployeeID *string `json:"employee_id"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

func (s *Server) addHospital(c *gin.Context) {
	var input hospitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	hospital, err := s.directory.AddHospital(c.Request.Context(), service.HospitalInput{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hospital)
}

func (s *Server) listHospitals(c *gin.Context) {
	hospitals, err := s.directory.ListHospitals(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

func (s *Server) addCollector(c *gin.Context) {
	var input collectorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	collector, err := s.directory.AddCollector(c.Request.Context(), service.CollectorInput{
		Name:       input.Name,
		EmployeeID: input.EmployeeID,
		Phone:      input.Phone,
		Email:      input.Email,
		Department: input.Department,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, collector)
}

func (s *Server) listCollectors(c *gin.Context) {
	collectors, err := s.directory.ListCollectors(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, collectors)
}
