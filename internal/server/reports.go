package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getPatientReport serves both the statistics summary and, with
// ?printable=true, the gated printable payload.
func (s *Server) getPatientReport(c *gin.Context) {
	patientID := c.Param("id")

	if c.Query("printable") == "true" {
		report, err := s.reports.PatientReport(c.Request.Context(), patientID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	summary, err := s.reports.Summary(c.Request.Context(), patientID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) getOrderReport(c *gin.Context) {
	report, err := s.reports.TestReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
