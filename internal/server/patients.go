package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jitendrapal/pathology-v1/internal/service"
)

type patientInput struct {
	Title            string  `json:"title"`
	FirstName        string  `json:"first_name" binding:"required"`
	LastName         string  `json:"last_name" binding:"required"`
	Age              int     `json:"age" binding:"required,gte=0,lte=150"`
	Gender           string  `json:"gender" binding:"required,oneof=Male Female Other"`
	Phone            string  `json:"phone" binding:"required"`
	Email            *string `json:"email"`
	Address          string  `json:"address" binding:"required"`
	MedicalHistory   *string `json:"medical_history"`
	EmergencyContact *string `json:"emergency_contact"`
	HospitalName     *string `json:"hospital_name"`
	CollectedBy      *string `json:"collected_by"`
}

func (in patientInput) toService() service.RegisterInput {
	return service.RegisterInput{
		Title:            in.Title,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Age:              in.Age,
		Gender:           in.Gender,
		Phone:            in.Phone,
		Email:            in.Email,
		Address:          in.Address,
		MedicalHistory:   in.MedicalHistory,
		EmergencyContact: in.EmergencyContact,
		HospitalName:     in.HospitalName,
		CollectedBy:      in.CollectedBy,
	}
}

func (s *Server) registerPatient(c *gin.Context) {
	var input patientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	patient, err := s.registration.Register(c.Request.Context(), input.toService())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (s *Server) searchPatients(c *gin.Context) {
	patients, err := s.registration.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (s *Server) getPatient(c *gin.Context) {
	patient, err := s.registration.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	orders, err := s.orders.ListByPatient(c.Request.Context(), patient.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient, "orders": orders})
}

func (s *Server) updatePatient(c *gin.Context) {
	var input patientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	patient, err := s.registration.Update(c.Request.Context(), c.Param("id"), input.toService())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

type draftInput struct {
	Title            *string `json:"title"`
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Age              *int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	Gender           *string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
	MedicalHistory   *string `json:"medical_history"`
	EmergencyContact *string `json:"emergency_contact"`
	HospitalName     *string `json:"hospital_name"`
	CollectedBy      *string `json:"collected_by"`
}

func (s *Server) startDraft(c *gin.Context) {
	draft, err := s.registration.StartDraft(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

func (s *Server) updateDraft(c *gin.Context) {
	var input draftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	draft, err := s.registration.UpdateDraft(c.Request.Context(), c.Param("id"), service.DraftInput{
		Title:            input.Title,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Age:              input.Age,
		Gender:           input.Gender,
		Phone:            input.Phone,
		Email:            input.Email,
		Address:          input.Address,
		MedicalHistory:   input.MedicalHistory,
		EmergencyContact: input.EmergencyContact,
		HospitalName:     input.HospitalName,
		CollectedBy:      input.CollectedBy,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) commitDraft(c *gin.Context) {
	patient, err := s.registration.CommitDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}
