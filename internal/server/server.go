package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jitendrapal/pathology-v1/internal/models"
	"github.com/jitendrapal/pathology-v1/internal/repository"
	"github.com/jitendrapal/pathology-v1/internal/service"
)

// The handler layer depends on these narrow views of the services so the
// HTTP tests can substitute fakes.

type RegistrationAPI interface {
	Register(ctx context.Context, input service.RegisterInput) (*models.Patient, error)
	Get(ctx context.Context, id string) (*models.Patient, error)
	Search(ctx context.Context, term string) ([]models.Patient, error)
	Update(ctx context.Context, id string, input service.RegisterInput) (*models.Patient, error)
	StartDraft(ctx context.Context) (*models.RegistrationDraft, error)
	UpdateDraft(ctx context.Context, id string, input service.DraftInput) (*models.RegistrationDraft, error)
	CommitDraft(ctx context.Context, id string) (*models.Patient, error)
}

type CatalogAPI interface {
	CreateTest(ctx context.Context, input service.TestInput) (*models.LabTest, error)
	UpdateTest(ctx context.Context, id string, input service.TestInput) (*models.LabTest, error)
	GetTest(ctx context.Context, id string) (*models.LabTest, error)
	ListTests(ctx context.Context) ([]models.LabTest, error)
}

type OrderAPI interface {
	Assign(ctx context.Context, input service.AssignInput) (*service.AssignResult, error)
	Get(ctx context.Context, id string) (*models.TestOrder, error)
	List(ctx context.Context, filter repository.OrderFilter) ([]models.TestOrder, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.TestOrder, error)
	Update(ctx context.Context, id string, input service.UpdateOrderInput) (*models.TestOrder, error)
}

type BillingAPI interface {
	AddPayment(ctx context.Context, patientID string, input service.PaymentInput) (*models.Payment, *models.Bill, error)
	ApplyDiscount(ctx context.Context, patientID string, input service.DiscountInput) (*models.Bill, error)
	SetDueDate(ctx context.Context, patientID string, dueDate *time.Time) (*models.Bill, error)
	GetBalance(ctx context.Context, patientID string) (*service.Balance, error)
	GetBill(ctx context.Context, patientID string) (*models.Bill, error)
	ListPayments(ctx context.Context, patientID string) ([]models.Payment, error)
}

type ReportAPI interface {
	Summary(ctx context.Context, patientID string) (*service.PatientSummary, error)
	TestReport(ctx context.Context, orderID string) (*service.PrintableReport, error)
	PatientReport(ctx context.Context, patientID string) (*service.PrintableReport, error)
}

type DirectoryAPI interface {
	AddHospital(ctx context.Context, input service.HospitalInput) (*models.Hospital, error)
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	AddCollector(ctx context.Context, input service.CollectorInput) (*models.SampleCollector, error)
	ListCollectors(ctx context.Context) ([]models.SampleCollector, error)
}

// Server wires the services into the gin router.
type Server struct {
	registration RegistrationAPI
	catalog      CatalogAPI
	orders       OrderAPI
	billing      BillingAPI
	reports      ReportAPI
	directory    DirectoryAPI
}

func New(
	registration RegistrationAPI,
	catalog CatalogAPI,
	orders OrderAPI,
	billing BillingAPI,
	reports ReportAPI,
	directory DirectoryAPI,
) *Server {
	return &Server{
		registration: registration,
		catalog:      catalog,
		orders:       orders,
		billing:      billing,
		reports:      reports,
		directory:    directory,
	}
}

// Router builds the full route table.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		patients := api.Group("/patients")
		{
			patients.POST("", s.registerPatient)
			patients.GET("", s.searchPatients)
			patients.GET("/:id", s.getPatient)
			patients.PUT("/:id", s.updatePatient)
			patients.GET("/:id/billing", s.getPatientBilling)
			patients.GET("/:id/balance", s.getBalance)
			patients.POST("/:id/payments", s.addPayment)
			patients.PUT("/:id/discount", s.applyDiscount)
			patients.PUT("/:id/due-date", s.setDueDate)
			patients.GET("/:id/report", s.getPatientReport)
		}

		drafts := api.Group("/registration-drafts")
		{
			drafts.POST("", s.startDraft)
			drafts.PUT("/:id", s.updateDraft)
			drafts.POST("/:id/commit", s.commitDraft)
		}

		tests := api.Group("/tests")
		{
			tests.POST("", s.createTest)
			tests.GET("", s.listTests)
			tests.GET("/:id", s.getTest)
			tests.PUT("/:id", s.updateTest)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", s.assignTests)
			orders.GET("", s.listOrders)
			orders.GET("/:id", s.getOrder)
			orders.PUT("/:id", s.updateOrder)
			orders.GET("/:id/report", s.getOrderReport)
		}

		hospitals := api.Group("/hospitals")
		{
			hospitals.POST("", s.addHospital)
			hospitals.GET("", s.listHospitals)
		}

		collectors := api.Group("/collectors")
		{
			collectors.POST("", s.addCollector)
			collectors.GET("", s.listCollectors)
		}
	}

	return r
}
