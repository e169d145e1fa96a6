package service

import (
	"context"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"github.com/jitendrapal/pathology-v1/internal/repository"
	"github.com/shopspring/decimal"
)

// PatientSummary is the per-patient statistics block on reports.
type PatientSummary struct {
	Patient         *models.Patient    `json:"patient"`
	TotalTests      int                `json:"total_tests"`
	PendingTests    int                `json:"pending_tests"`
	CompletedTests  int                `json:"completed_tests"`
	CancelledTests  int                `json:"cancelled_tests"`
	TotalCost       decimal.Decimal    `json:"total_cost"`
	PaidAmount      decimal.Decimal    `json:"paid_amount"`
	RemainingAmount decimal.Decimal    `json:"remaining_amount"`
	BillStatus      string             `json:"bill_status"`
	Orders          []models.TestOrder `json:"orders"`
}

// PrintableReport is the payload behind the print views: only handed out
// once the work is done and the money collected.
type PrintableReport struct {
	Patient        *models.Patient    `json:"patient"`
	CompletedTests []models.TestOrder `json:"completed_tests"`
	Bill           *models.Bill       `json:"bill,omitempty"`
	Payments       []models.Payment   `json:"payments"`
}

// ReportService aggregates read-only report views. It reads the store
// directly; no ledger logic runs here.
type ReportService struct {
	patients PatientStore
	orders   OrderStore
	bills    BillStore
	payments PaymentStore
}

func NewReportService(
	patients PatientStore,
	orders OrderStore,
	bills BillStore,
	payments PaymentStore,
) *ReportService {
	return &ReportService{
		patients: patients,
		orders:   orders,
		bills:    bills,
		payments: payments,
	}
}

// Summary builds the per-patient statistics view. A patient without a
// bill reads as nothing paid, everything outstanding.
func (s *ReportService) Summary(ctx context.Context, patientID string) (*PatientSummary, error) {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	orders, err := s.orders.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	summary := &PatientSummary{
		Patient:    patient,
		TotalTests: len(orders),
		Orders:     orders,
		BillStatus: models.BillStatusPending,
	}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			summary.PendingTests++
		case models.OrderStatusCompleted:
			summary.CompletedTests++
		case models.OrderStatusCancelled:
			summary.CancelledTests++
		}
		if o.Status != models.OrderStatusCancelled {
			summary.TotalCost = summary.TotalCost.Add(o.Price)
		}
	}
	summary.RemainingAmount = summary.TotalCost

	bill, err := s.bills.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if bill != nil {
		summary.PaidAmount = bill.PaidAmount
		summary.RemainingAmount = bill.RemainingAmount
		summary.BillStatus = bill.Status
	}
	return summary, nil
}

// TestReport returns the printable report anchored on one order. The
// order must be completed and the patient's bill settled.
func (s *ReportService) TestReport(ctx context.Context, orderID string) (*PrintableReport, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusCompleted {
		return nil, ErrReportNotReady
	}
	return s.printableFor(ctx, order.PatientID)
}

// PatientReport returns the comprehensive printable report across all of
// a patient's completed tests.
func (s *ReportService) PatientReport(ctx context.Context, patientID string) (*PrintableReport, error) {
	report, err := s.printableFor(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(report.CompletedTests) == 0 {
		return nil, ErrReportNotReady
	}
	return report, nil
}

func (s *ReportService) printableFor(ctx context.Context, patientID string) (*PrintableReport, error) {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	bill, err := s.bills.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if bill != nil && bill.RemainingAmount.IsPositive() {
		return nil, ErrReportNotReady
	}

	completed, err := s.orders.List(ctx, repository.OrderFilter{
		PatientID: patientID,
		Status:    models.OrderStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &PrintableReport{
		Patient:        patient,
		CompletedTests: completed,
		Bill:           bill,
		Payments:       payments,
	}, nil
}
