package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"github.com/jitendrapal/pathology-v1/internal/repository"
)

type mockOrderStore struct {
	getByIDFunc       func(ctx context.Context, id string) (*models.TestOrder, error)
	listFunc          func(ctx context.Context, filter repository.OrderFilter) ([]models.TestOrder, error)
	listByPatientFunc func(ctx context.Context, patientID string) ([]models.TestOrder, error)
}

func (m *mockOrderStore) GetByID(ctx context.Context, id string) (*models.TestOrder, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrderStore) List(ctx context.Context, filter repository.OrderFilter) ([]models.TestOrder, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockOrderStore) ListByPatient(ctx context.Context, patientID string) ([]models.TestOrder, error) {
	if m.listByPatientFunc != nil {
		return m.listByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

type mockBillStore struct {
	getByPatientFunc func(ctx context.Context, patientID string) (*models.Bill, error)
}

func (m *mockBillStore) GetByPatient(ctx context.Context, patientID string) (*models.Bill, error) {
	if m.getByPatientFunc != nil {
		return m.getByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

type mockPaymentStore struct {
	listByPatientFunc func(ctx context.Context, patientID string) ([]models.Payment, error)
}

func (m *mockPaymentStore) ListByPatient(ctx context.Context, patientID string) ([]models.Payment, error) {
	if m.listByPatientFunc != nil {
		return m.listByPatientFunc(ctx, patientID)
	}
	return nil, nil
}

func foundPatient(id string) *mockPatientStore {
	return &mockPatientStore{
		getByIDFunc: func(ctx context.Context, got string) (*models.Patient, error) {
			if got != id {
				return nil, nil
			}
			return &models.Patient{ID: id, FirstName: "Jane", LastName: "Doe"}, nil
		},
	}
}

func TestSummary_CountsAndCostExcludeCancelled(t *testing.T) {
	orders := &mockOrderStore{
		listByPatientFunc: func(ctx context.Context, patientID string) ([]models.TestOrder, error) {
			return []models.TestOrder{
				{ID: "o1", Status: models.OrderStatusCompleted, Price: dec("300")},
				{ID: "o2", Status: models.OrderStatusPending, Price: dec("500")},
				{ID: "o3", Status: models.OrderStatusCancelled, Price: dec("200")},
			}, nil
		},
	}
	bills := &mockBillStore{
		getByPatientFunc: func(ctx context.Context, patientID string) (*models.Bill, error) {
			return &models.Bill{
				PatientID:       patientID,
				TotalAmount:     dec("800"),
				PaidAmount:      dec("300"),
				RemainingAmount: dec("500"),
				Status:          models.BillStatusPartial,
			}, nil
		},
	}
	svc := NewReportService(foundPatient("p1"), orders, bills, &mockPaymentStore{})

	summary, err := svc.Summary(context.Background(), "p1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.TotalTests != 3 || summary.PendingTests != 1 ||
		summary.CompletedTests != 1 || summary.CancelledTests != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if !summary.TotalCost.Equal(dec("800")) {
		t.Errorf("expected total cost 800 excluding cancelled, got %s", summary.TotalCost)
	}
	if !summary.PaidAmount.Equal(dec("300")) || !summary.RemainingAmount.Equal(dec("500")) {
		t.Error("expected paid/remaining taken from the bill")
	}
	if summary.BillStatus != models.BillStatusPartial {
		t.Errorf("expected partial status, got %q", summary.BillStatus)
	}
}

func TestSummary_NoBillReadsAllOutstanding(t *testing.T) {
	orders := &mockOrderStore{
		listByPatientFunc: func(ctx context.Context, patientID string) ([]models.TestOrder, error) {
			return []models.TestOrder{
				{ID: "o1", Status: models.OrderStatusPending, Price: dec("250")},
			}, nil
		},
	}
	svc := NewReportService(foundPatient("p1"), orders, &mockBillStore{}, &mockPaymentStore{})

	summary, err := svc.Summary(context.Background(), "p1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !summary.PaidAmount.IsZero() {
		t.Errorf("expected zero paid, got %s", summary.PaidAmount)
	}
	if !summary.RemainingAmount.Equal(dec("250")) {
		t.Errorf("expected remaining 250, got %s", summary.RemainingAmount)
	}
	if summary.BillStatus != models.BillStatusPending {
		t.Errorf("expected pending status, got %q", summary.BillStatus)
	}
}

func TestSummary_PatientNotFound(t *testing.T) {
	svc := NewReportService(&mockPatientStore{}, &mockOrderStore{}, &mockBillStore{}, &mockPaymentStore{})
	_, err := svc.Summary(context.Background(), "missing")
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestTestReport_PendingOrderRejected(t *testing.T) {
	orders := &mockOrderStore{
		getByIDFunc: func(ctx context.Context, id string) (*models.TestOrder, error) {
			return &models.TestOrder{ID: id, PatientID: "p1", Status: models.OrderStatusPending}, nil
		},
	}
	svc := NewReportService(foundPatient("p1"), orders, &mockBillStore{}, &mockPaymentStore{})

	_, err := svc.TestReport(context.Background(), "o1")
	if !errors.Is(err, ErrReportNotReady) {
		t.Errorf("expected ErrReportNotReady, got %v", err)
	}
}

func TestTestReport_UnsettledBillRejected(t *testing.T) {
	orders := &mockOrderStore{
		getByIDFunc: func(ctx context.Context, id string) (*models.TestOrder, error) {
			return &models.TestOrder{ID: id, PatientID: "p1", Status: models.OrderStatusCompleted}, nil
		},
	}
	bills := &mockBillStore{
		getByPatientFunc: func(ctx context.Context, patientID string) (*models.Bill, error) {
			return &models.Bill{
				PatientID:       patientID,
				TotalAmount:     dec("300"),
				PaidAmount:      dec("100"),
				RemainingAmount: dec("200"),
				Status:          models.BillStatusPartial,
			}, nil
		},
	}
	svc := NewReportService(foundPatient("p1"), orders, bills, &mockPaymentStore{})

	_, err := svc.TestReport(context.Background(), "o1")
	if !errors.Is(err, ErrReportNotReady) {
		t.Errorf("expected ErrReportNotReady, got %v", err)
	}
}

func TestTestReport_SettledBillReleases(t *testing.T) {
	orders := &mockOrderStore{
		getByIDFunc: func(ctx context.Context, id string) (*models.TestOrder, error) {
			return &models.TestOrder{ID: id, PatientID: "p1", Status: models.OrderStatusCompleted}, nil
		},
		listFunc: func(ctx context.Context, filter repository.OrderFilter) ([]models.TestOrder, error) {
			if filter.Status != models.OrderStatusCompleted || filter.PatientID != "p1" {
				t.Errorf("unexpected filter: %+v", filter)
			}
			return []models.TestOrder{{ID: "o1", Status: models.OrderStatusCompleted}}, nil
		},
	}
	bills := &mockBillStore{
		getByPatientFunc: func(ctx context.Context, patientID string) (*models.Bill, error) {
			return &models.Bill{
				PatientID:       patientID,
				TotalAmount:     dec("300"),
				PaidAmount:      dec("300"),
				RemainingAmount: dec("0"),
				Status:          models.BillStatusPaid,
			}, nil
		},
	}
	payments := &mockPaymentStore{
		listByPatientFunc: func(ctx context.Context, patientID string) ([]models.Payment, error) {
			return []models.Payment{{ID: "pay1", Amount: dec("300")}}, nil
		},
	}
	svc := NewReportService(foundPatient("p1"), orders, bills, payments)

	report, err := svc.TestReport(context.Background(), "o1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.CompletedTests) != 1 || len(report.Payments) != 1 {
		t.Errorf("unexpected report contents: %+v", report)
	}
}

func TestPatientReport_NoCompletedTestsRejected(t *testing.T) {
	svc := NewReportService(foundPatient("p1"), &mockOrderStore{}, &mockBillStore{}, &mockPaymentStore{})

	_, err := svc.PatientReport(context.Background(), "p1")
	if !errors.Is(err, ErrReportNotReady) {
		t.Errorf("expected ErrReportNotReady, got %v", err)
	}
}
