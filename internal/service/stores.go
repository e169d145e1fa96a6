package service

import (
	"context"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"github.com/jitendrapal/pathology-v1/internal/repository"
)

// Store interfaces for dependency injection. The repository package
// satisfies all of them; tests substitute hand-rolled fakes.

type PatientStore interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByPhone(ctx context.Context, phone string) (*models.Patient, error)
	Search(ctx context.Context, term string) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
}

type DraftStore interface {
	Create(ctx context.Context, draft *models.RegistrationDraft) error
	GetByID(ctx context.Context, id string) (*models.RegistrationDraft, error)
	Update(ctx context.Context, draft *models.RegistrationDraft) error
	Delete(ctx context.Context, id string) error
}

type TestStore interface {
	Create(ctx context.Context, test *models.LabTest) error
	GetByID(ctx context.Context, id string) (*models.LabTest, error)
	GetByName(ctx context.Context, name string) (*models.LabTest, error)
	List(ctx context.Context) ([]models.LabTest, error)
	Update(ctx context.Context, test *models.LabTest) error
}

type HospitalStore interface {
	Create(ctx context.Context, hospital *models.Hospital) error
	GetByName(ctx context.Context, name string) (*models.Hospital, error)
	List(ctx context.Context) ([]models.Hospital, error)
}

type CollectorStore interface {
	Create(ctx context.Context, collector *models.SampleCollector) error
	GetByName(ctx context.Context, name string) (*models.SampleCollector, error)
	List(ctx context.Context) ([]models.SampleCollector, error)
}

type OrderStore interface {
	GetByID(ctx context.Context, id string) (*models.TestOrder, error)
	List(ctx context.Context, filter repository.OrderFilter) ([]models.TestOrder, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.TestOrder, error)
}

type BillStore interface {
	GetByPatient(ctx context.Context, patientID string) (*models.Bill, error)
}

type PaymentStore interface {
	ListByPatient(ctx context.Context, patientID string) ([]models.Payment, error)
}
