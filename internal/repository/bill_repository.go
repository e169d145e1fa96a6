package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *BillRepository) WithTx(tx *gorm.DB) *BillRepository {
	return &BillRepository{db: tx}
}

// GetByPatient retrieves the patient's bill, or nil if none exists yet
func (r *BillRepository) GetByPatient(ctx context.Context, patientID string) (*models.Bill, error) {
	var bill models.Bill
	result := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		First(&bill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query bill: %w", result.Error)
	}
	return &bill, nil
}

// GetByPatientForUpdate retrieves the patient's bill under a row lock.
// Must run inside a transaction; concurrent mutators on the same patient
// serialize here.
func (r *BillRepository) GetByPatientForUpdate(ctx context.Context, patientID string) (*models.Bill, error) {
	var bill models.Bill
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("patient_id = ?", patientID).
		First(&bill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock bill: %w", result.Error)
	}
	return &bill, nil
}

// Create inserts a new bill
func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) error {
	if err := r.db.WithContext(ctx).Create(bill).Error; err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

// Save persists all bill columns
func (r *BillRepository) Save(ctx context.Context, bill *models.Bill) error {
	if err := r.db.WithContext(ctx).Save(bill).Error; err != nil {
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}

// ListOverdue retrieves bills past their due date that still carry an
// outstanding balance
func (r *BillRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]models.Bill, error) {
	var bills []models.Bill
	result := r.db.WithContext(ctx).
		Where("due_date IS NOT NULL AND due_date < ? AND remaining_amount > 0", asOf).
		Order("due_date ASC").
		Find(&bills)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query overdue bills: %w", result.Error)
	}
	return bills, nil
}
