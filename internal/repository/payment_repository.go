package repository

import (
	"context"
	"fmt"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PaymentRepository) WithTx(tx *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: tx}
}

// Create inserts a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// ListByPatient retrieves all payments for a patient, newest first
func (r *PaymentRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Payment, error) {
	var payments []models.Payment
	result := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("paid_at DESC").
		Find(&payments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query payments: %w", result.Error)
	}
	return payments, nil
}

// List retrieves all payments across patients, newest first
func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	result := r.db.WithContext(ctx).
		Order("paid_at DESC").
		Find(&payments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query payments: %w", result.Error)
	}
	return payments, nil
}
