package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create inserts a new patient
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// GetByID retrieves a patient, or nil if absent
func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&patient)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query patient: %w", result.Error)
	}
	return &patient, nil
}

// GetByPhone retrieves a patient by phone number, or nil if absent
func (r *PatientRepository) GetByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	var patient models.Patient
	result := r.db.WithContext(ctx).Where("phone = ?", phone).First(&patient)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query patient by phone: %w", result.Error)
	}
	return &patient, nil
}

// Search retrieves patients matching the term against name or phone;
// an empty term lists everyone
func (r *PatientRepository) Search(ctx context.Context, term string) ([]models.Patient, error) {
	var patients []models.Patient
	q := r.db.WithContext(ctx)
	if term != "" {
		like := "%" + term + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR phone LIKE ?", like, like, like)
	}
	result := q.Order("registered_at DESC").Find(&patients)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to search patients: %w", result.Error)
	}
	return patients, nil
}

// Update persists all patient columns
func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Save(patient).Error; err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}
