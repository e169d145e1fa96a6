package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// Create inserts a new hospital
func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	if err := r.db.WithContext(ctx).Create(hospital).Error; err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}
	return nil
}

// GetByName retrieves a hospital by its unique name, or nil if absent
func (r *HospitalRepository) GetByName(ctx context.Context, name string) (*models.Hospital, error) {
	var hospital models.Hospital
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&hospital)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query hospital: %w", result.Error)
	}
	return &hospital, nil
}

// List retrieves all hospitals ordered by name
func (r *HospitalRepository) List(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	result := r.db.WithContext(ctx).Order("name ASC").Find(&hospitals)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", result.Error)
	}
	return hospitals, nil
}

type CollectorRepository struct {
	db *gorm.DB
}

func NewCollectorRepository(db *gorm.DB) *CollectorRepository {
	return &CollectorRepository{db: db}
}

// Create inserts a new sample collector
func (r *CollectorRepository) Create(ctx context.Context, collector *models.SampleCollector) error {
	if err := r.db.WithContext(ctx).Create(collector).Error; err != nil {
		return fmt.Errorf("failed to create sample collector: %w", err)
	}
	return nil
}

// GetByName retrieves a sample collector by name, or nil if absent
func (r *CollectorRepository) GetByName(ctx context.Context, name string) (*models.SampleCollector, error) {
	var collector models.SampleCollector
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&collector)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query sample collector: %w", result.Error)
	}
	return &collector, nil
}

// List retrieves all sample collectors ordered by name
func (r *CollectorRepository) List(ctx context.Context) ([]models.SampleCollector, error) {
	var collectors []models.SampleCollector
	result := r.db.WithContext(ctx).Order("name ASC").Find(&collectors)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list sample collectors: %w", result.Error)
	}
	return collectors, nil
}
