package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"gorm.io/gorm"
)

type LabTestRepository struct {
	db *gorm.DB
}

func NewLabTestRepository(db *gorm.DB) *LabTestRepository {
	return &LabTestRepository{db: db}
}

// Create inserts a new catalog entry
func (r *LabTestRepository) Create(ctx context.Context, test *models.LabTest) error {
	if err := r.db.WithContext(ctx).Create(test).Error; err != nil {
		return fmt.Errorf("failed to create lab test: %w", err)
	}
	return nil
}

// GetByID retrieves a catalog entry, or nil if absent
func (r *LabTestRepository) GetByID(ctx context.Context, id string) (*models.LabTest, error) {
	var test models.LabTest
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&test)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query lab test: %w", result.Error)
	}
	return &test, nil
}

// GetByName retrieves a catalog entry by its unique name, or nil if absent
func (r *LabTestRepository) GetByName(ctx context.Context, name string) (*models.LabTest, error) {
	var test models.LabTest
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&test)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query lab test by name: %w", result.Error)
	}
	return &test, nil
}

// List retrieves the whole catalog ordered by name
func (r *LabTestRepository) List(ctx context.Context) ([]models.LabTest, error) {
	var tests []models.LabTest
	result := r.db.WithContext(ctx).Order("name ASC").Find(&tests)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list lab tests: %w", result.Error)
	}
	return tests, nil
}

// Update persists all catalog columns
func (r *LabTestRepository) Update(ctx context.Context, test *models.LabTest) error {
	if err := r.db.WithContext(ctx).Save(test).Error; err != nil {
		return fmt.Errorf("failed to update lab test: %w", err)
	}
	return nil
}
