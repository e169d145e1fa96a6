package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"gorm.io/gorm"
)

type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *DraftRepository) WithTx(tx *gorm.DB) *DraftRepository {
	return &DraftRepository{db: tx}
}

// Create inserts a new registration draft
func (r *DraftRepository) Create(ctx context.Context, draft *models.RegistrationDraft) error {
	if err := r.db.WithContext(ctx).Create(draft).Error; err != nil {
		return fmt.Errorf("failed to create registration draft: %w", err)
	}
	return nil
}

// GetByID retrieves a registration draft, or nil if absent
func (r *DraftRepository) GetByID(ctx context.Context, id string) (*models.RegistrationDraft, error) {
	var draft models.RegistrationDraft
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&draft)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query registration draft: %w", result.Error)
	}
	return &draft, nil
}

// Update persists all draft columns
func (r *DraftRepository) Update(ctx context.Context, draft *models.RegistrationDraft) error {
	if err := r.db.WithContext(ctx).Save(draft).Error; err != nil {
		return fmt.Errorf("failed to update registration draft: %w", err)
	}
	return nil
}

// Delete removes a committed or abandoned draft
func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.RegistrationDraft{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete registration draft: %w", err)
	}
	return nil
}
