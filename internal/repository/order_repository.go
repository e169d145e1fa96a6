package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jitendrapal/pathology-v1/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderFilter narrows List to the views operators actually use.
type OrderFilter struct {
	Status    string
	PatientID string
	From      *time.Time
	To        *time.Time
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// Create inserts a new test order
func (r *OrderRepository) Create(ctx context.Context, order *models.TestOrder) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create test order: %w", err)
	}
	return nil
}

// GetByID retrieves a test order with its catalog entry, or nil if absent
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.TestOrder, error) {
	var order models.TestOrder
	result := r.db.WithContext(ctx).Preload("Test").Where("id = ?", id).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query test order: %w", result.Error)
	}
	return &order, nil
}

// GetByIDForUpdate retrieves a test order with a row lock, or nil if
// absent. Callers must hold a transaction; status transitions run on the
// locked row so concurrent updates of the same order serialize.
func (r *OrderRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.TestOrder, error) {
	var order models.TestOrder
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query test order: %w", result.Error)
	}
	return &order, nil
}

// List retrieves test orders matching the filter, newest first
func (r *OrderRepository) List(ctx context.Context, filter OrderFilter) ([]models.TestOrder, error) {
	q := r.db.WithContext(ctx).Preload("Test")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PatientID != "" {
		q = q.Where("patient_id = ?", filter.PatientID)
	}
	if filter.From != nil {
		q = q.Where("ordered_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("ordered_at <= ?", *filter.To)
	}

	var orders []models.TestOrder
	result := q.Order("ordered_at DESC").Find(&orders)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list test orders: %w", result.Error)
	}
	return orders, nil
}

// ListByPatient retrieves all of a patient's orders, newest first
func (r *OrderRepository) ListByPatient(ctx context.Context, patientID string) ([]models.TestOrder, error) {
	return r.List(ctx, OrderFilter{PatientID: patientID})
}

// Update persists all order columns
func (r *OrderRepository) Update(ctx context.Context, order *models.TestOrder) error {
	if err := r.db.WithContext(ctx).Save(order).Error; err != nil {
		return fmt.Errorf("failed to update test order: %w", err)
	}
	return nil
}

// ActiveChargeTotal sums the price snapshots of a patient's non-cancelled
// orders. Used to seed a bill that is created lazily on first payment.
func (r *OrderRepository) ActiveChargeTotal(ctx context.Context, patientID string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&models.TestOrder{}).
		Select("SUM(price)").
		Where("patient_id = ? AND status <> ?", patientID, models.OrderStatusCancelled).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, fmt.Errorf("failed to sum charges: %w", result.Error)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
