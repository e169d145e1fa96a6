package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jitendrapal/pathology-v1/internal/models"
	"github.com/shopspring/decimal"
)

// TestInput carries the catalog form fields.
type TestInput struct {
	Name           string
	Description    *string
	NormalRange    *string
	NormalRangeMin *float64
	NormalRangeMax *float64
	Unit           string
	Price          decimal.Decimal
	Category       *string
}

// CatalogService manages the lab-test catalog.
type CatalogService struct {
	tests TestStore
}

func NewCatalogService(tests TestStore) *CatalogService {
	return &CatalogService{tests: tests}
}

// CreateTest adds a catalog entry; names are unique.
func (s *CatalogService) CreateTest(ctx context.Context, input TestInput) (*models.LabTest, error) {
	if input.Price.IsNegative() {
		return nil, ErrInvalidAmount
	}
	name := strings.TrimSpace(input.Name)

	existing, err := s.tests.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	test := &models.LabTest{
		ID:             uuid.NewString(),
		Name:           name,
		Description:    trimOptional(input.Description),
		NormalRange:    trimOptional(input.NormalRange),
		NormalRangeMin: input.NormalRangeMin,
		NormalRangeMax: input.NormalRangeMax,
		Unit:           strings.TrimSpace(input.Unit),
		Price:          input.Price,
		Category:       trimOptional(input.Category),
	}
	if err := s.tests.Create(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// UpdateTest edits a catalog entry. Existing orders keep their price
// snapshots; only future assignments see the new price.
func (s *CatalogService) UpdateTest(ctx context.Context, id string, input TestInput) (*models.LabTest, error) {
	if input.Price.IsNegative() {
		return nil, ErrInvalidAmount
	}
	test, err := s.tests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name != test.Name {
		existing, err := s.tests.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateName
		}
	}

	test.Name = name
	test.Description = trimOptional(input.Description)
	test.NormalRange = trimOptional(input.NormalRange)
	test.NormalRangeMin = input.NormalRangeMin
	test.NormalRangeMax = input.NormalRangeMax
	test.Unit = strings.TrimSpace(input.Unit)
	test.Price = input.Price
	test.Category = trimOptional(input.Category)

	if err := s.tests.Update(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// GetTest returns one catalog entry.
func (s *CatalogService) GetTest(ctx context.Context, id string) (*models.LabTest, error) {
	test, err := s.tests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}
	return test, nil
}

// ListTests returns the whole catalog.
func (s *CatalogService) ListTests(ctx context.Context) ([]models.LabTest, error) {
	return s.tests.List(ctx)
}
