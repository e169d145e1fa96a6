package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jitendrapal/pathology-v1/internal/models"
)

// HospitalInput carries the hospital directory form.
type HospitalInput struct {
	Name    string
	Address *string
	Phone   *string
	Email   *string
}

// CollectorInput carries the sample-collector directory form.
type CollectorInput struct {
	Name       string
	EmployeeID *string
	Phone      *string
	Email      *string
	Department *string
}

// DirectoryService manages the referring-hospital and sample-collector
// directories that registration and assignment dropdowns read.
type DirectoryService struct {
	hospitals  HospitalStore
	collectors CollectorStore
}

func NewDirectoryService(hospitals HospitalStore, collectors CollectorStore) *DirectoryService {
	return &DirectoryService{hospitals: hospitals, collectors: collectors}
}

// AddHospital adds a hospital; names are unique.
func (s *DirectoryService) AddHospital(ctx context.Context, input HospitalInput) (*models.Hospital, error) {
	name := strings.TrimSpace(input.Name)

	existing, err := s.hospitals.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	hospital := &models.Hospital{
		ID:      uuid.NewString(),
		Name:    name,
		Address: trimOptional(input.Address),
		Phone:   trimOptional(input.Phone),
		Email:   normalizeEmail(input.Email),
	}
	if err := s.hospitals.Create(ctx, hospital); err != nil {
		return nil, err
	}
	return hospital, nil
}

// ListHospitals returns all hospitals.
func (s *DirectoryService) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	return s.hospitals.List(ctx)
}

// AddCollector adds a sample collector; names are unique.
func (s *DirectoryService) AddCollector(ctx context.Context, input CollectorInput) (*models.SampleCollector, error) {
	name := strings.TrimSpace(input.Name)

	existing, err := s.collectors.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	collector := &models.SampleCollector{
		ID:         uuid.NewString(),
		Name:       name,
		EmployeeID: trimOptional(input.EmployeeID),
		Phone:      trimOptional(input.Phone),
		Email:      normalizeEmail(input.Email),
		Department: trimOptional(input.Department),
	}
	if err := s.collectors.Create(ctx, collector); err != nil {
		return nil, err
	}
	return collector, nil
}

// ListCollectors returns all sample collectors.
func (s *DirectoryService) ListCollectors(ctx context.Context) ([]models.SampleCollector, error) {
	return s.collectors.List(ctx)
}
