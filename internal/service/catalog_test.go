package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jitendrapal/pathology-v1/internal/models"
)

type mockTestStore struct {
	createFunc    func(ctx context.Context, test *models.LabTest) error
	getByIDFunc   func(ctx context.Context, id string) (*models.LabTest, error)
	getByNameFunc func(ctx context.Context, name string) (*models.LabTest, error)
	listFunc      func(ctx context.Context) ([]models.LabTest, error)
	updateFunc    func(ctx context.Context, test *models.LabTest) error
}

func (m *mockTestStore) Create(ctx context.Context, test *models.LabTest) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, test)
	}
	return nil
}

func (m *mockTestStore) GetByID(ctx context.Context, id string) (*models.LabTest, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTestStore) GetByName(ctx context.Context, name string) (*models.LabTest, error) {
	if m.getByNameFunc != nil {
		return m.getByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTestStore) List(ctx context.Context) ([]models.LabTest, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockTestStore) Update(ctx context.Context, test *models.LabTest) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, test)
	}
	return nil
}

func TestCreateTest_NegativePriceRejected(t *testing.T) {
	svc := NewCatalogService(&mockTestStore{
		createFunc: func(ctx context.Context, test *models.LabTest) error {
			t.Fatal("create must not be called for a negative price")
			return nil
		},
	})

	_, err := svc.CreateTest(context.Background(), TestInput{
		Name: "CBC", Unit: "cells/mcL", Price: dec("-5"),
	})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestCreateTest_DuplicateNameRejected(t *testing.T) {
	svc := NewCatalogService(&mockTestStore{
		getByNameFunc: func(ctx context.Context, name string) (*models.LabTest, error) {
			return &models.LabTest{ID: "existing", Name: name}, nil
		},
	})

	_, err := svc.CreateTest(context.Background(), TestInput{
		Name: "CBC", Unit: "cells/mcL", Price: dec("300"),
	})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestCreateTest_TrimsAndStoresFields(t *testing.T) {
	var created *models.LabTest
	svc := NewCatalogService(&mockTestStore{
		createFunc: func(ctx context.Context, test *models.LabTest) error {
			created = test
			return nil
		},
	})

	desc := "  complete blood count  "
	test, err := svc.CreateTest(context.Background(), TestInput{
		Name:        "  CBC  ",
		Description: &desc,
		Unit:        " cells/mcL ",
		Price:       dec("300"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created == nil || created != test {
		t.Fatal("expected created test returned")
	}
	if test.Name != "CBC" {
		t.Errorf("expected trimmed name, got %q", test.Name)
	}
	if test.Unit != "cells/mcL" {
		t.Errorf("expected trimmed unit, got %q", test.Unit)
	}
	if test.Description == nil || *test.Description != "complete blood count" {
		t.Error("expected trimmed description")
	}
	if !test.Price.Equal(dec("300")) {
		t.Errorf("expected price 300, got %s", test.Price)
	}
	if test.ID == "" {
		t.Error("expected generated id")
	}
}

func TestUpdateTest_RenameToTakenNameRejected(t *testing.T) {
	svc := NewCatalogService(&mockTestStore{
		getByIDFunc: func(ctx context.Context, id string) (*models.LabTest, error) {
			return &models.LabTest{ID: id, Name: "CBC", Price: dec("300")}, nil
		},
		getByNameFunc: func(ctx context.Context, name string) (*models.LabTest, error) {
			return &models.LabTest{ID: "other", Name: name}, nil
		},
	})

	_, err := svc.UpdateTest(context.Background(), "test-1", TestInput{
		Name: "Lipid Profile", Unit: "mg/dL", Price: dec("500"),
	})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestUpdateTest_SameNameSkipsDuplicateCheck(t *testing.T) {
	svc := NewCatalogService(&mockTestStore{
		getByIDFunc: func(ctx context.Context, id string) (*models.LabTest, error) {
			return &models.LabTest{ID: id, Name: "CBC", Price: dec("300")}, nil
		},
		getByNameFunc: func(ctx context.Context, name string) (*models.LabTest, error) {
			t.Fatal("name lookup must not run when the name is unchanged")
			return nil, nil
		},
	})

	updated, err := svc.UpdateTest(context.Background(), "test-1", TestInput{
		Name: "CBC", Unit: "cells/mcL", Price: dec("350"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !updated.Price.Equal(dec("350")) {
		t.Errorf("expected price 350, got %s", updated.Price)
	}
}

func TestGetTest_NotFound(t *testing.T) {
	svc := NewCatalogService(&mockTestStore{})
	_, err := svc.GetTest(context.Background(), "missing")
	if !errors.Is(err, ErrTestNotFound) {
		t.Errorf("expected ErrTestNotFound, got %v", err)
	}
}
