package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jitendrapal/pathology-v1/internal/models"
	"github.com/jitendrapal/pathology-v1/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssignInput describes one assignment request: one patient, one or more
// catalog tests, optionally an advance payment collected at the counter.
type AssignInput struct {
	PatientID       string
	TestIDs         []string
	SampleCollector *string
	Notes           *string
	OrderedAt       *time.Time
	Advance         *PaymentInput
}

// AssignResult is everything the assignment committed.
type AssignResult struct {
	Orders  []models.TestOrder `json:"orders"`
	Bill    *models.Bill       `json:"bill"`
	Payment *models.Payment    `json:"payment,omitempty"`
}

// UpdateOrderInput carries the mutable order fields. Nil means leave as is.
type UpdateOrderInput struct {
	Status          *string
	Results         *string
	Notes           *string
	SampleCollector *string
}

// OrderService owns the test-order workflow. Assignment charges the bill
// for each test at its current catalog price; cancellation refunds the
// snapshot, both atomically with the order rows.
type OrderService struct {
	db       *gorm.DB
	patients *repository.PatientRepository
	tests    *repository.LabTestRepository
	orders   *repository.OrderRepository
	billing  *BillingService
}

func NewOrderService(
	db *gorm.DB,
	patients *repository.PatientRepository,
	tests *repository.LabTestRepository,
	orders *repository.OrderRepository,
	billing *BillingService,
) *OrderService {
	return &OrderService{
		db:       db,
		patients: patients,
		tests:    tests,
		orders:   orders,
		billing:  billing,
	}
}

// Assign creates one order per requested test, charges the bill with the
// summed catalog prices, and optionally records an advance payment. The
// orders, the bill mutation and the payment commit or roll back together.
func (s *OrderService) Assign(ctx context.Context, input AssignInput) (*AssignResult, error) {
	if len(input.TestIDs) == 0 {
		return nil, ErrTestNotFound
	}

	patient, err := s.patients.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	tests := make([]*models.LabTest, 0, len(input.TestIDs))
	for _, id := range input.TestIDs {
		test, err := s.tests.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if test == nil {
			return nil, ErrTestNotFound
		}
		tests = append(tests, test)
	}

	orderedAt := time.Now()
	if input.OrderedAt != nil {
		orderedAt = *input.OrderedAt
	}

	var result AssignResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)

		totalCost := decimal.Zero
		for _, test := range tests {
			order := models.TestOrder{
				ID:              uuid.NewString(),
				PatientID:       input.PatientID,
				TestID:          test.ID,
				Price:           test.Price,
				Status:          models.OrderStatusPending,
				Notes:           input.Notes,
				SampleCollector: input.SampleCollector,
				OrderedAt:       orderedAt,
			}
			if err := orders.Create(ctx, &order); err != nil {
				return err
			}
			order.Test = test
			result.Orders = append(result.Orders, order)
			totalCost = totalCost.Add(test.Price)
		}

		bill, err := s.billing.addChargeTx(ctx, tx, input.PatientID, totalCost)
		if err != nil {
			return err
		}
		result.Bill = bill

		if input.Advance != nil && input.Advance.Amount.IsPositive() {
			advance := *input.Advance
			if advance.Type == "" {
				advance.Type = models.PaymentTypeAdvance
			}
			payment, bill, err := s.billing.addPaymentTx(ctx, tx, input.PatientID, advance)
			if err != nil {
				return err
			}
			result.Payment = payment
			result.Bill = bill
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns one order with its catalog entry.
func (s *OrderService) Get(ctx context.Context, id string) (*models.TestOrder, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns orders matching the filter.
func (s *OrderService) List(ctx context.Context, filter repository.OrderFilter) ([]models.TestOrder, error) {
	return s.orders.List(ctx, filter)
}

// ListByPatient returns a patient's order history.
func (s *OrderService) ListByPatient(ctx context.Context, patientID string) ([]models.TestOrder, error) {
	return s.orders.ListByPatient(ctx, patientID)
}

// Update applies result/status/note changes to an order. Completing an
// order stamps its completion time once; cancelling a pending order
// removes its charge from the patient's bill in the same transaction.
func (s *OrderService) Update(ctx context.Context, id string, input UpdateOrderInput) (*models.TestOrder, error) {
	var out *models.TestOrder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)

		// Lock the order row before evaluating the transition guard so
		// two concurrent cancels cannot both observe pending and refund
		// the same charge twice.
		order, err := orders.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		cancelling, err := applyOrderUpdate(order, input, time.Now())
		if err != nil {
			return err
		}

		if err := orders.Update(ctx, order); err != nil {
			return err
		}
		if cancelling {
			if _, err := s.billing.cancelChargeTx(ctx, tx, order.PatientID, order.Price); err != nil {
				return err
			}
		}
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// applyOrderUpdate merges the input into the order and reports whether
// the change cancels a pending order, in which case the caller must
// refund the order's charge. Completion stamps completed_at exactly once.
func applyOrderUpdate(order *models.TestOrder, input UpdateOrderInput, now time.Time) (bool, error) {
	if input.Results != nil {
		order.Results = input.Results
	}
	if input.Notes != nil {
		order.Notes = input.Notes
	}
	if input.SampleCollector != nil {
		order.SampleCollector = input.SampleCollector
	}

	cancelling := false
	if input.Status != nil && *input.Status != order.Status {
		// A cancelled order already had its charge refunded; letting it
		// back to pending or completed would leave an active order the
		// bill was never re-charged for.
		if order.Status == models.OrderStatusCancelled {
			return false, ErrOrderCancelled
		}
		switch *input.Status {
		case models.OrderStatusCompleted:
			if order.CompletedAt == nil {
				order.CompletedAt = &now
			}
		case models.OrderStatusCancelled:
			if order.Status != models.OrderStatusPending {
				return false, ErrOrderNotCancelable
			}
			cancelling = true
		}
		order.Status = *input.Status
	}
	return cancelling, nil
}
