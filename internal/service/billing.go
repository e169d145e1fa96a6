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

// PaymentInput carries the operator-entered payment fields.
type PaymentInput struct {
	Amount          decimal.Decimal
	Method          string
	Type            string // empty means derive from the outstanding balance
	ReferenceNumber *string
	Notes           *string
	RecordedBy      *string
}

// DiscountInput carries exactly one driving channel per call: either a
// percentage of the total or a flat amount.
type DiscountInput struct {
	Percentage *decimal.Decimal
	Amount     *decimal.Decimal
}

// Balance is the read-side answer for a patient's account.
type Balance struct {
	FinalAmount     decimal.Decimal `json:"final_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Status          string          `json:"status"`
}

// BillingService keeps each patient's bill consistent as charges and
// payments arrive. Every mutator runs in one transaction with the bill
// row locked, so concurrent requests on the same patient serialize
// instead of losing updates.
type BillingService struct {
	db               *gorm.DB
	bills            *repository.BillRepository
	payments         *repository.PaymentRepository
	orders           *repository.OrderRepository
	allowOverpayment bool
}

func NewBillingService(
	db *gorm.DB,
	bills *repository.BillRepository,
	payments *repository.PaymentRepository,
	orders *repository.OrderRepository,
	allowOverpayment bool,
) *BillingService {
	return &BillingService{
		db:               db,
		bills:            bills,
		payments:         payments,
		orders:           orders,
		allowOverpayment: allowOverpayment,
	}
}

func newBill(patientID string) *models.Bill {
	bill := &models.Bill{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Status:    models.BillStatusPending,
		BillDate:  time.Now(),
	}
	bill.Recalculate()
	return bill
}

// AddCharge increases the patient's billable total, creating the bill on
// first contact. A negative amount is rejected before any write.
func (s *BillingService) AddCharge(ctx context.Context, patientID string, amount decimal.Decimal) (*models.Bill, error) {
	if err := validateCharge(amount); err != nil {
		return nil, err
	}

	var out *models.Bill
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bill, err := s.addChargeTx(ctx, tx, patientID, amount)
		if err != nil {
			return err
		}
		out = bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// addChargeTx is the transaction-scoped body of AddCharge, shared with
// the order-assignment flow so charges and advance payments commit
// atomically with the orders that caused them.
func (s *BillingService) addChargeTx(ctx context.Context, tx *gorm.DB, patientID string, amount decimal.Decimal) (*models.Bill, error) {
	bills := s.bills.WithTx(tx)
	bill, err := bills.GetByPatientForUpdate(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		bill = newBill(patientID)
		bill.AddCharge(amount)
		if err := bills.Create(ctx, bill); err != nil {
			return nil, err
		}
		return bill, nil
	}
	bill.AddCharge(amount)
	if err := bills.Save(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// CancelCharge removes a cancelled order's price from the billable total.
func (s *BillingService) CancelCharge(ctx context.Context, patientID string, amount decimal.Decimal) (*models.Bill, error) {
	if err := validateCharge(amount); err != nil {
		return nil, err
	}

	var out *models.Bill
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bill, err := s.cancelChargeTx(ctx, tx, patientID, amount)
		if err != nil {
			return err
		}
		out = bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// cancelChargeTx is the transaction-scoped body of CancelCharge.
func (s *BillingService) cancelChargeTx(ctx context.Context, tx *gorm.DB, patientID string, amount decimal.Decimal) (*models.Bill, error) {
	bills := s.bills.WithTx(tx)
	bill, err := bills.GetByPatientForUpdate(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrNoBillFound
	}
	bill.RemoveCharge(amount)
	if err := bills.Save(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// AddPayment records a payment and bumps the paid total. If the patient
// has no bill yet, one is created seeded with the sum of their active
// charges. The overpayment policy is uniform across every payment path.
func (s *BillingService) AddPayment(ctx context.Context, patientID string, input PaymentInput) (*models.Payment, *models.Bill, error) {
	if !input.Amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}

	var (
		outPayment *models.Payment
		outBill    *models.Bill
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment, bill, err := s.addPaymentTx(ctx, tx, patientID, input)
		if err != nil {
			return err
		}
		outPayment = payment
		outBill = bill
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return outPayment, outBill, nil
}

// addPaymentTx is the transaction-scoped body of AddPayment.
func (s *BillingService) addPaymentTx(ctx context.Context, tx *gorm.DB, patientID string, input PaymentInput) (*models.Payment, *models.Bill, error) {
	bills := s.bills.WithTx(tx)
	payments := s.payments.WithTx(tx)

	bill, err := bills.GetByPatientForUpdate(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}

	created := false
	if bill == nil {
		total, err := s.orders.WithTx(tx).ActiveChargeTotal(ctx, patientID)
		if err != nil {
			return nil, nil, err
		}
		bill = newBill(patientID)
		bill.AddCharge(total)
		created = true
	}

	payment, err := resolvePayment(bill, patientID, input, s.allowOverpayment)
	if err != nil {
		return nil, nil, err
	}

	bill.AddPayment(input.Amount)
	if created {
		if err := bills.Create(ctx, bill); err != nil {
			return nil, nil, err
		}
	} else {
		if err := bills.Save(ctx, bill); err != nil {
			return nil, nil, err
		}
	}
	if err := payments.Create(ctx, payment); err != nil {
		return nil, nil, err
	}
	return payment, bill, nil
}

// ApplyDiscount sets the discount from exactly one driving channel and
// rederives the other from the current total.
func (s *BillingService) ApplyDiscount(ctx context.Context, patientID string, input DiscountInput) (*models.Bill, error) {
	var out *models.Bill
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bills := s.bills.WithTx(tx)
		bill, err := bills.GetByPatientForUpdate(ctx, patientID)
		if err != nil {
			return err
		}
		if bill == nil {
			return ErrNoBillFound
		}
		if err := applyDiscountInput(bill, input); err != nil {
			return err
		}
		if err := bills.Save(ctx, bill); err != nil {
			return err
		}
		out = bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetDueDate stamps or clears the bill's due date; the overdue watcher
// reads it.
func (s *BillingService) SetDueDate(ctx context.Context, patientID string, dueDate *time.Time) (*models.Bill, error) {
	var out *models.Bill
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bills := s.bills.WithTx(tx)
		bill, err := bills.GetByPatientForUpdate(ctx, patientID)
		if err != nil {
			return err
		}
		if bill == nil {
			return ErrNoBillFound
		}
		bill.DueDate = dueDate
		if err := bills.Save(ctx, bill); err != nil {
			return err
		}
		out = bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetBalance answers the balance query without mutating anything.
func (s *BillingService) GetBalance(ctx context.Context, patientID string) (*Balance, error) {
	bill, err := s.bills.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrNoBillFound
	}
	return &Balance{
		FinalAmount:     bill.FinalAmount(),
		PaidAmount:      bill.PaidAmount,
		RemainingAmount: bill.RemainingAmount,
		Status:          bill.Status,
	}, nil
}

// GetBill returns the raw bill row for detail views.
func (s *BillingService) GetBill(ctx context.Context, patientID string) (*models.Bill, error) {
	bill, err := s.bills.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrNoBillFound
	}
	return bill, nil
}

// ListPayments returns the patient's payment history, newest first.
func (s *BillingService) ListPayments(ctx context.Context, patientID string) ([]models.Payment, error) {
	return s.payments.ListByPatient(ctx, patientID)
}

func validateCharge(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// resolvePayment validates the payment against the bill's outstanding
// balance and builds the row to record. It never mutates the bill.
func resolvePayment(bill *models.Bill, patientID string, input PaymentInput, allowOverpayment bool) (*models.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !allowOverpayment && input.Amount.GreaterThan(bill.RemainingAmount) {
		return nil, ErrOverpaymentRejected
	}

	method := input.Method
	if method == "" {
		method = models.PaymentMethodCash
	}
	if !models.ValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}

	ptype := input.Type
	if ptype == "" {
		if input.Amount.GreaterThanOrEqual(bill.RemainingAmount) {
			ptype = models.PaymentTypeFinal
		} else {
			ptype = models.PaymentTypePartial
		}
	}

	return &models.Payment{
		ID:              uuid.NewString(),
		PatientID:       patientID,
		Amount:          input.Amount,
		PaymentType:     ptype,
		PaymentMethod:   method,
		ReferenceNumber: input.ReferenceNumber,
		Notes:           input.Notes,
		RecordedBy:      input.RecordedBy,
		PaidAt:          time.Now(),
	}, nil
}

// applyDiscountInput picks the driving channel. Percentage wins when both
// are present, matching the long-standing billing form behavior.
func applyDiscountInput(bill *models.Bill, input DiscountInput) error {
	switch {
	case input.Percentage != nil:
		if input.Percentage.IsNegative() || input.Percentage.GreaterThan(decimal.NewFromInt(100)) {
			return ErrInvalidAmount
		}
		bill.SetDiscountPercentage(*input.Percentage)
	case input.Amount != nil:
		if input.Amount.IsNegative() {
			return ErrInvalidAmount
		}
		bill.SetDiscountAmount(*input.Amount)
	default:
		return ErrInvalidAmount
	}
	return nil
}
