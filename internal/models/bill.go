package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill status constants
const (
	BillStatusPending = "pending"
	BillStatusPartial = "partial"
	BillStatusPaid    = "paid"
)

// Bill is the per-patient running account of charges against payments.
// One row per patient; derived fields (remaining_amount, status) are only
// ever written by Recalculate.
type Bill struct {
	ID                 string          `json:"id" gorm:"column:id;primaryKey"`
	PatientID          string          `json:"patient_id" gorm:"column:patient_id;uniqueIndex"`
	TotalAmount        decimal.Decimal `json:"total_amount" gorm:"column:total_amount;type:numeric(12,2)"`
	PaidAmount         decimal.Decimal `json:"paid_amount" gorm:"column:paid_amount;type:numeric(12,2)"`
	RemainingAmount    decimal.Decimal `json:"remaining_amount" gorm:"column:remaining_amount;type:numeric(12,2)"`
	DiscountAmount     decimal.Decimal `json:"discount_amount" gorm:"column:discount_amount;type:numeric(12,2)"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" gorm:"column:discount_percentage;type:numeric(5,2)"`
	Status             string          `json:"status" gorm:"column:status"`
	BillDate           time.Time       `json:"bill_date" gorm:"column:bill_date;autoCreateTime"`
	DueDate            *time.Time      `json:"due_date,omitempty" gorm:"column:due_date"`
}

// TableName specifies the table name for GORM
func (Bill) TableName() string {
	return "patient_bill"
}

// FinalAmount is the amount actually owed: total minus discount.
func (b *Bill) FinalAmount() decimal.Decimal {
	return b.TotalAmount.Sub(b.DiscountAmount)
}

// Recalculate rederives remaining_amount and status from the current
// totals. Every mutation goes through here; the invariant
// remaining == max(0, final - paid) is not expressed anywhere else.
func (b *Bill) Recalculate() {
	remaining := b.FinalAmount().Sub(b.PaidAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	b.RemainingAmount = remaining

	switch {
	case b.PaidAmount.GreaterThanOrEqual(b.FinalAmount()):
		b.Status = BillStatusPaid
	case b.PaidAmount.IsPositive():
		b.Status = BillStatusPartial
	default:
		b.Status = BillStatusPending
	}
}

// AddCharge increases the billable total by the given amount.
func (b *Bill) AddCharge(amount decimal.Decimal) {
	b.TotalAmount = b.TotalAmount.Add(amount)
	b.Recalculate()
}

// RemoveCharge takes a cancelled charge out of the billable total.
// The total floors at zero like the remaining balance does.
func (b *Bill) RemoveCharge(amount decimal.Decimal) {
	b.TotalAmount = b.TotalAmount.Sub(amount)
	if b.TotalAmount.IsNegative() {
		b.TotalAmount = decimal.Zero
	}
	b.Recalculate()
}

// AddPayment increases the paid total by the given amount.
func (b *Bill) AddPayment(amount decimal.Decimal) {
	b.PaidAmount = b.PaidAmount.Add(amount)
	b.Recalculate()
}

// SetDiscountPercentage makes percentage the driving discount input and
// derives the discount amount from the current total.
func (b *Bill) SetDiscountPercentage(pct decimal.Decimal) {
	b.DiscountPercentage = pct
	b.DiscountAmount = b.TotalAmount.Mul(pct).Div(decimal.NewFromInt(100))
	b.Recalculate()
}

// SetDiscountAmount makes the flat amount the driving discount input and
// derives the percentage from the current total.
func (b *Bill) SetDiscountAmount(amount decimal.Decimal) {
	b.DiscountAmount = amount
	if b.TotalAmount.IsPositive() {
		b.DiscountPercentage = amount.Div(b.TotalAmount).Mul(decimal.NewFromInt(100))
	} else {
		b.DiscountPercentage = decimal.Zero
	}
	b.Recalculate()
}
