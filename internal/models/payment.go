package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment type constants
const (
	PaymentTypeAdvance   = "advance"
	PaymentTypePartial   = "partial"
	PaymentTypeFull      = "full"
	PaymentTypeRemaining = "remaining"
	PaymentTypeFinal     = "final"
)

// Payment method constants
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodUPI          = "upi"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Payment is one money-received event against a patient's bill.
// Rows are append-only; corrections are new rows, never edits.
type Payment struct {
	ID              string          `json:"id" gorm:"column:id;primaryKey"`
	PatientID       string          `json:"patient_id" gorm:"column:patient_id;index"`
	Amount          decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(12,2)"`
	PaymentType     string          `json:"payment_type" gorm:"column:payment_type"`
	PaymentMethod   string          `json:"payment_method" gorm:"column:payment_method"`
	ReferenceNumber *string         `json:"reference_number,omitempty" gorm:"column:reference_number"`
	Notes           *string         `json:"notes,omitempty" gorm:"column:notes"`
	RecordedBy      *string         `json:"recorded_by,omitempty" gorm:"column:recorded_by"`
	PaidAt          time.Time       `json:"paid_at" gorm:"column:paid_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payment"
}

// ValidPaymentMethod reports whether the operator-entered method is one
// the lab accepts.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodBankTransfer:
		return true
	}
	return false
}
