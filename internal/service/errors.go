package service

import "errors"

// Ledger failure kinds. Handlers map these to HTTP statuses; everything
// else that bubbles up is treated as an internal database error.
var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrNoBillFound          = errors.New("no bill found for patient")
	ErrOverpaymentRejected  = errors.New("payment exceeds remaining balance")

	ErrPatientNotFound    = errors.New("patient not found")
	ErrTestNotFound       = errors.New("lab test not found")
	ErrOrderNotFound      = errors.New("test order not found")
	ErrDraftNotFound      = errors.New("registration draft not found")
	ErrDuplicatePhone     = errors.New("a patient with this phone number already exists")
	ErrDuplicateName      = errors.New("an entry with this name already exists")
	ErrDraftIncomplete    = errors.New("registration draft is missing required fields")
	ErrOrderNotCancelable = errors.New("only pending orders can be cancelled")
	ErrOrderCancelled     = errors.New("cancelled orders cannot change status")
	ErrReportNotReady     = errors.New("report requires a completed test and a settled bill")
)
