package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Test order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// TestOrder is one test assigned to one patient. Price is the catalog
// price captured at assignment time; it is what the bill was charged
// and what cancellation refunds.
type TestOrder struct {
	ID              string          `json:"id" gorm:"column:id;primaryKey"`
	PatientID       string          `json:"patient_id" gorm:"column:patient_id;index"`
	TestID          string          `json:"test_id" gorm:"column:test_id"`
	Price           decimal.Decimal `json:"price" gorm:"column:price;type:numeric(12,2)"`
	Status          string          `json:"status" gorm:"column:status;index"`
	Results         *string         `json:"results,omitempty" gorm:"column:results"`
	Notes           *string         `json:"notes,omitempty" gorm:"column:notes"`
	SampleCollector *string         `json:"sample_collector,omitempty" gorm:"column:sample_collector"`
	OrderedAt       time.Time       `json:"ordered_at" gorm:"column:ordered_at;autoCreateTime"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty" gorm:"column:completed_at"`

	Test *LabTest `json:"test,omitempty" gorm:"foreignKey:TestID"`
}

// TableName specifies the table name for GORM
func (TestOrder) TableName() string {
	return "test_order"
}
