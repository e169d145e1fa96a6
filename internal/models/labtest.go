package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LabTest is a catalog entry. Price changes here never touch already
// assigned orders; each order snapshots the price at assignment time.
type LabTest struct {
	ID             string          `json:"id" gorm:"column:id;primaryKey"`
	Name           string          `json:"name" gorm:"column:name;uniqueIndex"`
	Description    *string         `json:"description,omitempty" gorm:"column:description"`
	NormalRange    *string         `json:"normal_range,omitempty" gorm:"column:normal_range"` // legacy free-text range
	NormalRangeMin *float64        `json:"normal_range_min,omitempty" gorm:"column:normal_range_min"`
	NormalRangeMax *float64        `json:"normal_range_max,omitempty" gorm:"column:normal_range_max"`
	Unit           string          `json:"unit" gorm:"column:unit"`
	Price          decimal.Decimal `json:"price" gorm:"column:price;type:numeric(12,2)"`
	Category       *string         `json:"category,omitempty" gorm:"column:category"`
	CreatedAt      time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (LabTest) TableName() string {
	return "lab_test"
}
