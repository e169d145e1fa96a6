package models

import "time"

// Hospital is a referring hospital in the lab's directory.
type Hospital struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"name" gorm:"column:name;uniqueIndex"`
	Address   *string   `json:"address,omitempty" gorm:"column:address"`
	Phone     *string   `json:"phone,omitempty" gorm:"column:phone"`
	Email     *string   `json:"email,omitempty" gorm:"column:email"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Hospital) TableName() string {
	return "hospital"
}

// SampleCollector is a staff member who collects samples.
type SampleCollector struct {
	ID         string    `json:"id" gorm:"column:id;primaryKey"`
	Name       string    `json:"name" gorm:"column:name;uniqueIndex"`
	EmployeeID *string   `json:"employee_id,omitempty" gorm:"column:employee_id"`
	Phone      *string   `json:"phone,omitempty" gorm:"column:phone"`
	Email      *string   `json:"email,omitempty" gorm:"column:email"`
	Department *string   `json:"department,omitempty" gorm:"column:department"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (SampleCollector) TableName() string {
	return "sample_collector"
}
