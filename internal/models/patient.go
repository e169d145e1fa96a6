package models

import "time"

// Patient is a registered lab patient. The phone number doubles as the
// duplicate-registration key.
type Patient struct {
	ID               string    `json:"id" gorm:"column:id;primaryKey"`
	Title            string    `json:"title" gorm:"column:title"`
	FirstName        string    `json:"first_name" gorm:"column:first_name"`
	LastName         string    `json:"last_name" gorm:"column:last_name"`
	Age              int       `json:"age" gorm:"column:age"`
	Gender           string    `json:"gender" gorm:"column:gender"`
	Phone            string    `json:"phone" gorm:"column:phone;uniqueIndex"`
	Email            *string   `json:"email,omitempty" gorm:"column:email"`
	Address          string    `json:"address" gorm:"column:address"`
	MedicalHistory   *string   `json:"medical_history,omitempty" gorm:"column:medical_history"`
	EmergencyContact *string   `json:"emergency_contact,omitempty" gorm:"column:emergency_contact"`
	HospitalName     *string   `json:"hospital_name,omitempty" gorm:"column:hospital_name"`
	CollectedBy      *string   `json:"collected_by,omitempty" gorm:"column:collected_by"`
	RegisteredAt     time.Time `json:"registered_at" gorm:"column:registered_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Patient) TableName() string {
	return "patient"
}

// FullName is the display name used on bills and reports.
func (p *Patient) FullName() string {
	return p.Title + " " + p.FirstName + " " + p.LastName
}

// RegistrationDraft collects patient fields across the multi-step
// registration flow. Nothing reaches the patient table until Commit;
// abandoned drafts are just rows to sweep.
type RegistrationDraft struct {
	ID               string    `json:"id" gorm:"column:id;primaryKey"`
	Title            *string   `json:"title,omitempty" gorm:"column:title"`
	FirstName        *string   `json:"first_name,omitempty" gorm:"column:first_name"`
	LastName         *string   `json:"last_name,omitempty" gorm:"column:last_name"`
	Age              *int      `json:"age,omitempty" gorm:"column:age"`
	Gender           *string   `json:"gender,omitempty" gorm:"column:gender"`
	Phone            *string   `json:"phone,omitempty" gorm:"column:phone"`
	Email            *string   `json:"email,omitempty" gorm:"column:email"`
	Address          *string   `json:"address,omitempty" gorm:"column:address"`
	MedicalHistory   *string   `json:"medical_history,omitempty" gorm:"column:medical_history"`
	EmergencyContact *string   `json:"emergency_contact,omitempty" gorm:"column:emergency_contact"`
	HospitalName     *string   `json:"hospital_name,omitempty" gorm:"column:hospital_name"`
	CollectedBy      *string   `json:"collected_by,omitempty" gorm:"column:collected_by"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (RegistrationDraft) TableName() string {
	return "registration_draft"
}
