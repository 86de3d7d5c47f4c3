package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TreatmentStatus represents the progress of a treatment plan
type TreatmentStatus string

const (
	TreatmentStatusProposed   TreatmentStatus = "PROPUESTO"
	TreatmentStatusInProgress TreatmentStatus = "EN_PROGRESO"
	TreatmentStatusCompleted  TreatmentStatus = "COMPLETADO"
	TreatmentStatusCancelled  TreatmentStatus = "CANCELADO"
)

// TreatmentPlan groups the procedures proposed to a patient
type TreatmentPlan struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	DentistID *uuid.UUID      `gorm:"type:uuid;index" json:"dentist_id,omitempty"`
	Title     string          `gorm:"type:varchar(255);not null" json:"title"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	Status    TreatmentStatus `gorm:"type:varchar(20);not null;default:'PROPUESTO';index" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist *User `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
}

func (TreatmentPlan) TableName() string {
	return "treatment_plans"
}
