package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDIENTE"
	PaymentStatusCompleted PaymentStatus = "COMPLETADO"
	PaymentStatusFailed    PaymentStatus = "FALLIDO"
)

// Payment is money received from a patient, optionally against an invoice
type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	InvoiceID *uuid.UUID      `gorm:"type:uuid;index" json:"invoice_id,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Method    string          `gorm:"type:varchar(30)" json:"method,omitempty"`
	Status    PaymentStatus   `gorm:"type:varchar(20);not null;default:'PENDIENTE';index" json:"status"`
	PaidAt    time.Time       `gorm:"not null;index" json:"paid_at"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient User     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Invoice *Invoice `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
