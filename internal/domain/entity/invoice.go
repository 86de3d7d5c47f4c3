package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the collection state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "PENDIENTE"
	InvoiceStatusPaid      InvoiceStatus = "PAGADA"
	InvoiceStatusCancelled InvoiceStatus = "ANULADA"
)

// Invoice is a bill issued to a patient
type Invoice struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Number     string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"number"`
	PatientID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	IssuedAt   time.Time       `gorm:"not null;index" json:"issued_at"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"paid_amount"`
	Status     InvoiceStatus   `gorm:"type:varchar(20);not null;default:'PENDIENTE';index" json:"status"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// Balance is the amount still owed on the invoice
func (i *Invoice) Balance() decimal.Decimal {
	if i.Status == InvoiceStatusCancelled {
		return decimal.Zero
	}
	balance := i.Total.Sub(i.PaidAmount)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// IsCancelled checks if the invoice was voided
func (i *Invoice) IsCancelled() bool {
	return i.Status == InvoiceStatusCancelled
}
