package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of a dental appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDIENTE"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMADA"
	AppointmentStatusAttended  AppointmentStatus = "ATENDIDA"
	AppointmentStatusCancelled AppointmentStatus = "CANCELADA"
)

// Appointment is a patient visit booked with a dentist
type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DentistID   *uuid.UUID        `gorm:"type:uuid;index" json:"dentist_id,omitempty"`
	ScheduledAt time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Reason      string            `gorm:"type:text" json:"reason,omitempty"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'PENDIENTE';index" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist *User `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
