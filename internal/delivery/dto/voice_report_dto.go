package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type VoiceQueryRequest struct {
	Texto           string `json:"texto" validate:"required,max=500"`
	FechaReferencia string `json:"fecha_referencia,omitempty" validate:"omitempty,datetime=2006-01-02"` // Format: YYYY-MM-DD
	TipoReporte     string `json:"tipo_reporte,omitempty" validate:"omitempty,oneof=citas facturas tratamientos pacientes ingresos APPOINTMENTS INVOICES TREATMENTS PATIENTS PAYMENTS"`
}

// Response DTOs

type FiltersResponse struct {
	Estado      string `json:"estado,omitempty"`
	Paciente    string `json:"paciente_nombre,omitempty"`
	MontoMinimo string `json:"monto_minimo,omitempty"`
	MontoMaximo string `json:"monto_maximo,omitempty"`
}

type InterpretationResponse struct {
	TextoOriginal  string          `json:"texto_original"`
	TipoReporte    string          `json:"tipo_reporte"`
	Categoria      string          `json:"categoria"`
	FechaInicio    *string         `json:"fecha_inicio"` // Format: YYYY-MM-DD
	FechaFin       *string         `json:"fecha_fin"`    // Format: YYYY-MM-DD
	Filtros        FiltersResponse `json:"filtros"`
	Interpretacion string          `json:"interpretacion"`
}

type ReportSummary struct {
	Total          int    `json:"total"`
	Tipo           string `json:"tipo"`
	Periodo        string `json:"periodo,omitempty"`
	TotalIngresos  string `json:"total_ingresos,omitempty"`
	Promedio       string `json:"promedio,omitempty"`
	TotalFacturado string `json:"total_facturado,omitempty"`
	TotalCobrado   string `json:"total_cobrado,omitempty"`
	SaldoPendiente string `json:"saldo_pendiente,omitempty"`
}

// VoiceReportResponse carries one of the row slices below in Datos
type VoiceReportResponse struct {
	Interpretacion InterpretationResponse `json:"interpretacion"`
	Datos          interface{}            `json:"datos"`
	Resumen        ReportSummary          `json:"resumen"`
	Mensaje        string                 `json:"mensaje,omitempty"`
}

type AppointmentRow struct {
	ID         uuid.UUID `json:"id"`
	Fecha      string    `json:"fecha"`
	Hora       string    `json:"hora"`
	Paciente   string    `json:"paciente"`
	Odontologo string    `json:"odontologo"`
	Motivo     string    `json:"motivo"`
	Estado     string    `json:"estado"`
}

type InvoiceRow struct {
	ID          uuid.UUID `json:"id"`
	Numero      string    `json:"numero"`
	Fecha       string    `json:"fecha"`
	Paciente    string    `json:"paciente"`
	MontoTotal  string    `json:"monto_total"`
	MontoPagado string    `json:"monto_pagado"`
	Saldo       string    `json:"saldo"`
	Estado      string    `json:"estado"`
}

type TreatmentRow struct {
	ID         uuid.UUID `json:"id"`
	Fecha      string    `json:"fecha"`
	Paciente   string    `json:"paciente"`
	Odontologo string    `json:"odontologo"`
	Titulo     string    `json:"titulo"`
	Estado     string    `json:"estado"`
	Total      string    `json:"total"`
}

type PatientRow struct {
	ID            uuid.UUID `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	CI            string    `json:"ci"`
	FechaRegistro string    `json:"fecha_registro"`
	Activo        bool      `json:"activo"`
}

type PaymentRow struct {
	ID         uuid.UUID `json:"id"`
	Fecha      string    `json:"fecha"`
	Monto      string    `json:"monto"`
	MetodoPago string    `json:"metodo_pago"`
	Factura    string    `json:"factura"`
	Paciente   string    `json:"paciente"`
}
