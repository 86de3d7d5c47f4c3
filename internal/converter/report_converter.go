package converter

import (
	"time"

	"clinic-report-service/internal/delivery/dto"
	"clinic-report-service/internal/domain/entity"
	"clinic-report-service/internal/nlp"

	"github.com/shopspring/decimal"
)

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "02/01/2006"
	notAvailable      = "N/A"
)

var (
	appointmentStatusLabels = map[entity.AppointmentStatus]string{
		entity.AppointmentStatusPending:   "Pendiente",
		entity.AppointmentStatusConfirmed: "Confirmada",
		entity.AppointmentStatusAttended:  "Atendida",
		entity.AppointmentStatusCancelled: "Cancelada",
	}
	invoiceStatusLabels = map[entity.InvoiceStatus]string{
		entity.InvoiceStatusPending:   "Pendiente",
		entity.InvoiceStatusPaid:      "Pagada",
		entity.InvoiceStatusCancelled: "Anulada",
	}
	treatmentStatusLabels = map[entity.TreatmentStatus]string{
		entity.TreatmentStatusProposed:   "Propuesto",
		entity.TreatmentStatusInProgress: "En progreso",
		entity.TreatmentStatusCompleted:  "Completado",
		entity.TreatmentStatusCancelled:  "Cancelado",
	}
	paymentMethodLabels = map[string]string{
		"EFECTIVO":      "Efectivo",
		"TARJETA":       "Tarjeta",
		"TRANSFERENCIA": "Transferencia",
		"QR":            "QR",
	}
)

// InterpretationToResponse converts the interpreter output to its JSON form
func InterpretationToResponse(q *entity.QueryInterpretation) dto.InterpretationResponse {
	res := dto.InterpretationResponse{
		TextoOriginal:  q.OriginalText,
		TipoReporte:    q.Category.DisplayName(),
		Categoria:      string(q.Category),
		Interpretacion: q.Summary,
	}

	if q.DateRange.Start != nil {
		start := q.DateRange.Start.Format(isoDateLayout)
		res.FechaInicio = &start
	}
	if q.DateRange.End != nil {
		end := q.DateRange.End.Format(isoDateLayout)
		res.FechaFin = &end
	}

	if q.Filters.Status != nil {
		res.Filtros.Estado = nlp.StatusLabel(q.Category, *q.Filters.Status)
	}
	if q.Filters.PatientName != nil {
		res.Filtros.Paciente = *q.Filters.PatientName
	}
	if q.Filters.MinAmount != nil {
		res.Filtros.MontoMinimo = Money(*q.Filters.MinAmount)
	}
	if q.Filters.MaxAmount != nil {
		res.Filtros.MontoMaximo = Money(*q.Filters.MaxAmount)
	}

	return res
}

// Money renders an amount with exactly two decimals
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func AppointmentsToRows(appointments []entity.Appointment, loc *time.Location) []dto.AppointmentRow {
	rows := make([]dto.AppointmentRow, len(appointments))
	for i, a := range appointments {
		at := a.ScheduledAt.In(location(loc))
		rows[i] = dto.AppointmentRow{
			ID:         a.ID,
			Fecha:      at.Format(displayDateLayout),
			Hora:       at.Format("15:04"),
			Paciente:   nameOf(&a.Patient),
			Odontologo: nameOf(a.Dentist),
			Motivo:     orNotAvailable(a.Reason),
			Estado:     labelOr(appointmentStatusLabels[a.Status], string(a.Status)),
		}
	}
	return rows
}

func InvoicesToRows(invoices []entity.Invoice, loc *time.Location) []dto.InvoiceRow {
	rows := make([]dto.InvoiceRow, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		rows[i] = dto.InvoiceRow{
			ID:          inv.ID,
			Numero:      inv.Number,
			Fecha:       inv.IssuedAt.In(location(loc)).Format(displayDateLayout),
			Paciente:    nameOf(&inv.Patient),
			MontoTotal:  Money(inv.Total),
			MontoPagado: Money(inv.PaidAmount),
			Saldo:       Money(inv.Balance()),
			Estado:      labelOr(invoiceStatusLabels[inv.Status], string(inv.Status)),
		}
	}
	return rows
}

func TreatmentPlansToRows(plans []entity.TreatmentPlan, loc *time.Location) []dto.TreatmentRow {
	rows := make([]dto.TreatmentRow, len(plans))
	for i, p := range plans {
		rows[i] = dto.TreatmentRow{
			ID:         p.ID,
			Fecha:      p.CreatedAt.In(location(loc)).Format(displayDateLayout),
			Paciente:   nameOf(&p.Patient),
			Odontologo: nameOf(p.Dentist),
			Titulo:     p.Title,
			Estado:     labelOr(treatmentStatusLabels[p.Status], string(p.Status)),
			Total:      Money(p.Total),
		}
	}
	return rows
}

func PatientsToRows(patients []entity.User, loc *time.Location) []dto.PatientRow {
	rows := make([]dto.PatientRow, len(patients))
	for i := range patients {
		u := &patients[i]
		rows[i] = dto.PatientRow{
			ID:            u.ID,
			Nombre:        u.FullName,
			Email:         u.Email,
			Telefono:      orNotAvailable(u.Phone),
			CI:            orNotAvailable(u.NationalID),
			FechaRegistro: u.CreatedAt.In(location(loc)).Format(displayDateLayout),
			Activo:        u.Active(),
		}
	}
	return rows
}

func PaymentsToRows(payments []entity.Payment, loc *time.Location) []dto.PaymentRow {
	rows := make([]dto.PaymentRow, len(payments))
	for i, p := range payments {
		invoice := notAvailable
		if p.Invoice != nil && p.Invoice.Number != "" {
			invoice = p.Invoice.Number
		}
		rows[i] = dto.PaymentRow{
			ID:         p.ID,
			Fecha:      p.PaidAt.In(location(loc)).Format(displayDateLayout + " 15:04"),
			Monto:      Money(p.Amount),
			MetodoPago: labelOr(paymentMethodLabels[p.Method], orNotAvailable(p.Method)),
			Factura:    invoice,
			Paciente:   nameOf(&p.Patient),
		}
	}
	return rows
}

func nameOf(u *entity.User) string {
	if u == nil || u.FullName == "" {
		return notAvailable
	}
	return u.FullName
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
