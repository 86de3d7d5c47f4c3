package repository

import (
	"clinic-report-service/internal/domain/entity"
	domainRepo "clinic-report-service/internal/domain/repository"

	"gorm.io/gorm"
)

var (
	appointmentStatuses = map[entity.StatusCode]entity.AppointmentStatus{
		entity.StatusPending:   entity.AppointmentStatusPending,
		entity.StatusConfirmed: entity.AppointmentStatusConfirmed,
		entity.StatusCompleted: entity.AppointmentStatusAttended,
		entity.StatusCancelled: entity.AppointmentStatusCancelled,
	}
	invoiceStatuses = map[entity.StatusCode]entity.InvoiceStatus{
		entity.StatusPending:   entity.InvoiceStatusPending,
		entity.StatusPaid:      entity.InvoiceStatusPaid,
		entity.StatusCancelled: entity.InvoiceStatusCancelled,
	}
	treatmentStatuses = map[entity.StatusCode]entity.TreatmentStatus{
		entity.StatusProposed:   entity.TreatmentStatusProposed,
		entity.StatusInProgress: entity.TreatmentStatusInProgress,
		entity.StatusCompleted:  entity.TreatmentStatusCompleted,
		entity.StatusCancelled:  entity.TreatmentStatusCancelled,
	}
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) FindAppointments(db *gorm.DB, filter *entity.ReportFilter) ([]entity.Appointment, error) {
	appointments := []entity.Appointment{}
	query := scoped(db, filter, "appointments", "scheduled_at", "")

	if filter != nil && filter.Status != nil {
		status, ok := appointmentStatuses[*filter.Status]
		if !ok {
			return appointments, nil
		}
		query = query.Where("appointments.status = ?", status)
	}

	err := query.
		Preload("Patient").Preload("Dentist").
		Order("appointments.scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *reportRepository) FindInvoices(db *gorm.DB, filter *entity.ReportFilter) ([]entity.Invoice, error) {
	invoices := []entity.Invoice{}
	query := scoped(db, filter, "invoices", "issued_at", "total")

	if filter != nil && filter.Status != nil {
		status, ok := invoiceStatuses[*filter.Status]
		if !ok {
			return invoices, nil
		}
		query = query.Where("invoices.status = ?", status)
	}

	err := query.
		Preload("Patient").
		Order("invoices.issued_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *reportRepository) FindTreatmentPlans(db *gorm.DB, filter *entity.ReportFilter) ([]entity.TreatmentPlan, error) {
	plans := []entity.TreatmentPlan{}
	query := scoped(db, filter, "treatment_plans", "created_at", "total")

	if filter != nil && filter.Status != nil {
		status, ok := treatmentStatuses[*filter.Status]
		if !ok {
			return plans, nil
		}
		query = query.Where("treatment_plans.status = ?", status)
	}

	err := query.
		Preload("Patient").Preload("Dentist").
		Order("treatment_plans.created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// FindPatients lists patient accounts registered within the period.
func (r *reportRepository) FindPatients(db *gorm.DB, filter *entity.ReportFilter) ([]entity.User, error) {
	patients := []entity.User{}
	query := db.Where("users.role_id = ?", entity.RoleIDPatient)

	if filter != nil {
		if filter.StartAt != nil {
			query = query.Where("users.created_at >= ?", *filter.StartAt)
		}
		if filter.EndAt != nil {
			query = query.Where("users.created_at <= ?", *filter.EndAt)
		}
		if filter.PatientName != "" {
			query = query.Where("users.full_name ILIKE ?", "%"+filter.PatientName+"%")
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
	}

	err := query.Order("users.created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// FindPayments only returns settled payments.
func (r *reportRepository) FindPayments(db *gorm.DB, filter *entity.ReportFilter) ([]entity.Payment, error) {
	payments := []entity.Payment{}
	err := scoped(db, filter, "payments", "paid_at", "amount").
		Where("payments.status = ?", entity.PaymentStatusCompleted).
		Preload("Patient").Preload("Invoice").
		Order("payments.paid_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// scoped applies the period, patient name, amount and limit parts of filter
// to table. amountColumn may be empty when the table carries no amount.
func scoped(db *gorm.DB, filter *entity.ReportFilter, table, dateColumn, amountColumn string) *gorm.DB {
	query := db.Table(table)
	if filter == nil {
		return query
	}

	if filter.StartAt != nil {
		query = query.Where(table+"."+dateColumn+" >= ?", *filter.StartAt)
	}
	if filter.EndAt != nil {
		query = query.Where(table+"."+dateColumn+" <= ?", *filter.EndAt)
	}
	if filter.PatientName != "" {
		query = query.
			Joins("JOIN users patients ON patients.id = "+table+".patient_id").
			Where("patients.full_name ILIKE ?", "%"+filter.PatientName+"%")
	}
	if amountColumn != "" {
		if filter.MinAmount != nil {
			query = query.Where(table+"."+amountColumn+" >= ?", *filter.MinAmount)
		}
		if filter.MaxAmount != nil {
			query = query.Where(table+"."+amountColumn+" <= ?", *filter.MaxAmount)
		}
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	return query
}
