package repository

import (
	"clinic-report-service/internal/domain/entity"

	"gorm.io/gorm"
)

// ReportRepository reads the records behind each voice report category.
// Every finder honours the full filter and returns at most filter.Limit rows.
type ReportRepository interface {
	FindAppointments(db *gorm.DB, filter *entity.ReportFilter) ([]entity.Appointment, error)
	FindInvoices(db *gorm.DB, filter *entity.ReportFilter) ([]entity.Invoice, error)
	FindTreatmentPlans(db *gorm.DB, filter *entity.ReportFilter) ([]entity.TreatmentPlan, error)
	FindPatients(db *gorm.DB, filter *entity.ReportFilter) ([]entity.User, error)
	FindPayments(db *gorm.DB, filter *entity.ReportFilter) ([]entity.Payment, error)
}
