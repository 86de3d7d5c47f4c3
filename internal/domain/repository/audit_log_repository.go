package repository

import (
	"clinic-report-service/internal/domain/entity"

	"gorm.io/gorm"
)

// AuditLogRepository stores the audit trail. FindAll returns one page,
// newest first, plus the number of rows matching the filter.
type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
