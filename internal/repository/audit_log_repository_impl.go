package repository

import (
	"errors"

	"clinic-report-service/internal/domain/entity"
	domainRepo "clinic-report-service/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Omit("User").Create(log).Error
}

// FindAll returns one page of audit logs, newest first, and the total number
// of entries matching filter.
func (r *auditLogRepository) FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	if filter == nil {
		filter = &entity.AuditLogFilter{}
	}

	matching := func(tx *gorm.DB) *gorm.DB {
		if filter.Action != "" {
			tx = tx.Where("action = ?", filter.Action)
		}
		if filter.UserID != nil {
			tx = tx.Where("user_id = ?", *filter.UserID)
		}
		return tx
	}

	var total int64
	if err := db.Model(&entity.AuditLog{}).Scopes(matching).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Scopes(matching)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var logs []entity.AuditLog
	err := query.Preload("User.Role").Order("created_at DESC").Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Preload("User.Role").Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
