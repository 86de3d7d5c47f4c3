package dto

import (
	"time"

	"clinic-report-service/internal/domain/entity"
)

// Request DTOs

type AuditLogQuery struct {
	Action string `json:"action" validate:"omitempty,max=100"`
	UserID string `json:"user_id" validate:"omitempty,uuid"`
	Page   int    `json:"page" validate:"gte=1"`
	Limit  int    `json:"limit" validate:"gte=1,lte=100"`
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64         `json:"id"`
	User      *UserResponse `json:"user,omitempty"`
	Action    string        `json:"action"`
	Metadata  entity.JSON   `json:"metadata"`
	CreatedAt time.Time     `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
}
