package repository

import (
	"fmt"

	"gorm.io/gorm"

	"blogapi/internal/model"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(entry *model.AuditLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create audit log failed: %w", err)
	}
	return nil
}
