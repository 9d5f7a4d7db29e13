package gormdb

import (
	"context"

	"gorm.io/gorm"

	"control-horas/internal/domain/audit"
)

type AuditRepository struct{ db *gorm.DB }

var _ audit.Repository = (*AuditRepository)(nil)

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

// Migrate creates the audit table if it does not exist yet.
func (r *AuditRepository) Migrate() error {
	return r.db.AutoMigrate(&audit.Entry{})
}

func (r *AuditRepository) Record(ctx context.Context, e *audit.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]audit.Entry, error) {
	var out []audit.Entry
	res := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}
