package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

var _ audit.Store = (*AuditGormRepository)(nil)

func (r *AuditGormRepository) Append(ctx context.Context, log *models.AuditLog) error {
	return translate(r.db.WithContext(ctx).Create(log).Error)
}

func (r *AuditGormRepository) List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("barberia_id = ?", f.TenantID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, translate(err)
	}
	return logs, total, nil
}
