package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberias/internal/domain/tenant"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type TenantGormRepository struct {
	db *gorm.DB
}

func NewTenantGormRepository(db *gorm.DB) *TenantGormRepository {
	return &TenantGormRepository{db: db}
}

var _ tenant.Repository = (*TenantGormRepository)(nil)

func (r *TenantGormRepository) FindActiveBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND activo = ?", slug, true).
		First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TenantGormRepository) FirstActive(ctx context.Context) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("id ASC").
		First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TenantGormRepository) GetByID(ctx context.Context, id uint) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TenantGormRepository) Save(ctx context.Context, t *models.Tenant) error {
	return translate(r.db.WithContext(ctx).Save(t).Error)
}
