package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

var _ barber.Repository = (*BarberGormRepository)(nil)

func (r *BarberGormRepository) Get(ctx context.Context, tenantID uint, id uint) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barberia_id = ?", id, tenantID).
		First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BarberGormRepository) ListActive(ctx context.Context, tenantID uint) ([]models.Barber, error) {
	var list []models.Barber
	if err := r.db.WithContext(ctx).
		Where("barberia_id = ? AND activo = ? AND rol <> ?", tenantID, true, models.RoleAdmin).
		Order("nombre ASC").
		Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *BarberGormRepository) FindByUsername(ctx context.Context, username string) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BarberGormRepository) FindByName(ctx context.Context, tenantID uint, name string) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("barberia_id = ? AND LOWER(nombre) = LOWER(?)", tenantID, name).
		First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BarberGormRepository) Save(ctx context.Context, b *models.Barber) error {
	return translate(r.db.WithContext(ctx).Omit("Tenant").Save(b).Error)
}
