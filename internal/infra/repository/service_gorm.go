package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberias/internal/domain/catalog"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

var _ catalog.Repository = (*ServiceGormRepository)(nil)

func (r *ServiceGormRepository) ListActiveByBarber(
	ctx context.Context,
	tenantID uint,
	barberID uint,
) ([]models.Service, error) {

	var list []models.Service
	if err := r.db.WithContext(ctx).
		Where("barberia_id = ? AND barbero_id = ? AND activo = ?", tenantID, barberID, true).
		Order("nombre ASC").
		Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *ServiceGormRepository) Get(ctx context.Context, tenantID uint, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barberia_id = ?", id, tenantID).
		First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return translate(r.db.WithContext(ctx).Omit("Barber").Create(s).Error)
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ? AND barberia_id = ?", s.ID, s.TenantID).
		Updates(map[string]any{
			"nombre":      s.Name,
			"descripcion": s.Description,
			"imagen_url":  s.ImageURL,
			"activo":      s.Active,
		})
	return affected(res)
}

func (r *ServiceGormRepository) Delete(ctx context.Context, tenantID uint, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND barberia_id = ?", id, tenantID).
		Delete(&models.Service{})
	return affected(res)
}
