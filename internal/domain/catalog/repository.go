package catalog

import (
	"context"

	"github.com/BruksfildServices01/barberias/internal/models"
)

type Repository interface {
	ListActiveByBarber(ctx context.Context, tenantID uint, barberID uint) ([]models.Service, error)
	Get(ctx context.Context, tenantID uint, id uint) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, tenantID uint, id uint) error
}
