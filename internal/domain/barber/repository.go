package barber

import (
	"context"

	"github.com/BruksfildServices01/barberias/internal/models"
)

type Repository interface {
	// Get is tenant-scoped: a barber of another tenant is domain.ErrNotFound.
	Get(ctx context.Context, tenantID uint, id uint) (*models.Barber, error)
	// ListActive excludes inactive barbers and admin accounts.
	ListActive(ctx context.Context, tenantID uint) ([]models.Barber, error)
	FindByUsername(ctx context.Context, username string) (*models.Barber, error)
	FindByName(ctx context.Context, tenantID uint, name string) (*models.Barber, error)
	Save(ctx context.Context, b *models.Barber) error
}
