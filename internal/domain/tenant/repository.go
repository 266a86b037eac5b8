package tenant

import (
	"context"

	"github.com/BruksfildServices01/barberias/internal/models"
)

type Repository interface {
	FindActiveBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	// FirstActive returns the active tenant with the lowest id.
	FirstActive(ctx context.Context) (*models.Tenant, error)
	GetByID(ctx context.Context, id uint) (*models.Tenant, error)
	Save(ctx context.Context, t *models.Tenant) error
}
