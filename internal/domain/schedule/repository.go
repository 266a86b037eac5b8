package schedule

import (
	"context"

	"github.com/BruksfildServices01/barberias/internal/models"
)

type OverrideFilter struct {
	TenantID uint
	BarberID *uint
	From     string
	To       string
}

type Repository interface {
	// FindOverride returns domain.ErrNotFound when the date has no override.
	FindOverride(
		ctx context.Context,
		tenantID uint,
		barberID uint,
		date string,
	) (*models.SpecialSchedule, error)

	OverrideExists(
		ctx context.Context,
		tenantID uint,
		barberID uint,
		date string,
		excludeID uint,
	) (bool, error)

	CreateOverride(ctx context.Context, s *models.SpecialSchedule) error

	GetOverride(ctx context.Context, tenantID uint, id uint) (*models.SpecialSchedule, error)

	ListOverrides(ctx context.Context, f OverrideFilter) ([]models.SpecialSchedule, error)

	UpdateOverride(ctx context.Context, s *models.SpecialSchedule) error

	DeleteOverride(ctx context.Context, tenantID uint, id uint) error
}
