package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberias/internal/models"
)

type ListFilter struct {
	TenantID uint
	BarberID *uint
	Date     string
	Phone    string
}

type Repository interface {
	// -------- Availability --------
	// ListForDay returns every booking of one barber on one date, scoped to
	// the tenant.
	ListForDay(
		ctx context.Context,
		tenantID uint,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Conflict --------
	Exists(
		ctx context.Context,
		tenantID uint,
		barberID uint,
		date string,
		time string,
		excludeID uint,
	) (bool, error)

	// -------- CRUD --------
	// Create returns domain.ErrDuplicate when the slot is already taken.
	Create(ctx context.Context, ap *models.Appointment) error

	Get(ctx context.Context, tenantID uint, id uint) (*models.Appointment, error)

	Update(ctx context.Context, ap *models.Appointment) error

	Delete(ctx context.Context, tenantID uint, id uint) error

	// List preloads the barber, ordered by date then time.
	List(ctx context.Context, f ListFilter) ([]models.Appointment, error)
}
