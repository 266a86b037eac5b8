package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/domain/schedule"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/models"
)

var ErrScheduleForbidden = httperr.ForbiddenErr(
	"forbidden",
	"No tienes permisos para modificar este horario.",
)

// ======================================================
// GET
// ======================================================

type GetDefaultSchedule struct {
	barbers barberdomain.Repository
}

func NewGetDefaultSchedule(barbers barberdomain.Repository) *GetDefaultSchedule {
	return &GetDefaultSchedule{barbers: barbers}
}

// Week returns the full weekly map.
func (uc *GetDefaultSchedule) Week(
	ctx context.Context,
	tenantID uint,
	barberID uint,
) (models.WeeklySchedule, error) {

	b, err := loadBarber(ctx, uc.barbers, tenantID, barberID)
	if err != nil {
		return nil, err
	}

	weekly := b.Weekly()
	if weekly == nil {
		return nil, schedule.ErrNotConfigured
	}
	return weekly, nil
}

// Day returns the default entry for the weekday of date, ignoring overrides.
func (uc *GetDefaultSchedule) Day(
	ctx context.Context,
	tenantID uint,
	barberID uint,
	date time.Time,
) (schedule.Day, error) {

	b, err := loadBarber(ctx, uc.barbers, tenantID, barberID)
	if err != nil {
		return schedule.Day{}, err
	}
	return schedule.Resolve(nil, b.Weekly(), date)
}

// ======================================================
// UPDATE
// ======================================================

type UpdateDefaultSchedule struct {
	barbers barberdomain.Repository
	audit   audit.Sink
}

func NewUpdateDefaultSchedule(
	barbers barberdomain.Repository,
	audit audit.Sink,
) *UpdateDefaultSchedule {
	return &UpdateDefaultSchedule{
		barbers: barbers,
		audit:   audit,
	}
}

func (uc *UpdateDefaultSchedule) Execute(
	ctx context.Context,
	actor auth.Identity,
	barberID uint,
	weekly models.WeeklySchedule,
) (models.WeeklySchedule, error) {

	if !actor.CanActOn(actor.TenantID, barberID) {
		return nil, ErrScheduleForbidden
	}

	b, err := loadBarber(ctx, uc.barbers, actor.TenantID, barberID)
	if err != nil {
		return nil, err
	}

	normalized, err := schedule.ValidateWeekly(weekly)
	if err != nil {
		return nil, err
	}

	b.SetWeekly(normalized)
	if err := uc.barbers.Save(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionDefaultUpdated,
		Entity:   "barbero",
		EntityID: &b.ID,
	})

	return normalized, nil
}
