package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/domain"
	domainappointment "github.com/BruksfildServices01/barberias/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domainappointment.Repository
	audit audit.Sink
}

func NewDeleteAppointment(
	repo domainappointment.Repository,
	audit audit.Sink,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor auth.Identity,
	id uint,
) error {

	ap, err := getAppointment(ctx, uc.repo, actor.TenantID, id)
	if err != nil {
		return err
	}
	if !domainappointment.CanManage(actor, ap) {
		return ErrDeleteForbidden
	}

	if err := uc.repo.Delete(ctx, actor.TenantID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionAppointmentDeleted,
		Entity:   "cita",
		EntityID: &id,
		Metadata: map[string]any{"barbero_id": ap.BarberID, "fecha": ap.Date, "hora": ap.Time},
	})

	return nil
}
