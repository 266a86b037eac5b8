package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/domain"
	domainappointment "github.com/BruksfildServices01/barberias/internal/domain/appointment"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/timeofday"
	"github.com/BruksfildServices01/barberias/internal/timezone"
	"github.com/BruksfildServices01/barberias/internal/validators"
)

// UpdateInput carries the new values. Empty fields keep the current value.
type UpdateInput struct {
	ID       uint
	BarberID uint

	FirstName string
	LastName  string
	Phone     string
	Service   string

	Date string
	Time string
}

type UpdateAppointment struct {
	barbers barberdomain.Repository
	repo    domainappointment.Repository
	audit   audit.Sink
}

func NewUpdateAppointment(
	barbers barberdomain.Repository,
	repo domainappointment.Repository,
	audit audit.Sink,
) *UpdateAppointment {
	return &UpdateAppointment{
		barbers: barbers,
		repo:    repo,
		audit:   audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actor auth.Identity,
	in UpdateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Cita + permisos
	// --------------------------------------------------
	ap, err := getAppointment(ctx, uc.repo, actor.TenantID, in.ID)
	if err != nil {
		return nil, err
	}
	if !domainappointment.CanManage(actor, ap) {
		return nil, ErrEditForbidden
	}

	if in.BarberID != 0 && in.BarberID != ap.BarberID {
		if !actor.CanActOn(actor.TenantID, in.BarberID) {
			return nil, ErrEditForbidden
		}
		if _, err := uc.barbers.Get(ctx, actor.TenantID, in.BarberID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, barberdomain.ErrNotFound
			}
			return nil, err
		}
		ap.BarberID = in.BarberID
	}

	// --------------------------------------------------
	// 2️⃣ Nuevos valores
	// --------------------------------------------------
	if in.Date != "" {
		date, err := timezone.ParseDate(in.Date, "")
		if err != nil {
			return nil, ErrInvalidDate
		}
		ap.Date = date.Format(timezone.DateLayout)
	}
	if in.Time != "" {
		hour, err := timeofday.Normalize(in.Time)
		if err != nil {
			return nil, ErrInvalidTime
		}
		ap.Time = hour
	}
	if in.Phone != "" {
		phone := validators.NormalizePhone(in.Phone)
		if phone == "" {
			return nil, ErrInvalidPhone
		}
		ap.Phone = phone
	}
	if v := strings.TrimSpace(in.FirstName); v != "" {
		ap.FirstName = v
	}
	if v := strings.TrimSpace(in.LastName); v != "" {
		ap.LastName = v
	}
	if v := strings.TrimSpace(in.Service); v != "" {
		ap.Service = v
	}

	// --------------------------------------------------
	// 3️⃣ Conflicto (excluyendo la propia cita)
	// --------------------------------------------------
	taken, err := uc.repo.Exists(ctx, ap.TenantID, ap.BarberID, ap.Date, ap.Time, ap.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, ErrSlotTaken
		case errors.Is(err, domain.ErrNotFound):
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionAppointmentUpdated,
		Entity:   "cita",
		EntityID: &ap.ID,
		Metadata: map[string]any{"barbero_id": ap.BarberID, "fecha": ap.Date, "hora": ap.Time},
	})

	return ap, nil
}

func getAppointment(
	ctx context.Context,
	repo domainappointment.Repository,
	tenantID uint,
	id uint,
) (*models.Appointment, error) {

	ap, err := repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return ap, nil
}
