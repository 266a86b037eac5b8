package schedule

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/domain"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/domain/schedule"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/timeofday"
	"github.com/BruksfildServices01/barberias/internal/timezone"
)

var (
	ErrSpecialNotFound = httperr.NotFoundErr(
		"horario_especial_no_encontrado",
		"Horario especial no encontrado.",
	)
	ErrSpecialDuplicate = httperr.ConflictErr(
		"horario_especial_duplicado",
		"Ya existe un horario especial para esta fecha.",
	)
	ErrInvalidDate = httperr.BadRequestErr("fecha_invalida", "Fecha inválida, use YYYY-MM-DD.")
)

// ======================================================
// INPUT
// ======================================================

type SpecialScheduleInput struct {
	// BarberID defaults to the acting barber when zero.
	BarberID   uint
	Date       string
	WorkingDay bool
	Morning    []string
	Afternoon  []string
}

func normalizeSpecial(in SpecialScheduleInput) (SpecialScheduleInput, error) {
	if _, err := timezone.ParseDate(in.Date, ""); err != nil {
		return in, ErrInvalidDate
	}

	m, err := timeofday.NormalizeAll(in.Morning)
	if err != nil {
		return in, httperr.BadRequestErr("invalid_time", "Hora inválida en el horario de mañana.")
	}
	a, err := timeofday.NormalizeAll(in.Afternoon)
	if err != nil {
		return in, httperr.BadRequestErr("invalid_time", "Hora inválida en el horario de tarde.")
	}

	in.Morning = m
	in.Afternoon = a
	return in, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateSpecialSchedule struct {
	barbers   barberdomain.Repository
	schedules schedule.Repository
	audit     audit.Sink
}

func NewCreateSpecialSchedule(
	barbers barberdomain.Repository,
	schedules schedule.Repository,
	audit audit.Sink,
) *CreateSpecialSchedule {
	return &CreateSpecialSchedule{
		barbers:   barbers,
		schedules: schedules,
		audit:     audit,
	}
}

func (uc *CreateSpecialSchedule) Execute(
	ctx context.Context,
	actor auth.Identity,
	in SpecialScheduleInput,
) (*models.SpecialSchedule, error) {

	// --------------------------------------------------
	// 1️⃣ Permisos
	// --------------------------------------------------
	if in.BarberID == 0 {
		in.BarberID = actor.BarberID
	}
	if !actor.CanActOn(actor.TenantID, in.BarberID) {
		return nil, ErrScheduleForbidden
	}
	if _, err := loadBarber(ctx, uc.barbers, actor.TenantID, in.BarberID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Validación
	// --------------------------------------------------
	in, err := normalizeSpecial(in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Duplicado
	// --------------------------------------------------
	exists, err := uc.schedules.OverrideExists(ctx, actor.TenantID, in.BarberID, in.Date, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSpecialDuplicate
	}

	// --------------------------------------------------
	// 4️⃣ Persistencia
	// --------------------------------------------------
	s := &models.SpecialSchedule{
		TenantID:   actor.TenantID,
		BarberID:   in.BarberID,
		Date:       in.Date,
		WorkingDay: in.WorkingDay,
		Morning:    in.Morning,
		Afternoon:  in.Afternoon,
	}
	if err := uc.schedules.CreateOverride(ctx, s); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, ErrSpecialDuplicate
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionSpecialCreated,
		Entity:   "horario_especial",
		EntityID: &s.ID,
		Metadata: map[string]any{"fecha": s.Date, "barbero_id": s.BarberID},
	})

	return s, nil
}

// ======================================================
// LIST
// ======================================================

type ListSpecialSchedules struct {
	schedules schedule.Repository
}

func NewListSpecialSchedules(schedules schedule.Repository) *ListSpecialSchedules {
	return &ListSpecialSchedules{schedules: schedules}
}

// Execute lists the actor's own overrides. Admins see the whole tenant, or
// one barber when barberID is set.
func (uc *ListSpecialSchedules) Execute(
	ctx context.Context,
	actor auth.Identity,
	barberID *uint,
	from string,
	to string,
) ([]models.SpecialSchedule, error) {

	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := timezone.ParseDate(d, ""); err != nil {
			return nil, ErrInvalidDate
		}
	}

	f := schedule.OverrideFilter{
		TenantID: actor.TenantID,
		From:     from,
		To:       to,
	}
	if actor.IsAdmin() {
		f.BarberID = barberID
	} else {
		own := actor.BarberID
		f.BarberID = &own
	}

	return uc.schedules.ListOverrides(ctx, f)
}

// ======================================================
// UPDATE
// ======================================================

type UpdateSpecialSchedule struct {
	schedules schedule.Repository
	audit     audit.Sink
}

func NewUpdateSpecialSchedule(
	schedules schedule.Repository,
	audit audit.Sink,
) *UpdateSpecialSchedule {
	return &UpdateSpecialSchedule{
		schedules: schedules,
		audit:     audit,
	}
}

func (uc *UpdateSpecialSchedule) Execute(
	ctx context.Context,
	actor auth.Identity,
	id uint,
	in SpecialScheduleInput,
) (*models.SpecialSchedule, error) {

	current, err := getSpecial(ctx, uc.schedules, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanActOn(current.TenantID, current.BarberID) {
		return nil, ErrScheduleForbidden
	}

	in, err = normalizeSpecial(in)
	if err != nil {
		return nil, err
	}

	exists, err := uc.schedules.OverrideExists(ctx, actor.TenantID, current.BarberID, in.Date, current.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSpecialDuplicate
	}

	current.Date = in.Date
	current.WorkingDay = in.WorkingDay
	current.Morning = in.Morning
	current.Afternoon = in.Afternoon

	if err := uc.schedules.UpdateOverride(ctx, current); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, ErrSpecialDuplicate
		case errors.Is(err, domain.ErrNotFound):
			return nil, ErrSpecialNotFound
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionSpecialUpdated,
		Entity:   "horario_especial",
		EntityID: &current.ID,
		Metadata: map[string]any{"fecha": current.Date},
	})

	return current, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteSpecialSchedule struct {
	schedules schedule.Repository
	audit     audit.Sink
}

func NewDeleteSpecialSchedule(
	schedules schedule.Repository,
	audit audit.Sink,
) *DeleteSpecialSchedule {
	return &DeleteSpecialSchedule{
		schedules: schedules,
		audit:     audit,
	}
}

func (uc *DeleteSpecialSchedule) Execute(
	ctx context.Context,
	actor auth.Identity,
	id uint,
) error {

	current, err := getSpecial(ctx, uc.schedules, actor.TenantID, id)
	if err != nil {
		return err
	}
	if !actor.CanActOn(current.TenantID, current.BarberID) {
		return ErrScheduleForbidden
	}

	if err := uc.schedules.DeleteOverride(ctx, actor.TenantID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrSpecialNotFound
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		BarberID: &actor.BarberID,
		Action:   audit.ActionSpecialDeleted,
		Entity:   "horario_especial",
		EntityID: &id,
		Metadata: map[string]any{"fecha": current.Date, "barbero_id": current.BarberID},
	})

	return nil
}

func getSpecial(
	ctx context.Context,
	repo schedule.Repository,
	tenantID uint,
	id uint,
) (*models.SpecialSchedule, error) {

	s, err := repo.GetOverride(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrSpecialNotFound
		}
		return nil, err
	}
	return s, nil
}
