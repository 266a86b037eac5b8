package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/domain"
	domainappointment "github.com/BruksfildServices01/barberias/internal/domain/appointment"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/quota"
	"github.com/BruksfildServices01/barberias/internal/timeofday"
	"github.com/BruksfildServices01/barberias/internal/timezone"
	"github.com/BruksfildServices01/barberias/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicInput struct {
	TenantID uint
	Timezone string
	BarberID uint

	FirstName string
	LastName  string
	Phone     string
	Service   string

	Date string
	Time string

	// DeviceID identifies the client device for the booking quota.
	DeviceID string
}

type CreateResult struct {
	Appointment *models.Appointment
	Warning     string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePublicAppointment struct {
	barbers barberdomain.Repository
	repo    domainappointment.Repository
	quota   *quota.Quota
	audit   audit.Sink
	now     func() time.Time
}

func NewCreatePublicAppointment(
	barbers barberdomain.Repository,
	repo domainappointment.Repository,
	quota *quota.Quota,
	audit audit.Sink,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		barbers: barbers,
		repo:    repo,
		quota:   quota,
		audit:   audit,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicInput,
) (*CreateResult, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obligatorios
	// --------------------------------------------------
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Service = strings.TrimSpace(in.Service)
	if in.FirstName == "" || in.Phone == "" || in.Service == "" ||
		in.Date == "" || in.Time == "" || in.BarberID == 0 {
		return nil, ErrMissingFields
	}

	phone := validators.NormalizePhone(in.Phone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}

	// --------------------------------------------------
	// 2️⃣ Fecha / hora en el calendario de la barbería
	// --------------------------------------------------
	hour, err := timeofday.Normalize(in.Time)
	if err != nil {
		return nil, ErrInvalidTime
	}

	date, err := timezone.ParseDate(in.Date, in.Timezone)
	if err != nil {
		return nil, ErrInvalidDate
	}

	today := timezone.Today(uc.now(), in.Timezone)
	if !domainappointment.WithinBookingWindow(date, today) {
		return nil, ErrOutsideWindow
	}
	day := date.Format(timezone.DateLayout)

	// --------------------------------------------------
	// 3️⃣ Barbero de la barbería
	// --------------------------------------------------
	b, err := uc.barbers.Get(ctx, in.TenantID, in.BarberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, barberdomain.ErrNotFound
		}
		return nil, err
	}
	if !b.Active {
		return nil, barberdomain.ErrNotFound
	}

	// --------------------------------------------------
	// 4️⃣ Límite de reservas (advertencia)
	// --------------------------------------------------
	subject := strings.TrimSpace(in.DeviceID)
	if subject == "" {
		subject = phone
	}

	warning := ""
	switch uc.quota.Check(ctx, in.TenantID, subject) {
	case quota.Deny:
		uc.audit.Dispatch(audit.Event{
			TenantID: in.TenantID,
			Action:   audit.ActionQuotaExceeded,
			Entity:   "cita",
			Metadata: map[string]any{"barbero_id": b.ID, "fecha": day, "hora": hour},
		})
		return nil, ErrQuotaExceeded
	case quota.Warn:
		warning = QuotaWarning
	}

	// --------------------------------------------------
	// 5️⃣ Conflicto de horario
	// --------------------------------------------------
	taken, err := uc.repo.Exists(ctx, in.TenantID, b.ID, day, hour, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		uc.conflict(in.TenantID, b.ID, day, hour)
		return nil, ErrSlotTaken
	}

	// --------------------------------------------------
	// 6️⃣ Creación (la restricción única decide)
	// --------------------------------------------------
	ap := &models.Appointment{
		TenantID:  in.TenantID,
		BarberID:  b.ID,
		Date:      day,
		Time:      hour,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     phone,
		Service:   in.Service,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			uc.conflict(in.TenantID, b.ID, day, hour)
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	uc.quota.Record(ctx, in.TenantID, subject)

	// --------------------------------------------------
	// 7️⃣ Auditoría
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "cita",
		EntityID: &ap.ID,
		Metadata: map[string]any{"barbero_id": b.ID, "fecha": day, "hora": hour},
	})

	return &CreateResult{Appointment: ap, Warning: warning}, nil
}

func (uc *CreatePublicAppointment) conflict(tenantID, barberID uint, day, hour string) {
	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		Action:   audit.ActionAppointmentConflict,
		Entity:   "cita",
		Metadata: map[string]any{"barbero_id": barberID, "fecha": day, "hora": hour},
	})
}
