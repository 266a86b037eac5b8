package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/domain"
	domainappointment "github.com/BruksfildServices01/barberias/internal/domain/appointment"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/dto"
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/timezone"
	"github.com/BruksfildServices01/barberias/internal/validators"
)

// ======================================================
// STAFF LIST
// ======================================================

type ListAppointments struct {
	repo domainappointment.Repository
}

func NewListAppointments(repo domainappointment.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lists the actor's own appointments. Admins see the whole tenant,
// or one barber when barberID is set.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor auth.Identity,
	barberID *uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	f := domainappointment.ListFilter{TenantID: actor.TenantID}

	if date != "" {
		d, err := timezone.ParseDate(date, "")
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.Date = d.Format(timezone.DateLayout)
	}

	if actor.IsAdmin() {
		f.BarberID = barberID
	} else {
		own := actor.BarberID
		f.BarberID = &own
	}

	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentList(list), nil
}

// ======================================================
// PUBLIC FILTER
// ======================================================

type FilterAppointments struct {
	barbers barberdomain.Repository
	repo    domainappointment.Repository
}

func NewFilterAppointments(
	barbers barberdomain.Repository,
	repo domainappointment.Repository,
) *FilterAppointments {
	return &FilterAppointments{
		barbers: barbers,
		repo:    repo,
	}
}

// Execute lists the bookings of one date, by barber id or barber name.
func (uc *FilterAppointments) Execute(
	ctx context.Context,
	tenantID uint,
	date string,
	barberID *uint,
	barberName string,
) ([]dto.PublicAppointmentDTO, error) {

	if strings.TrimSpace(date) == "" {
		return nil, ErrDateRequired
	}
	d, err := timezone.ParseDate(date, "")
	if err != nil {
		return nil, ErrInvalidDate
	}

	f := domainappointment.ListFilter{
		TenantID: tenantID,
		BarberID: barberID,
		Date:     d.Format(timezone.DateLayout),
	}

	if barberID == nil && strings.TrimSpace(barberName) != "" {
		b, err := uc.barbers.FindByName(ctx, tenantID, strings.TrimSpace(barberName))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return []dto.PublicAppointmentDTO{}, nil
			}
			return nil, err
		}
		f.BarberID = &b.ID
	}

	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.NewPublicAppointmentList(list), nil
}

// ======================================================
// SAME-DAY CHECK
// ======================================================

type FindSameDayBooking struct {
	repo domainappointment.Repository
}

func NewFindSameDayBooking(repo domainappointment.Repository) *FindSameDayBooking {
	return &FindSameDayBooking{repo: repo}
}

// Execute returns the first booking of phone on date, or nil.
func (uc *FindSameDayBooking) Execute(
	ctx context.Context,
	tenantID uint,
	phone string,
	date string,
) (*models.Appointment, error) {

	normalized := validators.NormalizePhone(phone)
	if normalized == "" {
		return nil, ErrInvalidPhone
	}
	d, err := timezone.ParseDate(date, "")
	if err != nil {
		return nil, ErrInvalidDate
	}

	list, err := uc.repo.List(ctx, domainappointment.ListFilter{
		TenantID: tenantID,
		Phone:    normalized,
		Date:     d.Format(timezone.DateLayout),
	})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}
