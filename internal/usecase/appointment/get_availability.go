package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberias/internal/domain/appointment"
	"github.com/BruksfildServices01/barberias/internal/domain/schedule"
	"github.com/BruksfildServices01/barberias/internal/timezone"
)

const (
	StatusNonWorking = "no_laboral"
	StatusFull       = "completo"
	StatusAvailable  = "disponible"
)

type DaySource interface {
	ResolveDay(ctx context.Context, tenantID, barberID uint, date time.Time) (schedule.Day, error)
}

type AvailabilityInput struct {
	TenantID uint
	BarberID uint
	Date     time.Time
}

type Availability struct {
	Day   schedule.Day
	Slots []string
}

func (a Availability) Status() string {
	switch {
	case a.Day.NonWorkingDay():
		return StatusNonWorking
	case len(a.Slots) == 0:
		return StatusFull
	default:
		return StatusAvailable
	}
}

type GetAvailability struct {
	source DaySource
	repo   domain.Repository
}

func NewGetAvailability(source DaySource, repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		source: source,
		repo:   repo,
	}
}

// Execute returns the free start times of a barber on a date: the resolved
// schedule's candidates minus the times already booked.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (Availability, error) {

	day, err := uc.source.ResolveDay(ctx, in.TenantID, in.BarberID, in.Date)
	if err != nil {
		return Availability{}, err
	}

	if day.NonWorkingDay() {
		return Availability{Day: day, Slots: []string{}}, nil
	}

	booked, err := uc.repo.ListForDay(ctx, in.TenantID, in.BarberID, in.Date.Format(timezone.DateLayout))
	if err != nil {
		return Availability{}, err
	}

	return Availability{
		Day:   day,
		Slots: domain.Subtract(day.Candidates(), domain.TakenTimes(booked)),
	}, nil
}
