package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barberias/internal/domain"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/domain/schedule"
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/timezone"
)

// Source resolves the schedule of one barber on one date from the store.
type Source struct {
	barbers   barberdomain.Repository
	schedules schedule.Repository
}

func NewSource(
	barbers barberdomain.Repository,
	schedules schedule.Repository,
) *Source {
	return &Source{
		barbers:   barbers,
		schedules: schedules,
	}
}

func (s *Source) ResolveDay(
	ctx context.Context,
	tenantID uint,
	barberID uint,
	date time.Time,
) (schedule.Day, error) {

	b, err := loadBarber(ctx, s.barbers, tenantID, barberID)
	if err != nil {
		return schedule.Day{}, err
	}

	override, err := s.schedules.FindOverride(ctx, tenantID, barberID, date.Format(timezone.DateLayout))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return schedule.Day{}, err
		}
		override = nil
	}

	return schedule.Resolve(override, b.Weekly(), date)
}

func loadBarber(
	ctx context.Context,
	repo barberdomain.Repository,
	tenantID uint,
	barberID uint,
) (*models.Barber, error) {

	b, err := repo.Get(ctx, tenantID, barberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, barberdomain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
