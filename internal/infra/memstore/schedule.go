package memstore

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/barberias/internal/domain"
	"github.com/BruksfildServices01/barberias/internal/domain/schedule"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type ScheduleRepository struct {
	s *Store
}

var _ schedule.Repository = (*ScheduleRepository)(nil)

// overrideTaken must be called with mu held.
func (r *ScheduleRepository) overrideTaken(tenantID, barberID uint, date string, excludeID uint) bool {
	for _, o := range r.s.overrides {
		if o.ID != excludeID && o.TenantID == tenantID && o.BarberID == barberID && o.Date == date {
			return true
		}
	}
	return false
}

func (r *ScheduleRepository) FindOverride(_ context.Context, tenantID uint, barberID uint, date string) (*models.SpecialSchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, o := range r.s.overrides {
		if o.TenantID == tenantID && o.BarberID == barberID && o.Date == date {
			out := o
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ScheduleRepository) OverrideExists(_ context.Context, tenantID uint, barberID uint, date string, excludeID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.overrideTaken(tenantID, barberID, date, excludeID), nil
}

func (r *ScheduleRepository) CreateOverride(_ context.Context, o *models.SpecialSchedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.overrideTaken(o.TenantID, o.BarberID, o.Date, 0) {
		return domain.ErrDuplicate
	}

	now := r.s.now()
	o.ID = r.s.id()
	o.CreatedAt = now
	o.UpdatedAt = now
	r.s.overrides[o.ID] = *o
	return nil
}

func (r *ScheduleRepository) GetOverride(_ context.Context, tenantID uint, id uint) (*models.SpecialSchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.overrides[id]
	if !ok || o.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (r *ScheduleRepository) ListOverrides(_ context.Context, f schedule.OverrideFilter) ([]models.SpecialSchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := []models.SpecialSchedule{}
	for _, o := range r.s.overrides {
		if o.TenantID != f.TenantID {
			continue
		}
		if f.BarberID != nil && o.BarberID != *f.BarberID {
			continue
		}
		if f.From != "" && o.Date < f.From {
			continue
		}
		if f.To != "" && o.Date > f.To {
			continue
		}
		list = append(list, o)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *ScheduleRepository) UpdateOverride(_ context.Context, o *models.SpecialSchedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.overrides[o.ID]
	if !ok || current.TenantID != o.TenantID {
		return domain.ErrNotFound
	}
	if r.overrideTaken(current.TenantID, current.BarberID, o.Date, o.ID) {
		return domain.ErrDuplicate
	}

	current.Date = o.Date
	current.WorkingDay = o.WorkingDay
	current.Morning = o.Morning
	current.Afternoon = o.Afternoon
	current.UpdatedAt = r.s.now()
	r.s.overrides[o.ID] = current
	return nil
}

func (r *ScheduleRepository) DeleteOverride(_ context.Context, tenantID uint, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.overrides[id]
	if !ok || o.TenantID != tenantID {
		return domain.ErrNotFound
	}
	delete(r.s.overrides, id)
	return nil
}
