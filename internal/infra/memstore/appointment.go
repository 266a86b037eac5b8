package memstore

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/barberias/internal/domain"
	"github.com/BruksfildServices01/barberias/internal/domain/appointment"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type AppointmentRepository struct {
	s *Store
}

var _ appointment.Repository = (*AppointmentRepository)(nil)

// slotTaken must be called with mu held.
func (r *AppointmentRepository) slotTaken(tenantID, barberID uint, date, hour string, excludeID uint) bool {
	for _, ap := range r.s.appointments {
		if ap.ID != excludeID &&
			ap.TenantID == tenantID &&
			ap.BarberID == barberID &&
			ap.Date == date &&
			ap.Time == hour {
			return true
		}
	}
	return false
}

func sortByDateTime(list []models.Appointment) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		if list[i].Time != list[j].Time {
			return list[i].Time < list[j].Time
		}
		return list[i].ID < list[j].ID
	})
}

func (r *AppointmentRepository) ListForDay(_ context.Context, tenantID uint, barberID uint, date string) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := []models.Appointment{}
	for _, ap := range r.s.appointments {
		if ap.TenantID == tenantID && ap.BarberID == barberID && ap.Date == date {
			list = append(list, ap)
		}
	}
	sortByDateTime(list)
	return list, nil
}

func (r *AppointmentRepository) Exists(_ context.Context, tenantID uint, barberID uint, date string, hour string, excludeID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.slotTaken(tenantID, barberID, date, hour, excludeID), nil
}

func (r *AppointmentRepository) Create(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.slotTaken(ap.TenantID, ap.BarberID, ap.Date, ap.Time, 0) {
		return domain.ErrDuplicate
	}

	now := r.s.now()
	ap.ID = r.s.id()
	ap.CreatedAt = now
	ap.UpdatedAt = now
	stored := *ap
	stored.Barber = models.Barber{}
	r.s.appointments[ap.ID] = stored
	return nil
}

func (r *AppointmentRepository) Get(_ context.Context, tenantID uint, id uint) (*models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ap, ok := r.s.appointments[id]
	if !ok || ap.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (r *AppointmentRepository) Update(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.appointments[ap.ID]
	if !ok || current.TenantID != ap.TenantID {
		return domain.ErrNotFound
	}
	if r.slotTaken(ap.TenantID, ap.BarberID, ap.Date, ap.Time, ap.ID) {
		return domain.ErrDuplicate
	}

	current.BarberID = ap.BarberID
	current.Date = ap.Date
	current.Time = ap.Time
	current.FirstName = ap.FirstName
	current.LastName = ap.LastName
	current.Phone = ap.Phone
	current.Service = ap.Service
	current.UpdatedAt = r.s.now()
	r.s.appointments[ap.ID] = current
	return nil
}

func (r *AppointmentRepository) Delete(_ context.Context, tenantID uint, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ap, ok := r.s.appointments[id]
	if !ok || ap.TenantID != tenantID {
		return domain.ErrNotFound
	}
	delete(r.s.appointments, id)
	return nil
}

func (r *AppointmentRepository) List(_ context.Context, f appointment.ListFilter) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := []models.Appointment{}
	for _, ap := range r.s.appointments {
		if ap.TenantID != f.TenantID {
			continue
		}
		if f.BarberID != nil && ap.BarberID != *f.BarberID {
			continue
		}
		if f.Date != "" && ap.Date != f.Date {
			continue
		}
		if f.Phone != "" && ap.Phone != f.Phone {
			continue
		}
		if b, ok := r.s.barbers[ap.BarberID]; ok {
			ap.Barber = b
		}
		list = append(list, ap)
	}
	sortByDateTime(list)
	return list, nil
}
