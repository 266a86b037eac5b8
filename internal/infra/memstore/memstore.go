// Package memstore keeps every repository in process memory. It enforces the
// same uniqueness and tenant scoping as the SQL schema.
package memstore

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/barberias/internal/models"
)

type Store struct {
	mu     sync.RWMutex
	nextID uint
	now    func() time.Time

	tenants      map[uint]models.Tenant
	barbers      map[uint]models.Barber
	services     map[uint]models.Service
	overrides    map[uint]models.SpecialSchedule
	appointments map[uint]models.Appointment
	auditLogs    []models.AuditLog
}

func New() *Store {
	return &Store{
		now:          time.Now,
		tenants:      map[uint]models.Tenant{},
		barbers:      map[uint]models.Barber{},
		services:     map[uint]models.Service{},
		overrides:    map[uint]models.SpecialSchedule{},
		appointments: map[uint]models.Appointment{},
	}
}

// id must be called with mu held.
func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func (s *Store) Tenants() *TenantRepository           { return &TenantRepository{s: s} }
func (s *Store) Barbers() *BarberRepository           { return &BarberRepository{s: s} }
func (s *Store) Services() *ServiceRepository         { return &ServiceRepository{s: s} }
func (s *Store) Schedules() *ScheduleRepository       { return &ScheduleRepository{s: s} }
func (s *Store) Appointments() *AppointmentRepository { return &AppointmentRepository{s: s} }
func (s *Store) Audit() *AuditRepository              { return &AuditRepository{s: s} }
