package memstore

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/barberias/internal/domain"
	"github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type BarberRepository struct {
	s *Store
}

var _ barber.Repository = (*BarberRepository)(nil)

func (r *BarberRepository) Get(_ context.Context, tenantID uint, id uint) (*models.Barber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.barbers[id]
	if !ok || b.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *BarberRepository) ListActive(_ context.Context, tenantID uint) ([]models.Barber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := []models.Barber{}
	for _, b := range r.s.barbers {
		if b.TenantID == tenantID && b.Active && !b.IsAdmin() {
			list = append(list, b)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *BarberRepository) FindByUsername(_ context.Context, username string) (*models.Barber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.barbers {
		if b.Username == username {
			out := b
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BarberRepository) FindByName(_ context.Context, tenantID uint, name string) (*models.Barber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found *models.Barber
	for _, b := range r.s.barbers {
		if b.TenantID != tenantID || !strings.EqualFold(b.Name, name) {
			continue
		}
		if found == nil || b.ID < found.ID {
			out := b
			found = &out
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *BarberRepository) Save(_ context.Context, b *models.Barber) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.barbers {
		if other.Username == b.Username && other.ID != b.ID {
			return domain.ErrDuplicate
		}
	}

	now := r.s.now()
	if b.ID == 0 {
		b.ID = r.s.id()
		b.CreatedAt = now
	}
	if b.Role == "" {
		b.Role = models.RoleBarber
	}
	b.UpdatedAt = now
	r.s.barbers[b.ID] = *b
	return nil
}
