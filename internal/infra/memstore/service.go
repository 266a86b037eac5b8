package memstore

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/barberias/internal/domain"
	"github.com/BruksfildServices01/barberias/internal/domain/catalog"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type ServiceRepository struct {
	s *Store
}

var _ catalog.Repository = (*ServiceRepository)(nil)

func (r *ServiceRepository) ListActiveByBarber(_ context.Context, tenantID uint, barberID uint) ([]models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := []models.Service{}
	for _, svc := range r.s.services {
		if svc.TenantID == tenantID && svc.BarberID == barberID && svc.Active {
			list = append(list, svc)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *ServiceRepository) Get(_ context.Context, tenantID uint, id uint) (*models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	svc, ok := r.s.services[id]
	if !ok || svc.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return &svc, nil
}

func (r *ServiceRepository) Create(_ context.Context, svc *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	svc.ID = r.s.id()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	r.s.services[svc.ID] = *svc
	return nil
}

func (r *ServiceRepository) Update(_ context.Context, svc *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.services[svc.ID]
	if !ok || current.TenantID != svc.TenantID {
		return domain.ErrNotFound
	}
	current.Name = svc.Name
	current.Description = svc.Description
	current.ImageURL = svc.ImageURL
	current.Active = svc.Active
	current.UpdatedAt = r.s.now()
	r.s.services[svc.ID] = current
	return nil
}

func (r *ServiceRepository) Delete(_ context.Context, tenantID uint, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc, ok := r.s.services[id]
	if !ok || svc.TenantID != tenantID {
		return domain.ErrNotFound
	}
	delete(r.s.services, id)
	return nil
}
