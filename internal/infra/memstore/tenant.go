package memstore

import (
	"context"

	"github.com/BruksfildServices01/barberias/internal/domain"
	"github.com/BruksfildServices01/barberias/internal/domain/tenant"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type TenantRepository struct {
	s *Store
}

var _ tenant.Repository = (*TenantRepository)(nil)

func (r *TenantRepository) FindActiveBySlug(_ context.Context, slug string) (*models.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.tenants {
		if t.Slug == slug && t.Active {
			out := t
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *TenantRepository) FirstActive(_ context.Context) (*models.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found *models.Tenant
	for _, t := range r.s.tenants {
		if !t.Active {
			continue
		}
		if found == nil || t.ID < found.ID {
			out := t
			found = &out
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *TenantRepository) GetByID(_ context.Context, id uint) (*models.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tenants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *TenantRepository) Save(_ context.Context, t *models.Tenant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.tenants {
		if other.Slug == t.Slug && other.ID != t.ID {
			return domain.ErrDuplicate
		}
	}

	now := r.s.now()
	if t.ID == 0 {
		t.ID = r.s.id()
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	r.s.tenants[t.ID] = *t
	return nil
}
