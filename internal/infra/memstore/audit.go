package memstore

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type AuditRepository struct {
	s *Store
}

var _ audit.Store = (*AuditRepository)(nil)

func (r *AuditRepository) Append(_ context.Context, log *models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	log.ID = r.s.id()
	log.CreatedAt = r.s.now()
	r.s.auditLogs = append(r.s.auditLogs, *log)
	return nil
}

func (r *AuditRepository) List(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := []models.AuditLog{}
	for _, l := range r.s.auditLogs {
		if l.TenantID != f.TenantID {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !l.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, l)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := f.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if f.Limit > 0 && start+f.Limit < end {
		end = start + f.Limit
	}
	return matched[start:end], total, nil
}
