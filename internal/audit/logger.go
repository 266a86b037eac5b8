package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/barberias/internal/models"
)

// Actions recorded by the booking and schedule flows.
const (
	ActionAppointmentCreated  = "appointment_created"
	ActionAppointmentUpdated  = "appointment_updated"
	ActionAppointmentDeleted  = "appointment_deleted"
	ActionAppointmentConflict = "appointment_conflict"
	ActionQuotaExceeded       = "booking_quota_exceeded"

	ActionSpecialCreated = "special_schedule_created"
	ActionSpecialUpdated = "special_schedule_updated"
	ActionSpecialDeleted = "special_schedule_deleted"
	ActionDefaultUpdated = "default_schedule_updated"

	ActionServiceCreated = "service_created"
	ActionServiceUpdated = "service_updated"
	ActionServiceDeleted = "service_deleted"
	ActionLogoUpdated    = "tenant_logo_updated"
)

type Filter struct {
	TenantID uint
	Action   string
	Entity   string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// Store persists audit rows. Implementations must scope List by TenantID.
type Store interface {
	Append(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		TenantID: ev.TenantID,
		BarberID: ev.BarberID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.store.Append(ctx, &row)
}
