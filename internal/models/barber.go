package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleBarber = "barbero"
	RoleAdmin  = "admin"
)

// DaySlots holds the morning and afternoon start times of one weekday.
type DaySlots struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
}

// WeeklySchedule is keyed by Spanish weekday name (domingo..sabado).
type WeeklySchedule map[string]DaySlots

type Barber struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TenantID     uint   `gorm:"column:barberia_id;index;not null" json:"barberia_id"`
	Tenant       Tenant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name         string `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"column:rol;size:20;default:'barbero'" json:"rol"`
	Active       bool   `gorm:"column:activo;default:true" json:"activo"`

	DefaultSchedule *datatypes.JSONType[WeeklySchedule] `gorm:"column:horario_defecto" json:"horario_defecto,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Barber) TableName() string { return "barberos" }

// Weekly returns the default weekly schedule, or nil when none is configured.
func (b *Barber) Weekly() WeeklySchedule {
	if b.DefaultSchedule == nil {
		return nil
	}
	w := b.DefaultSchedule.Data()
	if w == nil {
		return nil
	}
	return w
}

func (b *Barber) SetWeekly(w WeeklySchedule) {
	v := datatypes.NewJSONType(w)
	b.DefaultSchedule = &v
}

func (b *Barber) IsAdmin() bool {
	return b.Role == RoleAdmin
}
