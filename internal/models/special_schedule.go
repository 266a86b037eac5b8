package models

import (
	"time"

	"gorm.io/datatypes"
)

// SpecialSchedule overrides a barber's default schedule on one date.
type SpecialSchedule struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TenantID   uint   `gorm:"column:barberia_id;not null;uniqueIndex:idx_horario_especial_dia" json:"barberia_id"`
	BarberID   uint   `gorm:"column:barbero_id;not null;uniqueIndex:idx_horario_especial_dia" json:"barbero_id"`
	Barber     Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Date       string `gorm:"column:fecha;size:10;not null;uniqueIndex:idx_horario_especial_dia" json:"fecha"`
	WorkingDay bool   `gorm:"column:dia_laborable;not null;default:true" json:"dia_laborable"`

	Morning   datatypes.JSONSlice[string] `gorm:"column:horario_manana;type:jsonb;not null;default:'[]'" json:"horario_manana"`
	Afternoon datatypes.JSONSlice[string] `gorm:"column:horario_tarde;type:jsonb;not null;default:'[]'" json:"horario_tarde"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SpecialSchedule) TableName() string { return "horarios_especiales" }
