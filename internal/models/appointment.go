package models

import "time"

// Appointment is a confirmed booking. (barberia_id, barbero_id, fecha, hora)
// is unique at the storage layer.
type Appointment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID uint   `gorm:"column:barberia_id;not null;uniqueIndex:idx_cita_slot" json:"barberia_id"`
	BarberID uint   `gorm:"column:barbero_id;not null;uniqueIndex:idx_cita_slot" json:"barbero_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date string `gorm:"column:fecha;size:10;not null;uniqueIndex:idx_cita_slot" json:"fecha"`
	Time string `gorm:"column:hora;size:5;not null;uniqueIndex:idx_cita_slot" json:"hora"`

	FirstName string `gorm:"column:nombre;size:100;not null" json:"nombre"`
	LastName  string `gorm:"column:apellido;size:100" json:"apellido"`
	Phone     string `gorm:"column:telefono;size:20;index" json:"telefono"`
	Service   string `gorm:"column:servicio;size:100" json:"servicio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string { return "citas" }
