package models

import "time"

type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TenantID    uint   `gorm:"column:barberia_id;index;not null" json:"barberia_id"`
	BarberID    uint   `gorm:"column:barbero_id;index;not null" json:"barbero_id"`
	Barber      Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name        string `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Description string `gorm:"column:descripcion;size:255" json:"descripcion"`
	ImageURL    string `gorm:"column:imagen_url;size:255" json:"imagen_url"`
	Active      bool   `gorm:"column:activo;default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "servicios" }
