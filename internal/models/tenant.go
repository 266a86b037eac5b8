package models

import (
	"time"

	"gorm.io/datatypes"
)

// Tenant is a barbería using the shared platform.
type Tenant struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Name        string            `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Slug        string            `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	LogoURL     string            `gorm:"size:255" json:"logo_url"`
	ThemeColors datatypes.JSONMap `gorm:"column:colores_tema" json:"colores_tema"`
	Timezone    string            `gorm:"size:64" json:"timezone"`
	Active      bool              `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (Tenant) TableName() string { return "barberias" }
