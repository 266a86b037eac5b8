package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberias/internal/domain/appointment"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	tenantID uint,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var list []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barberia_id = ? AND barbero_id = ? AND fecha = ?", tenantID, barberID, date).
		Order("hora ASC").
		Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

// --------------------------------------------------
// Conflict
// --------------------------------------------------

func (r *AppointmentGormRepository) Exists(
	ctx context.Context,
	tenantID uint,
	barberID uint,
	date string,
	hour string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barberia_id = ? AND barbero_id = ? AND fecha = ? AND hora = ?",
			tenantID,
			barberID,
			date,
			hour,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(r.db.WithContext(ctx).Omit("Barber").Create(ap).Error)
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	tenantID uint,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barberia_id = ?", id, tenantID).
		First(&ap).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND barberia_id = ?", ap.ID, ap.TenantID).
		Updates(map[string]any{
			"barbero_id": ap.BarberID,
			"fecha":      ap.Date,
			"hora":       ap.Time,
			"nombre":     ap.FirstName,
			"apellido":   ap.LastName,
			"telefono":   ap.Phone,
			"servicio":   ap.Service,
		})
	return affected(res)
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	tenantID uint,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND barberia_id = ?", id, tenantID).
		Delete(&models.Appointment{})
	return affected(res)
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Barber").
		Where("barberia_id = ?", f.TenantID)

	if f.BarberID != nil {
		q = q.Where("barbero_id = ?", *f.BarberID)
	}
	if f.Date != "" {
		q = q.Where("fecha = ?", f.Date)
	}
	if f.Phone != "" {
		q = q.Where("telefono = ?", f.Phone)
	}

	var list []models.Appointment
	if err := q.Order("fecha ASC, hora ASC").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}
