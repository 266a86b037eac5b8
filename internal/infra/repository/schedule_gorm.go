package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberias/internal/domain/schedule"
	"github.com/BruksfildServices01/barberias/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

var _ schedule.Repository = (*ScheduleGormRepository)(nil)

func (r *ScheduleGormRepository) FindOverride(
	ctx context.Context,
	tenantID uint,
	barberID uint,
	date string,
) (*models.SpecialSchedule, error) {

	var s models.SpecialSchedule
	if err := r.db.WithContext(ctx).
		Where("barberia_id = ? AND barbero_id = ? AND fecha = ?", tenantID, barberID, date).
		First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *ScheduleGormRepository) OverrideExists(
	ctx context.Context,
	tenantID uint,
	barberID uint,
	date string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.SpecialSchedule{}).
		Where("barberia_id = ? AND barbero_id = ? AND fecha = ?", tenantID, barberID, date)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *ScheduleGormRepository) CreateOverride(
	ctx context.Context,
	s *models.SpecialSchedule,
) error {
	return translate(r.db.WithContext(ctx).Omit("Barber").Create(s).Error)
}

func (r *ScheduleGormRepository) GetOverride(
	ctx context.Context,
	tenantID uint,
	id uint,
) (*models.SpecialSchedule, error) {

	var s models.SpecialSchedule
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barberia_id = ?", id, tenantID).
		First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *ScheduleGormRepository) ListOverrides(
	ctx context.Context,
	f schedule.OverrideFilter,
) ([]models.SpecialSchedule, error) {

	q := r.db.WithContext(ctx).Where("barberia_id = ?", f.TenantID)
	if f.BarberID != nil {
		q = q.Where("barbero_id = ?", *f.BarberID)
	}
	if f.From != "" {
		q = q.Where("fecha >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("fecha <= ?", f.To)
	}

	var list []models.SpecialSchedule
	if err := q.Order("fecha ASC").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *ScheduleGormRepository) UpdateOverride(
	ctx context.Context,
	s *models.SpecialSchedule,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.SpecialSchedule{}).
		Where("id = ? AND barberia_id = ?", s.ID, s.TenantID).
		Updates(map[string]any{
			"fecha":          s.Date,
			"dia_laborable":  s.WorkingDay,
			"horario_manana": s.Morning,
			"horario_tarde":  s.Afternoon,
		})
	return affected(res)
}

func (r *ScheduleGormRepository) DeleteOverride(
	ctx context.Context,
	tenantID uint,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND barberia_id = ?", id, tenantID).
		Delete(&models.SpecialSchedule{})
	return affected(res)
}
