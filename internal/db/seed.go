package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/barberias/internal/auth"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	catalogdomain "github.com/BruksfildServices01/barberias/internal/domain/catalog"
	tenantdomain "github.com/BruksfildServices01/barberias/internal/domain/tenant"
	"github.com/BruksfildServices01/barberias/internal/models"
)

func demoWeek() models.WeeklySchedule {
	weekday := models.DaySlots{
		Morning:   []string{"09:00", "10:00", "11:00"},
		Afternoon: []string{"14:00", "15:00", "16:00", "17:00"},
	}
	return models.WeeklySchedule{
		"domingo":   {},
		"lunes":     weekday,
		"martes":    weekday,
		"miercoles": weekday,
		"jueves":    weekday,
		"viernes":   weekday,
		"sabado":    {Morning: []string{"09:00", "10:00", "11:00", "12:00"}},
	}
}

// SeedDemo loads one barbería with an admin and two barbers. All accounts
// share password.
func SeedDemo(
	ctx context.Context,
	tenants tenantdomain.Repository,
	barbers barberdomain.Repository,
	services catalogdomain.Repository,
	password string,
	log *zap.Logger,
) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	t := &models.Tenant{
		Name:        "Barbería Principal",
		Slug:        "principal",
		Timezone:    "America/Bogota",
		Active:      true,
		ThemeColors: datatypes.JSONMap{"primario": "#1f2937", "secundario": "#d4a373"},
	}
	if err := tenants.Save(ctx, t); err != nil {
		return fmt.Errorf("seeding tenant: %w", err)
	}

	catalog := map[string][]string{
		"Giovany": {"Corte de cabello", "Barba", "Corte y Barba"},
		"Ana":     {"Corte", "Peinados", "Trenzados", "Limpieza facial"},
	}

	people := []models.Barber{
		{Name: "Administrador", Username: "admin", Role: models.RoleAdmin},
		{Name: "Giovany", Username: "giovany", Role: models.RoleBarber},
		{Name: "Ana", Username: "ana", Role: models.RoleBarber},
	}
	for i := range people {
		b := &people[i]
		b.TenantID = t.ID
		b.PasswordHash = hash
		b.Active = true
		if !b.IsAdmin() {
			b.SetWeekly(demoWeek())
		}
		if err := barbers.Save(ctx, b); err != nil {
			return fmt.Errorf("seeding barber %s: %w", b.Username, err)
		}

		for _, name := range catalog[b.Name] {
			svc := &models.Service{TenantID: t.ID, BarberID: b.ID, Name: name, Active: true}
			if err := services.Create(ctx, svc); err != nil {
				return fmt.Errorf("seeding service %s: %w", name, err)
			}
		}
	}

	log.Info("demo data loaded",
		zap.String("barberia", t.Slug),
		zap.Int("barberos", len(people)),
	)
	return nil
}
