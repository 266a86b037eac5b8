package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/domain/appointment"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/infra/memstore"
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/quota"
	schedulesvc "github.com/BruksfildServices01/barberias/internal/usecase/schedule"
)

const tz = "America/Bogota"

// Monday 2025-06-09, 08:00 in Bogotá. The booking window runs to 2025-07-09.
var now = time.Date(2025, 6, 9, 13, 0, 0, 0, time.UTC)

type fixture struct {
	store    *memstore.Store
	tenantA  *models.Tenant
	tenantB  *models.Tenant
	barberA  *models.Barber
	barberB  *models.Barber
	create   *CreatePublicAppointment
	avail    *GetAvailability
	recorder *recordingSink
}

type recordingSink struct {
	events []audit.Event
}

func (r *recordingSink) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

func (r *recordingSink) actions() []string {
	out := []string{}
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

func tuesdaySchedule() models.WeeklySchedule {
	return models.WeeklySchedule{
		"martes": {Morning: []string{"09:00", "10:00"}, Afternoon: []string{"14:00", "15:00"}},
	}
}

func newFixture(t *testing.T, q *quota.Quota) fixture {
	t.Helper()

	store := memstore.New()
	ctx := context.Background()

	tenantA := &models.Tenant{Name: "A", Slug: "a", Active: true, Timezone: tz}
	tenantB := &models.Tenant{Name: "B", Slug: "b", Active: true, Timezone: tz}
	require.NoError(t, store.Tenants().Save(ctx, tenantA))
	require.NoError(t, store.Tenants().Save(ctx, tenantB))

	barberA := &models.Barber{TenantID: tenantA.ID, Name: "Giovany", Username: "giovany", Active: true}
	barberA.SetWeekly(tuesdaySchedule())
	require.NoError(t, store.Barbers().Save(ctx, barberA))

	barberB := &models.Barber{TenantID: tenantB.ID, Name: "Danitza", Username: "danitza", Active: true}
	barberB.SetWeekly(tuesdaySchedule())
	require.NoError(t, store.Barbers().Save(ctx, barberB))

	rec := &recordingSink{}
	create := NewCreatePublicAppointment(store.Barbers(), store.Appointments(), q, rec)
	create.now = func() time.Time { return now }

	return fixture{
		store:    store,
		tenantA:  tenantA,
		tenantB:  tenantB,
		barberA:  barberA,
		barberB:  barberB,
		create:   create,
		avail:    NewGetAvailability(schedulesvc.NewSource(store.Barbers(), store.Schedules()), store.Appointments()),
		recorder: rec,
	}
}

func (f fixture) input(barberID uint, hour string) CreatePublicInput {
	return CreatePublicInput{
		TenantID:  f.tenantA.ID,
		Timezone:  tz,
		BarberID:  barberID,
		FirstName: "Ana",
		LastName:  "Pérez",
		Phone:     "3001234567",
		Service:   "Corte",
		Date:      "2025-06-10",
		Time:      hour,
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	require.NoError(t, err)
	return d
}

func TestGetAvailability_SubtractsBooked(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, f.input(f.barberA.ID, "10:00"))
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, f.input(f.barberA.ID, "3:00 PM"))
	require.NoError(t, err)

	got, err := f.avail.Execute(ctx, AvailabilityInput{TenantID: f.tenantA.ID, BarberID: f.barberA.ID, Date: date(t, "2025-06-10")})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "14:00"}, got.Slots)
	assert.Equal(t, StatusAvailable, got.Status())

	again, err := f.avail.Execute(ctx, AvailabilityInput{TenantID: f.tenantA.ID, BarberID: f.barberA.ID, Date: date(t, "2025-06-10")})
	require.NoError(t, err)
	assert.Equal(t, got.Slots, again.Slots)
}

func TestGetAvailability_Idempotent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, f.input(f.barberA.ID, "09:00"))
	require.NoError(t, err)

	owner := auth.Identity{BarberID: f.barberA.ID, TenantID: f.tenantA.ID, Role: models.RoleBarber}
	createSpecial := schedulesvc.NewCreateSpecialSchedule(f.store.Barbers(), f.store.Schedules(), audit.Discard{})
	_, err = createSpecial.Execute(ctx, owner, schedulesvc.SpecialScheduleInput{
		Date:       "2025-06-11",
		WorkingDay: true,
		Morning:    []string{"11:00"},
		Afternoon:  []string{"4:00 PM"},
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		date  string
		slots []string
	}{
		{name: "default day with booking", date: "2025-06-10", slots: []string{"10:00", "14:00", "15:00"}},
		{name: "override day", date: "2025-06-11", slots: []string{"11:00", "16:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := AvailabilityInput{TenantID: f.tenantA.ID, BarberID: f.barberA.ID, Date: date(t, tt.date)}

			first, err := f.avail.Execute(ctx, in)
			require.NoError(t, err)
			second, err := f.avail.Execute(ctx, in)
			require.NoError(t, err)

			assert.Equal(t, tt.slots, first.Slots)
			assert.Equal(t, first, second)
			assert.Equal(t, first.Day, second.Day)
		})
	}
}

func TestGetAvailability_NonWorkingDay(t *testing.T) {
	f := newFixture(t, nil)

	got, err := f.avail.Execute(context.Background(), AvailabilityInput{TenantID: f.tenantA.ID, BarberID: f.barberA.ID, Date: date(t, "2025-06-11")})
	require.NoError(t, err)
	assert.Empty(t, got.Slots)
	assert.NotNil(t, got.Slots)
	assert.Equal(t, StatusNonWorking, got.Status())
}

func TestGetAvailability_OverrideDayOff(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	owner := auth.Identity{BarberID: f.barberA.ID, TenantID: f.tenantA.ID, Role: models.RoleBarber}
	createSpecial := schedulesvc.NewCreateSpecialSchedule(f.store.Barbers(), f.store.Schedules(), audit.Discard{})
	_, err := createSpecial.Execute(ctx, owner, schedulesvc.SpecialScheduleInput{Date: "2025-06-10", WorkingDay: false})
	require.NoError(t, err)

	got, err := f.avail.Execute(ctx, AvailabilityInput{TenantID: f.tenantA.ID, BarberID: f.barberA.ID, Date: date(t, "2025-06-10")})
	require.NoError(t, err)
	assert.Empty(t, got.Slots)
	assert.Equal(t, StatusNonWorking, got.Status())
}

func TestGetAvailability_FullDay(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	for _, h := range []string{"09:00", "10:00", "14:00", "15:00"} {
		_, err := f.create.Execute(ctx, f.input(f.barberA.ID, h))
		require.NoError(t, err)
	}

	got, err := f.avail.Execute(ctx, AvailabilityInput{TenantID: f.tenantA.ID, BarberID: f.barberA.ID, Date: date(t, "2025-06-10")})
	require.NoError(t, err)
	assert.Equal(t, StatusFull, got.Status())
}

func TestGetAvailability_TenantIsolation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	// Same barber id value, different tenant.
	collision := &models.Appointment{
		TenantID: f.tenantB.ID,
		BarberID: f.barberA.ID,
		Date:     "2025-06-10",
		Time:     "14:00",
	}
	require.NoError(t, f.store.Appointments().Create(ctx, collision))

	got, err := f.avail.Execute(ctx, AvailabilityInput{TenantID: f.tenantA.ID, BarberID: f.barberA.ID, Date: date(t, "2025-06-10")})
	require.NoError(t, err)
	assert.Contains(t, got.Slots, "14:00")

	res, err := f.create.Execute(ctx, f.input(f.barberA.ID, "14:00"))
	require.NoError(t, err)
	assert.NotZero(t, res.Appointment.ID)
}

func TestGetAvailability_BarberOfOtherTenant(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.avail.Execute(context.Background(), AvailabilityInput{TenantID: f.tenantA.ID, BarberID: f.barberB.ID, Date: date(t, "2025-06-10")})
	assert.ErrorIs(t, err, barberdomain.ErrNotFound)
}

func TestCreate_SecondBookingOfSlotConflicts(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	first, err := f.create.Execute(ctx, f.input(f.barberA.ID, "14:00"))
	require.NoError(t, err)
	assert.Equal(t, "14:00", first.Appointment.Time)

	second := f.input(f.barberA.ID, "2:00 PM")
	second.FirstName = "Luis"
	second.Phone = "3109876543"
	_, err = f.create.Execute(ctx, second)
	assert.ErrorIs(t, err, ErrSlotTaken)

	list, err := f.store.Appointments().ListForDay(ctx, f.tenantA.ID, f.barberA.ID, "2025-06-10")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].FirstName)

	assert.Equal(t, []string{audit.ActionAppointmentCreated, audit.ActionAppointmentConflict}, f.recorder.actions())
}

// racingRepo hides existing rows from the pre-check so Create hits the
// storage constraint.
type racingRepo struct {
	appointment.Repository
}

func (racingRepo) Exists(context.Context, uint, uint, string, string, uint) (bool, error) {
	return false, nil
}

func TestCreate_UniqueConstraintIsConflict(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, f.input(f.barberA.ID, "09:00"))
	require.NoError(t, err)

	racing := NewCreatePublicAppointment(f.store.Barbers(), racingRepo{f.store.Appointments()}, nil, audit.Discard{})
	racing.now = func() time.Time { return now }

	_, err = racing.Execute(ctx, f.input(f.barberA.ID, "09:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		modify func(in *CreatePublicInput)
		want   error
	}{
		{name: "missing name", modify: func(in *CreatePublicInput) { in.FirstName = " " }, want: ErrMissingFields},
		{name: "missing service", modify: func(in *CreatePublicInput) { in.Service = "" }, want: ErrMissingFields},
		{name: "missing barber", modify: func(in *CreatePublicInput) { in.BarberID = 0 }, want: ErrMissingFields},
		{name: "bad phone", modify: func(in *CreatePublicInput) { in.Phone = "abc" }, want: ErrInvalidPhone},
		{name: "bad time", modify: func(in *CreatePublicInput) { in.Time = "25:00" }, want: ErrInvalidTime},
		{name: "bad date", modify: func(in *CreatePublicInput) { in.Date = "10-06-2025" }, want: ErrInvalidDate},
		{name: "yesterday", modify: func(in *CreatePublicInput) { in.Date = "2025-06-08" }, want: ErrOutsideWindow},
		{name: "past one month", modify: func(in *CreatePublicInput) { in.Date = "2025-07-10" }, want: ErrOutsideWindow},
		{name: "foreign barber", modify: func(in *CreatePublicInput) { in.BarberID = f.barberB.ID }, want: barberdomain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := f.input(f.barberA.ID, "09:00")
			tt.modify(&in)

			_, err := f.create.Execute(ctx, in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	in := f.input(f.barberA.ID, "09:00")
	in.Date = "2025-07-09"
	_, err := f.create.Execute(ctx, in)
	assert.NoError(t, err)
}

func TestCreate_Quota(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	counter := quota.NewRedisCounter(client)

	t.Run("warn", func(t *testing.T) {
		f := newFixture(t, quota.New(counter, quota.ModeWarn, 2, 24*time.Hour, zap.NewNop()))
		ctx := context.Background()

		for i, h := range []string{"09:00", "10:00"} {
			in := f.input(f.barberA.ID, h)
			in.DeviceID = "warn-device"
			res, err := f.create.Execute(ctx, in)
			require.NoError(t, err, i)
			assert.Empty(t, res.Warning)
		}

		in := f.input(f.barberA.ID, "14:00")
		in.DeviceID = "warn-device"
		res, err := f.create.Execute(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, QuotaWarning, res.Warning)
	})

	t.Run("enforce", func(t *testing.T) {
		f := newFixture(t, quota.New(counter, quota.ModeEnforce, 2, 24*time.Hour, zap.NewNop()))
		ctx := context.Background()

		for _, h := range []string{"09:00", "10:00"} {
			_, err := f.create.Execute(ctx, f.input(f.barberA.ID, h))
			require.NoError(t, err)
		}

		_, err := f.create.Execute(ctx, f.input(f.barberA.ID, "14:00"))
		assert.ErrorIs(t, err, ErrQuotaExceeded)
	})
}

func TestUpdateAppointment(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	a, err := f.create.Execute(ctx, f.input(f.barberA.ID, "09:00"))
	require.NoError(t, err)
	b, err := f.create.Execute(ctx, f.input(f.barberA.ID, "10:00"))
	require.NoError(t, err)

	update := NewUpdateAppointment(f.store.Barbers(), f.store.Appointments(), audit.Discard{})
	owner := auth.Identity{BarberID: f.barberA.ID, TenantID: f.tenantA.ID, Role: models.RoleBarber}

	_, err = update.Execute(ctx, owner, UpdateInput{ID: b.Appointment.ID, Time: "9:00"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	same, err := update.Execute(ctx, owner, UpdateInput{ID: a.Appointment.ID, Time: "09:00", FirstName: "Ana María"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", same.FirstName)

	moved, err := update.Execute(ctx, owner, UpdateInput{ID: b.Appointment.ID, Time: "2:00 PM"})
	require.NoError(t, err)
	assert.Equal(t, "14:00", moved.Time)

	stranger := auth.Identity{BarberID: f.barberA.ID + 50, TenantID: f.tenantA.ID, Role: models.RoleBarber}
	_, err = update.Execute(ctx, stranger, UpdateInput{ID: a.Appointment.ID, Time: "15:00"})
	assert.ErrorIs(t, err, ErrEditForbidden)

	otherTenantAdmin := auth.Identity{BarberID: f.barberB.ID, TenantID: f.tenantB.ID, Role: models.RoleAdmin}
	_, err = update.Execute(ctx, otherTenantAdmin, UpdateInput{ID: a.Appointment.ID, Time: "15:00"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = update.Execute(ctx, owner, UpdateInput{ID: a.Appointment.ID, BarberID: f.barberB.ID})
	assert.ErrorIs(t, err, ErrEditForbidden)
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	res, err := f.create.Execute(ctx, f.input(f.barberA.ID, "09:00"))
	require.NoError(t, err)
	id := res.Appointment.ID

	del := NewDeleteAppointment(f.store.Appointments(), audit.Discard{})

	stranger := auth.Identity{BarberID: f.barberA.ID + 50, TenantID: f.tenantA.ID, Role: models.RoleBarber}
	assert.ErrorIs(t, del.Execute(ctx, stranger, id), ErrDeleteForbidden)

	admin := auth.Identity{BarberID: f.barberA.ID + 50, TenantID: f.tenantA.ID, Role: models.RoleAdmin}
	require.NoError(t, del.Execute(ctx, admin, id))
	assert.ErrorIs(t, del.Execute(ctx, admin, id), ErrAppointmentNotFound)
}

func TestListAndFilter(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	second := &models.Barber{TenantID: f.tenantA.ID, Name: "Danitza", Username: "danitza-a", Active: true}
	second.SetWeekly(tuesdaySchedule())
	require.NoError(t, f.store.Barbers().Save(ctx, second))

	_, err := f.create.Execute(ctx, f.input(f.barberA.ID, "09:00"))
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, f.input(second.ID, "10:00"))
	require.NoError(t, err)

	list := NewListAppointments(f.store.Appointments())

	own, err := list.Execute(ctx, auth.Identity{BarberID: f.barberA.ID, TenantID: f.tenantA.ID}, &second.ID, "")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "Giovany", own[0].BarberName)
	assert.Equal(t, "9:00 AM", own[0].TimeDisplay)

	all, err := list.Execute(ctx, auth.Identity{BarberID: 999, TenantID: f.tenantA.ID, Role: models.RoleAdmin}, nil, "2025-06-10")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filter := NewFilterAppointments(f.store.Barbers(), f.store.Appointments())

	_, err = filter.Execute(ctx, f.tenantA.ID, "", nil, "")
	assert.ErrorIs(t, err, ErrDateRequired)

	byName, err := filter.Execute(ctx, f.tenantA.ID, "2025-06-10", nil, "danitza")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "10:00", byName[0].Time)

	unknown, err := filter.Execute(ctx, f.tenantA.ID, "2025-06-10", nil, "nadie")
	require.NoError(t, err)
	assert.Empty(t, unknown)

	fromB, err := filter.Execute(ctx, f.tenantB.ID, "2025-06-10", nil, "")
	require.NoError(t, err)
	assert.Empty(t, fromB)
}

func TestFindSameDayBooking(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, f.input(f.barberA.ID, "09:00"))
	require.NoError(t, err)

	uc := NewFindSameDayBooking(f.store.Appointments())

	found, err := uc.Execute(ctx, f.tenantA.ID, "300 123 4567", "2025-06-10")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "09:00", found.Time)

	none, err := uc.Execute(ctx, f.tenantA.ID, "3001234567", "2025-06-11")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = uc.Execute(ctx, f.tenantA.ID, "x", "2025-06-10")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
