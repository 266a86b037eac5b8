package schedule

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/timeofday"
	"github.com/BruksfildServices01/barberias/internal/timezone"
)

type Origin string

const (
	OriginSpecial Origin = "especial"
	OriginDefault Origin = "defecto"
)

// ErrNotConfigured means the barber has no default weekly schedule at all.
// It is a configuration error, not a day off.
var ErrNotConfigured = httperr.NotFoundErr(
	"schedule_not_configured",
	"El barbero no tiene horario por defecto configurado.",
)

// Day is the resolved schedule of one barber on one date.
type Day struct {
	Origin     Origin
	Date       string
	Weekday    string
	Working    bool
	Morning    []string
	Afternoon  []string
	OverrideID uint
}

func (d Day) NonWorkingDay() bool {
	return !d.Working
}

// Candidates concatenates morning then afternoon slots.
func (d Day) Candidates() []string {
	if !d.Working {
		return []string{}
	}
	out := make([]string, 0, len(d.Morning)+len(d.Afternoon))
	out = append(out, d.Morning...)
	return append(out, d.Afternoon...)
}

// Resolve picks the schedule for date: a special override wins over the
// default weekly entry. weekly == nil with no override is ErrNotConfigured.
func Resolve(
	override *models.SpecialSchedule,
	weekly models.WeeklySchedule,
	date time.Time,
) (Day, error) {

	day := Day{
		Date:    date.Format(timezone.DateLayout),
		Weekday: timezone.WeekdayName(date),
	}

	if override != nil {
		day.Origin = OriginSpecial
		day.OverrideID = override.ID
		if !override.WorkingDay || (len(override.Morning) == 0 && len(override.Afternoon) == 0) {
			return nonWorking(day), nil
		}
		return withSlots(day, override.Morning, override.Afternoon)
	}

	if weekly == nil {
		return Day{}, ErrNotConfigured
	}

	day.Origin = OriginDefault
	entry, ok := weekly[day.Weekday]
	if !ok || (len(entry.Morning) == 0 && len(entry.Afternoon) == 0) {
		return nonWorking(day), nil
	}
	return withSlots(day, entry.Morning, entry.Afternoon)
}

func nonWorking(day Day) Day {
	day.Working = false
	day.Morning = []string{}
	day.Afternoon = []string{}
	return day
}

func withSlots(day Day, morning, afternoon []string) (Day, error) {
	m, err := timeofday.NormalizeAll(morning)
	if err != nil {
		return Day{}, fmt.Errorf("morning slots of %s: %w", day.Date, err)
	}
	a, err := timeofday.NormalizeAll(afternoon)
	if err != nil {
		return Day{}, fmt.Errorf("afternoon slots of %s: %w", day.Date, err)
	}

	day.Working = true
	day.Morning = m
	day.Afternoon = a
	return day, nil
}

// ValidateWeekly normalizes every slot of a weekly schedule and rejects
// unknown weekday keys.
func ValidateWeekly(w models.WeeklySchedule) (models.WeeklySchedule, error) {
	known := map[string]bool{}
	for _, name := range timezone.WeekdayNames() {
		known[name] = true
	}

	out := make(models.WeeklySchedule, len(w))
	for name, slots := range w {
		if !known[name] {
			return nil, httperr.BadRequestErr("invalid_weekday", fmt.Sprintf("Día inválido: %s.", name))
		}
		m, err := timeofday.NormalizeAll(slots.Morning)
		if err != nil {
			return nil, httperr.BadRequestErr("invalid_time", "Hora inválida en el horario de mañana.")
		}
		a, err := timeofday.NormalizeAll(slots.Afternoon)
		if err != nil {
			return nil, httperr.BadRequestErr("invalid_time", "Hora inválida en el horario de tarde.")
		}
		out[name] = models.DaySlots{Morning: m, Afternoon: a}
	}
	return out, nil
}
