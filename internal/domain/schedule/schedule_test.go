package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/models"
)

// 2025-06-10 is a Tuesday.
var tuesday = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func weekly() models.WeeklySchedule {
	return models.WeeklySchedule{
		"martes": {
			Morning:   []string{"9:00", "10:00"},
			Afternoon: []string{"14:00:00"},
		},
		"domingo": {},
	}
}

func TestResolve_DefaultWeekday(t *testing.T) {
	day, err := Resolve(nil, weekly(), tuesday)
	require.NoError(t, err)

	assert.Equal(t, OriginDefault, day.Origin)
	assert.Equal(t, "2025-06-10", day.Date)
	assert.Equal(t, "martes", day.Weekday)
	assert.True(t, day.Working)
	assert.Equal(t, []string{"09:00", "10:00"}, day.Morning)
	assert.Equal(t, []string{"14:00"}, day.Afternoon)
	assert.Equal(t, []string{"09:00", "10:00", "14:00"}, day.Candidates())
}

func TestResolve_MissingWeekdayIsNonWorking(t *testing.T) {
	wednesday := tuesday.AddDate(0, 0, 1)

	day, err := Resolve(nil, weekly(), wednesday)
	require.NoError(t, err)

	assert.Equal(t, OriginDefault, day.Origin)
	assert.True(t, day.NonWorkingDay())
	assert.Empty(t, day.Candidates())
}

func TestResolve_EmptyWeekdayIsNonWorking(t *testing.T) {
	sunday := tuesday.AddDate(0, 0, -2)

	day, err := Resolve(nil, weekly(), sunday)
	require.NoError(t, err)
	assert.Equal(t, "domingo", day.Weekday)
	assert.True(t, day.NonWorkingDay())
}

func TestResolve_NotConfigured(t *testing.T) {
	_, err := Resolve(nil, nil, tuesday)
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestResolve_OverrideWins(t *testing.T) {
	override := &models.SpecialSchedule{
		ID:         7,
		Date:       "2025-06-10",
		WorkingDay: true,
		Morning:    datatypes.JSONSlice[string]{"8:00 AM"},
		Afternoon:  datatypes.JSONSlice[string]{},
	}

	day, err := Resolve(override, weekly(), tuesday)
	require.NoError(t, err)

	assert.Equal(t, OriginSpecial, day.Origin)
	assert.Equal(t, uint(7), day.OverrideID)
	assert.Equal(t, []string{"08:00"}, day.Candidates())
}

func TestResolve_OverrideWithoutWeekly(t *testing.T) {
	override := &models.SpecialSchedule{
		WorkingDay: true,
		Morning:    datatypes.JSONSlice[string]{"11:00"},
	}

	day, err := Resolve(override, nil, tuesday)
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00"}, day.Candidates())
}

func TestResolve_OverrideDayOff(t *testing.T) {
	tests := []struct {
		name     string
		override *models.SpecialSchedule
	}{
		{
			name: "flagged non working",
			override: &models.SpecialSchedule{
				WorkingDay: false,
				Morning:    datatypes.JSONSlice[string]{"09:00"},
			},
		},
		{
			name:     "working with no slots",
			override: &models.SpecialSchedule{WorkingDay: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := Resolve(tt.override, weekly(), tuesday)
			require.NoError(t, err)
			assert.Equal(t, OriginSpecial, day.Origin)
			assert.True(t, day.NonWorkingDay())
			assert.Empty(t, day.Candidates())
		})
	}
}

func TestResolve_InvalidSlot(t *testing.T) {
	w := models.WeeklySchedule{"martes": {Morning: []string{"nueve"}}}

	_, err := Resolve(nil, w, tuesday)
	assert.Error(t, err)
}

func TestValidateWeekly(t *testing.T) {
	out, err := ValidateWeekly(models.WeeklySchedule{
		"lunes": {Morning: []string{"9:00 AM"}, Afternoon: []string{"3:00 PM"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, out["lunes"].Morning)
	assert.Equal(t, []string{"15:00"}, out["lunes"].Afternoon)

	_, err = ValidateWeekly(models.WeeklySchedule{"monday": {}})
	assert.True(t, httperr.IsKind(err, httperr.KindBadRequest))

	_, err = ValidateWeekly(models.WeeklySchedule{"lunes": {Afternoon: []string{"25:00"}}})
	assert.True(t, httperr.IsKind(err, httperr.KindBadRequest))
}
