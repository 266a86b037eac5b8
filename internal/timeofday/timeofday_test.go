package timeofday

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"14:00", "14:00"},
		{"9:00", "09:00"},
		{"09:30:00", "09:30"},
		{"9:00 AM", "09:00"},
		{"12:00 PM", "12:00"},
		{"12:15 am", "00:15"},
		{"2:30 pm", "14:30"},
		{" 11:59 PM ", "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, in := range []string{"", "25:00", "9", "13:00 PM", "0:00 AM", "10:7", "ab:cd", "10:00:99", "100:00", "+9:00", "-1:00", "09:+5", "10:00:+1"} {
		_, err := Normalize(in)
		assert.Error(t, err, in)
	}
}

func TestTo12h(t *testing.T) {
	tests := map[string]string{
		"14:00": "2:00 PM",
		"09:00": "9:00 AM",
		"12:00": "12:00 PM",
		"00:30": "12:30 AM",
		"23:45": "11:45 PM",
	}

	for in, want := range tests {
		got, err := To12h(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestRoundTrip(t *testing.T) {
	display, err := To12h("14:00")
	require.NoError(t, err)
	back, err := From12h(display)
	require.NoError(t, err)
	assert.Equal(t, "14:00", back)

	display, err = To12h("09:00")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", display)
	back, err = From12h(display)
	require.NoError(t, err)
	assert.Equal(t, "09:00", back)

	for h := 0; h < 24; h++ {
		for _, m := range []string{"00", "30"} {
			in := fmt.Sprintf("%02d:%s", h, m)
			display, err := To12h(in)
			require.NoError(t, err)
			back, err := From12h(display)
			require.NoError(t, err)
			assert.Equal(t, in, back)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	got, err := NormalizeAll([]string{"9:00", "10:30 AM"})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:30"}, got)

	_, err = NormalizeAll([]string{"09:00", "nope"})
	assert.Error(t, err)
}
