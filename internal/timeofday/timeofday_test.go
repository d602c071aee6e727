package timeofday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TwentyFourHour(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"00:00", 0, 0},
		{"09:30", 9, 30},
		{"9:30", 9, 30},
		{"14:05", 14, 5},
		{"23:59", 23, 59},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.hour, got.Hour, c.in)
		assert.Equal(t, c.minute, got.Minute, c.in)
	}
}

func TestParse_Meridiem(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"2:00 PM", 14, 0},
		{"12:00 AM", 0, 0},
		{"12:30 PM", 12, 30},
		{"12:00 PM", 12, 0},
		{"1:00 PM", 13, 0},
		{"11:45 PM", 23, 45},
		{"11:45 AM", 11, 45},
		{"7:15 am", 7, 15},
		{"  8:00 pm ", 20, 0},
		{"9:00AM", 9, 0},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.hour, got.Hour, c.in)
		assert.Equal(t, c.minute, got.Minute, c.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"noon",
		"25:00",
		"12:60",
		"13:00 PM",
		"0:30 AM",
		"12",
		"12-30",
		"12:3",
	} {
		_, err := Parse(in)
		require.Error(t, err, in)

		var perr *ParseError
		assert.ErrorAs(t, err, &perr, in)
	}
}

func TestMinutes(t *testing.T) {
	m, err := Minutes("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = Minutes("later")
	require.Error(t, err)
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "00:00", TimeOfDay{}.String())
}
