package slots

import (
	"testing"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveHours_RoundsOpenUpFloorsClose(t *testing.T) {
	open, close, err := EffectiveHours(domain.OperatingWindow{Open: "09:30", Close: "17:00"})

	require.NoError(t, err)
	assert.Equal(t, 10, open)
	assert.Equal(t, 17, close)
}

func TestEffectiveHours_WholeHours(t *testing.T) {
	open, close, err := EffectiveHours(domain.OperatingWindow{Open: "09:00", Close: "17:45"})

	require.NoError(t, err)
	assert.Equal(t, 9, open)
	assert.Equal(t, 17, close) // partial last hour is never bookable
}

func TestEffectiveHours_Meridiem(t *testing.T) {
	open, close, err := EffectiveHours(domain.OperatingWindow{Open: "9:00 AM", Close: "5:00 PM"})

	require.NoError(t, err)
	assert.Equal(t, 9, open)
	assert.Equal(t, 17, close)
}

func TestEffectiveHours_Unparseable(t *testing.T) {
	_, _, err := EffectiveHours(domain.OperatingWindow{Open: "morning", Close: "17:00"})
	require.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(600, 660, 630, 690))  // partial
	assert.True(t, Overlaps(600, 660, 540, 720))  // containment
	assert.False(t, Overlaps(600, 660, 660, 720)) // touching endpoints
	assert.False(t, Overlaps(600, 660, 720, 780)) // apart
}

func TestGenerate_ClosedDay(t *testing.T) {
	got, err := Generate("2026-09-07", nil, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerate_RoundingBoundary(t *testing.T) {
	window := &domain.OperatingWindow{Open: "09:30", Close: "17:00"}

	got, err := Generate("2026-09-07", window, nil)

	require.NoError(t, err)
	require.Len(t, got, 7)
	assert.Equal(t, "10:00", got[0].StartTime)
	assert.Equal(t, "11:00", got[0].EndTime)
	assert.Equal(t, "16:00", got[6].StartTime)
	assert.Equal(t, "17:00", got[6].EndTime)

	for _, s := range got {
		assert.True(t, s.Available)
		assert.Equal(t, BasePrice, s.Price)
		assert.False(t, s.IsCustom)
		assert.Equal(t, "2026-09-07", s.Date)
	}
}

func TestGenerate_CustomSlotSuppressesOverlappedHours(t *testing.T) {
	window := &domain.OperatingWindow{Open: "09:00", Close: "13:00"}
	custom := []*domain.TimeSlot{
		{ID: "c1", StartTime: "10:30", EndTime: "11:30"},
	}

	got, err := Generate("2026-09-08", window, custom)

	require.NoError(t, err)
	// 10:00 and 11:00 hours both intersect the custom interval.
	starts := make([]string, 0, len(got))
	for _, s := range got {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []string{"09:00", "12:00"}, starts)
}

func TestGenerate_BackToBackCustomSlotDoesNotSuppress(t *testing.T) {
	window := &domain.OperatingWindow{Open: "09:00", Close: "12:00"}
	custom := []*domain.TimeSlot{
		{ID: "c1", StartTime: "10:00", EndTime: "11:00"},
	}

	got, err := Generate("2026-09-08", window, custom)

	require.NoError(t, err)
	starts := make([]string, 0, len(got))
	for _, s := range got {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []string{"09:00", "11:00"}, starts)
}

func TestGenerate_Idempotent(t *testing.T) {
	window := &domain.OperatingWindow{Open: "08:15", Close: "20:45"}
	custom := []*domain.TimeSlot{
		{ID: "c1", StartTime: "12:00", EndTime: "14:00"},
	}

	first, err := Generate("2026-09-09", window, custom)
	require.NoError(t, err)
	second, err := Generate("2026-09-09", window, custom)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_BadCustomSlot(t *testing.T) {
	window := &domain.OperatingWindow{Open: "09:00", Close: "12:00"}
	custom := []*domain.TimeSlot{
		{ID: "c1", StartTime: "soon", EndTime: "11:00"},
	}

	_, err := Generate("2026-09-08", window, custom)
	require.Error(t, err)
}
