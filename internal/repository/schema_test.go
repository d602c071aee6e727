package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// The repositories name their columns explicitly, so a column missing from
// the goose schema fails every statement at runtime. These checks keep the
// migrations and the SQL in this package from drifting apart.

func migrationSQL(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("../../migrations/" + name)
	require.NoError(t, err)
	return string(b)
}

func TestBookingsMigration_CoversQueryColumns(t *testing.T) {
	sql := migrationSQL(t, "00004_create_bookings.sql")

	columns := []string{
		"id", "venue_id", "space_id", "date", "start_time", "end_time",
		"user_id", "event_name", "notes", "status", "reminded_at",
		"created_at", "updated_at",
	}
	for _, col := range columns {
		require.Contains(t, sql, col, "bookings column %q missing from migration", col)
	}
}

func TestTimeSlotsMigration_CoversQueryColumns(t *testing.T) {
	sql := migrationSQL(t, "00003_create_time_slots.sql")

	columns := []string{
		"id", "venue_id", "space_id", "date", "start_time", "end_time",
		"price", "is_custom", "is_active", "created_by",
		"created_at", "updated_at",
	}
	for _, col := range columns {
		require.Contains(t, sql, col, "time_slots column %q missing from migration", col)
	}
}
