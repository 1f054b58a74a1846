package schedule_test

import (
	"testing"

	"github.com/nerkartran297/english-center-api/internal/schedule"

	"github.com/stretchr/testify/require"
)

func TestParseSlot_TimeOfDay(t *testing.T) {
	cases := []struct {
		raw  string
		want schedule.TimeOfDay
	}{
		{"Mon 00:00 02:00", schedule.Morning},
		{"Mon 09:15 11:00", schedule.Morning},
		{"Mon 11:59 13:00", schedule.Morning},
		{"Tue 12:00 14:00", schedule.Afternoon},
		{"Wed 15:30 18:00", schedule.Afternoon},
		{"Thu 17:59 19:00", schedule.Afternoon},
		{"Fri 18:00 20:00", schedule.Evening},
		{"Sat 20:00 21:30", schedule.Evening},
	}

	for _, tc := range cases {
		slot, err := schedule.ParseSlot(tc.raw)
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.want, slot.TimeOfDay, tc.raw)
	}
}

func TestParseSlot_Fields(t *testing.T) {
	slot, err := schedule.ParseSlot("Mon 15:30 18:00")
	require.NoError(t, err)
	require.Equal(t, "Mon", slot.Day)
	require.Equal(t, 1, slot.DayIndex)
	require.Equal(t, "15:30", slot.Start)
	require.Equal(t, "18:00", slot.End)
}

func TestParseSlot_Malformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"Mon",
		"Mon 15:30",
		"Mon 15:30 18:00 extra",
		"Lun 15:30 18:00", // unknown day token
		"Mon xx:30 18:00", // non-integer hour
	} {
		_, err := schedule.ParseSlot(raw)
		require.ErrorIs(t, err, schedule.ErrMalformedSlot, raw)
	}
}

func TestParseSlot_LenientBeyondHour(t *testing.T) {
	// Only the hour prefix is validated; the rest of the time text is
	// carried through untouched, as stored data may be sloppy.
	slot, err := schedule.ParseSlot("Mon 9:xx 10:00")
	require.NoError(t, err)
	require.Equal(t, schedule.Morning, slot.TimeOfDay)
	require.Equal(t, "9:xx", slot.Start)
}

func TestDayNumber(t *testing.T) {
	want := map[string]int{
		"Sun": 0, "Mon": 1, "Tue": 2, "Wed": 3, "Thu": 4, "Fri": 5, "Sat": 6,
	}
	seen := make(map[int]bool)
	for token, n := range want {
		got := schedule.DayNumber(token)
		require.Equal(t, n, got, token)
		require.False(t, seen[got], "day numbers must be distinct")
		seen[got] = true
	}

	require.Equal(t, 0, schedule.DayNumber("Monday"))
	require.Equal(t, 0, schedule.DayNumber(""))
	require.Equal(t, 0, schedule.DayNumber("mon"))
}
