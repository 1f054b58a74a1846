package schedule_test

import (
	"testing"
	"time"

	"github.com/nerkartran297/english-center-api/internal/schedule"

	"github.com/stretchr/testify/require"
)

// week of Sunday 2025-01-12 .. Saturday 2025-01-18
func testWeek() [7]time.Time {
	return schedule.WeekDates(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
}

func TestBucketize_Empty(t *testing.T) {
	grid := schedule.Bucketize(nil, testWeek(), schedule.Morning)
	for day := 0; day < 7; day++ {
		require.Empty(t, grid[day])
	}
}

func TestBucketize_PlacesSessionOnMatchingDayAndPeriod(t *testing.T) {
	sessions := []schedule.Session{{
		ClassID:  "WD1-C1",
		Schedule: []string{"Mon 15:30 18:00"},
	}}

	grid := schedule.Bucketize(sessions, testWeek(), schedule.Afternoon)
	require.Len(t, grid[1], 1)
	require.Equal(t, "WD1-C1", grid[1][0].ClassID)
	for day := 0; day < 7; day++ {
		if day != 1 {
			require.Empty(t, grid[day])
		}
	}

	require.Empty(t, schedule.Bucketize(sessions, testWeek(), schedule.Morning))
	require.Empty(t, schedule.Bucketize(sessions, testWeek(), schedule.Evening))
}

func TestBucketize_MultipleWeeklySlots(t *testing.T) {
	sessions := []schedule.Session{{
		ClassID:  "WD1-C1",
		Schedule: []string{"Mon 15:30 18:00", "Thu 19:30 23:00", "Sat 20:00 21:30"},
	}}

	afternoon := schedule.Bucketize(sessions, testWeek(), schedule.Afternoon)
	require.Len(t, afternoon[1], 1)
	require.Empty(t, afternoon[4])
	require.Empty(t, afternoon[6])

	evening := schedule.Bucketize(sessions, testWeek(), schedule.Evening)
	require.Empty(t, evening[1])
	require.Len(t, evening[4], 1)
	require.Len(t, evening[6], 1)
}

func TestBucketize_NoDuplicatePerCell(t *testing.T) {
	// Redundant slot strings resolving to the same (day, period) cell must
	// not list the session twice.
	sessions := []schedule.Session{{
		ClassID:  "DUP",
		Schedule: []string{"Mon 15:30 17:00", "Mon 16:00 18:00"},
	}}

	grid := schedule.Bucketize(sessions, testWeek(), schedule.Afternoon)
	require.Len(t, grid[1], 1)
}

func TestBucketize_SkipsMalformedSlots(t *testing.T) {
	sessions := []schedule.Session{{
		ClassID:  "BAD",
		Schedule: []string{"garbage", "Mon 15:30 18:00"},
	}}

	grid := schedule.Bucketize(sessions, testWeek(), schedule.Afternoon)
	require.Len(t, grid[1], 1)
}

func TestSlotFor(t *testing.T) {
	s := schedule.Session{
		ClassID:  "WD1-C1",
		Schedule: []string{"Mon 15:30 18:00", "Thu 19:30 23:00"},
	}

	slot, ok := s.SlotFor(4)
	require.True(t, ok)
	require.Equal(t, "19:30", slot.Start)
	require.Equal(t, "23:00", slot.End)

	_, ok = s.SlotFor(2)
	require.False(t, ok)
}
