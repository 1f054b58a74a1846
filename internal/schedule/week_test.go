package schedule_test

import (
	"testing"
	"time"

	"github.com/nerkartran297/english-center-api/internal/schedule"

	"github.com/stretchr/testify/require"
)

func TestWeekDates_SundayAnchored(t *testing.T) {
	// 2025-01-15 is a Wednesday; its week starts Sunday 2025-01-12.
	ref := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	week := schedule.WeekDates(ref)

	require.Equal(t, time.Sunday, week[0].Weekday())
	require.Equal(t, 12, week[0].Day())
	for i := 1; i < 7; i++ {
		require.Equal(t, week[i-1].AddDate(0, 0, 1), week[i])
	}
	require.Equal(t, time.Saturday, week[6].Weekday())
}

func TestWeekDates_RefAlreadySunday(t *testing.T) {
	ref := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	week := schedule.WeekDates(ref)
	require.True(t, schedule.SameDay(ref, week[0]))
}

func TestPrevNextWeek(t *testing.T) {
	refs := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),   // year boundary behind
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),  // month boundary ahead
		time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC), // year boundary ahead
	}

	for _, ref := range refs {
		next := schedule.NextWeek(ref)
		prev := schedule.PrevWeek(ref)
		require.Equal(t, 7*24*time.Hour, next.Sub(ref))
		require.Equal(t, 7*24*time.Hour, ref.Sub(prev))

		// Shifting then anchoring still yields 7 consecutive dates from Sunday.
		week := schedule.WeekDates(next)
		require.Equal(t, time.Sunday, week[0].Weekday())
		for i := 1; i < 7; i++ {
			require.Equal(t, week[i-1].AddDate(0, 0, 1), week[i])
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 9, 0, 0, 1, 0, time.UTC)
	b := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	require.True(t, schedule.SameDay(a, b))
	require.False(t, schedule.SameDay(a, c))
}
