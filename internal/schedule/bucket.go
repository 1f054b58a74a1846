package schedule

import (
	"log/slog"
	"time"
)

// Session is one class a student attends, with its recurring weekly slots
// still in raw string form. Field names mirror the JSON the frontend renders.
type Session struct {
	ClassID    string   `json:"classID"`
	CourseID   string   `json:"courseID"`
	CourseName string   `json:"courseName"`
	ClassName  string   `json:"className"`
	Schedule   []string `json:"schedule"`
	Meeting    string   `json:"meeting"`
	Teacher    string   `json:"teacher"`
	Color      string   `json:"colorScheme,omitempty"`

	// parsed caches the slot parse so bucketing and per-day display lookup
	// share a single pass over Schedule.
	parsed []Slot
}

// Slots parses the session's raw schedule strings once and reuses the result.
// Malformed strings are logged and dropped.
func (s *Session) Slots() []Slot {
	if s.parsed != nil {
		return s.parsed
	}
	s.parsed = make([]Slot, 0, len(s.Schedule))
	for _, raw := range s.Schedule {
		slot, err := ParseSlot(raw)
		if err != nil {
			slog.Warn("skipping malformed schedule slot",
				slog.String("classID", s.ClassID), slog.String("raw", raw))
			continue
		}
		s.parsed = append(s.parsed, slot)
	}
	return s.parsed
}

// SlotFor returns the session's slot on the given weekday, for rendering the
// start/end times inside a day cell.
func (s *Session) SlotFor(weekday int) (Slot, bool) {
	for _, slot := range s.Slots() {
		if slot.DayIndex == weekday {
			return slot, true
		}
	}
	return Slot{}, false
}

// Bucketize places sessions into the columns of a weekly grid for one time
// of day: the result maps a day index (0..6, Sunday-first) to the sessions
// that have a slot on that calendar date's weekday in the requested period.
// A session with several weekly slots can appear under several days, but at
// most once per day even if redundant slot strings resolve to the same cell.
func Bucketize(sessions []Session, week [7]time.Time, tod TimeOfDay) map[int][]Session {
	grid := make(map[int][]Session)
	for day, date := range week {
		weekday := int(date.Weekday())
		for i := range sessions {
			s := &sessions[i]
			for _, slot := range s.Slots() {
				if slot.DayIndex == weekday && slot.TimeOfDay == tod {
					grid[day] = append(grid[day], *s)
					break
				}
			}
		}
	}
	return grid
}
