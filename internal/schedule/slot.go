// Package schedule holds the pure weekly-timetable logic: parsing the raw
// "<Day> <HH:MM> <HH:MM>" slot strings stored on classes and bucketing class
// sessions into a 7-day, three-period grid. Nothing in here touches the
// database or the request context.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is the period a slot belongs to, derived from its start hour.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"   // start before 12:00
	Afternoon TimeOfDay = "afternoon" // start before 18:00
	Evening   TimeOfDay = "evening"   // 18:00 and later
)

var ErrMalformedSlot = errors.New("malformed schedule slot")

// Slot is one recurring weekly occurrence of a class.
type Slot struct {
	Day       string    `json:"day"`
	DayIndex  int       `json:"dayIndex"`
	Start     string    `json:"startTime"`
	End       string    `json:"endTime"`
	TimeOfDay TimeOfDay `json:"timeSlot"`
}

var dayNumbers = map[string]int{
	"Sun": 0,
	"Mon": 1,
	"Tue": 2,
	"Wed": 3,
	"Thu": 4,
	"Fri": 5,
	"Sat": 6,
}

// DayNumber maps a three-letter English weekday token to 0 (Sunday) through
// 6 (Saturday). Unknown tokens map to 0; existing stored data relies on that
// fallback, so it stays. ParseSlot is where unknown tokens get rejected.
func DayNumber(token string) int {
	return dayNumbers[token]
}

// ParseSlot parses a raw slot string of the form "Mon 15:30 18:00". The day
// token must be a known weekday abbreviation and the start time must begin
// with an integer hour; anything else returns ErrMalformedSlot so callers can
// log and skip instead of misfiling the slot. The remainder of the time text
// is carried through for display untouched.
func ParseSlot(raw string) (Slot, error) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return Slot{}, fmt.Errorf("%w: %q", ErrMalformedSlot, raw)
	}

	day, start, end := fields[0], fields[1], fields[2]
	if _, ok := dayNumbers[day]; !ok {
		return Slot{}, fmt.Errorf("%w: unknown day in %q", ErrMalformedSlot, raw)
	}

	hourText, _, _ := strings.Cut(start, ":")
	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return Slot{}, fmt.Errorf("%w: bad start time in %q", ErrMalformedSlot, raw)
	}

	tod := Evening
	if hour < 12 {
		tod = Morning
	} else if hour < 18 {
		tod = Afternoon
	}

	return Slot{
		Day:       day,
		DayIndex:  dayNumbers[day],
		Start:     start,
		End:       end,
		TimeOfDay: tod,
	}, nil
}
