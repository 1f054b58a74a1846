package service

import (
	"context"
	"time"

	"github.com/nerkartran297/english-center-api/internal/model"
	"github.com/nerkartran297/english-center-api/internal/repository"
	"github.com/nerkartran297/english-center-api/internal/schedule"

	"github.com/google/uuid"
)

// DayHeader is one column header of the weekly grid.
type DayHeader struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Weekday string `json:"weekday"`
	IsToday bool   `json:"isToday"`
}

// SessionView is a session rendered inside one day cell, with the start and
// end times of the slot that put it there.
type SessionView struct {
	schedule.Session
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SectionView is one time-of-day band of the grid: 7 cells, Sunday-first.
type SectionView struct {
	TimeSlot schedule.TimeOfDay `json:"timeSlot"`
	Cells    [7][]SessionView   `json:"cells"`
}

// WeekView is the full 7-day × 3-period schedule the frontend renders.
type WeekView struct {
	Days     [7]DayHeader  `json:"days"`
	Sections []SectionView `json:"sections"`
}

type ScheduleService interface {
	// WeeklySchedule builds the grid for the week containing ref from the
	// student's paid enrollments.
	WeeklySchedule(ctx context.Context, studentID uuid.UUID, ref time.Time) (*WeekView, error)
}

type scheduleService struct {
	classRepo repository.ClassRepository
	now       func() time.Time
}

func NewScheduleService(classRepo repository.ClassRepository) ScheduleService {
	return &scheduleService{classRepo: classRepo, now: time.Now}
}

func (s *scheduleService) WeeklySchedule(ctx context.Context, studentID uuid.UUID, ref time.Time) (*WeekView, error) {
	courses, err := s.classRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	sessions := sessionsFromCourses(courses)
	week := schedule.WeekDates(ref)
	today := s.now()

	view := &WeekView{}
	for i, date := range week {
		view.Days[i] = DayHeader{
			Date:    date.Format("2006-01-02"),
			Weekday: date.Weekday().String()[:3],
			IsToday: schedule.SameDay(date, today),
		}
	}

	for _, tod := range []schedule.TimeOfDay{schedule.Morning, schedule.Afternoon, schedule.Evening} {
		section := SectionView{TimeSlot: tod}
		grid := schedule.Bucketize(sessions, week, tod)
		for day := 0; day < 7; day++ {
			weekday := int(week[day].Weekday())
			for _, sess := range grid[day] {
				slot, ok := sess.SlotFor(weekday)
				if !ok {
					continue
				}
				section.Cells[day] = append(section.Cells[day], SessionView{
					Session:   sess,
					StartTime: slot.Start,
					EndTime:   slot.End,
				})
			}
		}
		view.Sections = append(view.Sections, section)
	}
	return view, nil
}

// sessionsFromCourses flattens enrolled courses into the bucketizer's input,
// keeping only active classes.
func sessionsFromCourses(courses []model.Course) []schedule.Session {
	var sessions []schedule.Session
	for _, course := range courses {
		for _, class := range course.Classes {
			if !class.IsActive {
				continue
			}
			teacher := ""
			if len(class.Teachers) > 0 {
				teacher = class.Teachers[0].Name
			} else if len(course.Teachers) > 0 {
				teacher = course.Teachers[0].Name
			}
			sessions = append(sessions, schedule.Session{
				ClassID:    class.ID,
				CourseID:   course.ID,
				CourseName: course.Name,
				ClassName:  class.Name,
				Schedule:   class.Schedule,
				Meeting:    class.Meeting,
				Teacher:    teacher,
				Color:      class.Color,
			})
		}
	}
	return sessions
}
