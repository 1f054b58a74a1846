package model

import "time"

// Teacher is a display entry on a course or class. The legacy API shipped
// teachers as [name, intro] pairs; here they are proper objects.
type Teacher struct {
	Name  string `db:"name" json:"name"`
	Intro string `db:"intro" json:"intro,omitempty"`
}

// Course is a catalog entry. JSON field names match what the frontend
// renders, including the legacy "sumary" spelling.
type Course struct {
	ID             string     `db:"course_id" json:"courseID"`
	Name           string     `db:"name" json:"name"`
	Description    string     `db:"description" json:"description"`
	Classes        []Class    `db:"-" json:"classes"`
	Teachers       []Teacher  `db:"-" json:"teachers"`
	Price          float64    `db:"price" json:"price"`
	CompareAtPrice float64    `db:"compare_at_price" json:"compareAtPrice"`
	Rating         float64    `db:"rating" json:"rating"`
	TotalVote      int        `db:"total_vote" json:"totalVote"`
	Target         StringList `db:"target" json:"target"`
	Summary        StringList `db:"summary" json:"sumary"`
	StudentList    StringList `db:"student_list" json:"studentList"`
	StudentLimit   int        `db:"student_limit" json:"studentLimit"`
	AppliedNumber  int        `db:"applied_number" json:"appliedNumber"`
	CurrentStudent int        `db:"current_student" json:"currentStudent"`
	CoverIMG       string     `db:"cover_img" json:"coverIMG"`
	StartDate      string     `db:"start_date" json:"startDate"`
	EndDate        string     `db:"end_date" json:"endDate"`
	CreatedAt      time.Time  `db:"created_at" json:"-"`
}

// Class is one cohort within a course. Schedule holds the raw
// "<Day> <HH:MM> <HH:MM>" slot strings, in stored order.
type Class struct {
	ID          string     `db:"class_id" json:"classID"`
	CourseID    string     `db:"course_id" json:"-"`
	Schedule    StringList `db:"schedule" json:"schedule"`
	Name        string     `db:"name" json:"name"`
	Description StringGrid `db:"description" json:"description"`
	Teachers    []Teacher  `db:"-" json:"teachers"`
	LessonList  StringList `db:"lesson_list" json:"lessonList"`
	Progress    int        `db:"progress" json:"progress"`
	Documents   StringList `db:"documents" json:"documents"`
	IsActive    bool       `db:"is_active" json:"isActive"`
	Meeting     string     `db:"meeting" json:"meeting"`
	CoverIMG    string     `db:"cover_img" json:"coverIMG"`
	StartDate   string     `db:"start_date" json:"startDate"`
	EndDate     string     `db:"end_date" json:"endDate"`
	Color       string     `db:"color" json:"colorScheme,omitempty"`
}
