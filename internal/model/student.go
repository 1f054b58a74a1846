package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Roles recognized by the platform. Students sign up through the identity
// provider; staff roles are assigned by an admin.
const (
	RoleStudent    = "student"
	RoleTeacher    = "teacher"
	RoleAccountant = "accountant"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
)

// User is a platform account keyed by the external identity provider's ID.
type User struct {
	ID          uuid.UUID `db:"id" json:"mongoID"`
	ClerkUserID string    `db:"clerk_user_id" json:"clerkUserId"`
	Name        string    `db:"name" json:"name"`
	Role        string    `db:"role" json:"userRole"`
	IsActivated bool      `db:"is_activated" json:"isActivated"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Assignment is one graded item inside an enrollment.
type Assignment struct {
	Score       float64 `json:"score"`
	Description string  `json:"description"`
	Comment     string  `json:"comment"`
}

// Enrollment ties a student to a course, with payment state and scores.
type Enrollment struct {
	StudentID   uuid.UUID      `db:"student_id" json:"-"`
	CourseID    string         `db:"course_id" json:"courseID"`
	EnrollDate  time.Time      `db:"enroll_date" json:"enrollDate"`
	IsPaid      bool           `db:"is_paid" json:"isPaid"`
	Scores      AssignmentList `db:"scores" json:"scores"`
	PaycheckKey string         `db:"paycheck_key" json:"paycheckIMG,omitempty"`
}

// AssignmentList is the JSONB scores column.
type AssignmentList []Assignment

func (l AssignmentList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Assignment{})
	}
	return json.Marshal(l)
}

func (l *AssignmentList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// StudentRecord is the staff view of a student: account plus enrollments.
type StudentRecord struct {
	User
	Courses []Enrollment `json:"courses"`
}
