package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
)

// Payment is a purchase submission awaiting (or past) staff review.
// PaycheckKey is the S3 object key of the uploaded proof image; the staff
// listing replaces it with a presigned URL before it leaves the API.
type Payment struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	StudentID        uuid.UUID  `db:"student_id" json:"studentId"`
	StudentName      string     `db:"student_name" json:"studentName"`
	CourseID         string     `db:"course_id" json:"courseId"`
	CourseName       string     `db:"course_name" json:"courseName"`
	PaycheckKey      string     `db:"paycheck_key" json:"paycheckIMG"`
	IsPaid           bool       `db:"is_paid" json:"isPaid"`
	Amount           float64    `db:"amount" json:"amount"`
	SubmittedDate    time.Time  `db:"submitted_date" json:"submittedDate"`
	Status           string     `db:"status" json:"status"`
	VerificationDate *time.Time `db:"verification_date" json:"verificationDate,omitempty"`
	VerifiedBy       *string    `db:"verified_by" json:"verifiedBy,omitempty"`
	RejectionReason  *string    `db:"rejection_reason" json:"rejectionReason,omitempty"`
}

// Salary is one payroll entry for a staff member.
type Salary struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	Type        string    `db:"type" json:"type"`
	ReceiverID  uuid.UUID `db:"receiver_id" json:"receiverID"`
	Value       float64   `db:"value" json:"value"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}
