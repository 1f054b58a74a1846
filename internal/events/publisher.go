package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nerkartran297/english-center-api/internal/model"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	SubjectPaymentSubmitted = "payment.submitted"
	SubjectPaymentVerified  = "payment.verified"
)

type EventPublisher interface {
	PublishPaymentSubmitted(p *model.Payment) error
	PublishPaymentVerified(p *model.Payment) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, err
	}
	return &NatsPublisher{conn: nc}, nil
}

type PaymentSubmittedEvent struct {
	EventType   string    `json:"event_type"`
	PaymentID   uuid.UUID `json:"payment_id"`
	StudentID   uuid.UUID `json:"student_id"`
	CourseID    string    `json:"course_id"`
	Amount      float64   `json:"amount"`
	ProofKey    string    `json:"proof_key"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type PaymentVerifiedEvent struct {
	EventType  string    `json:"event_type"`
	PaymentID  uuid.UUID `json:"payment_id"`
	StudentID  uuid.UUID `json:"student_id"`
	CourseID   string    `json:"course_id"`
	Status     string    `json:"status"`
	VerifiedBy string    `json:"verified_by"`
	Reason     *string   `json:"reason,omitempty"`
	VerifiedAt time.Time `json:"verified_at"`
}

func (p *NatsPublisher) PublishPaymentSubmitted(payment *model.Payment) error {
	event := PaymentSubmittedEvent{
		EventType:   SubjectPaymentSubmitted,
		PaymentID:   payment.ID,
		StudentID:   payment.StudentID,
		CourseID:    payment.CourseID,
		Amount:      payment.Amount,
		ProofKey:    payment.PaycheckKey,
		SubmittedAt: payment.SubmittedDate,
	}
	return p.publish(SubjectPaymentSubmitted, event)
}

func (p *NatsPublisher) PublishPaymentVerified(payment *model.Payment) error {
	verifiedBy := ""
	if payment.VerifiedBy != nil {
		verifiedBy = *payment.VerifiedBy
	}
	event := PaymentVerifiedEvent{
		EventType:  SubjectPaymentVerified,
		PaymentID:  payment.ID,
		StudentID:  payment.StudentID,
		CourseID:   payment.CourseID,
		Status:     payment.Status,
		VerifiedBy: verifiedBy,
		Reason:     payment.RejectionReason,
		VerifiedAt: time.Now(),
	}
	return p.publish(SubjectPaymentVerified, event)
}

func (p *NatsPublisher) publish(subject string, event interface{}) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshalling event JSON: %v", err)
		return err
	}

	if err := p.conn.Publish(subject, eventJSON); err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	log.Printf("Published event to NATS on subject '%s'", subject)
	return nil
}
