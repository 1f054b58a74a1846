package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/nerkartran297/english-center-api/internal/events"
	"github.com/nerkartran297/english-center-api/internal/repository"

	"github.com/nats-io/nats.go"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/token"
)

type Worker struct {
	natsConn   *nats.Conn
	apnsClient *apns2.Client
	tokens     repository.DeviceTokenRepository
}

func New(natsConn *nats.Conn, apnsClient *apns2.Client, tokens repository.DeviceTokenRepository) *Worker {
	return &Worker{
		natsConn:   natsConn,
		apnsClient: apnsClient,
		tokens:     tokens,
	}
}

// NewAPNsClient builds a token-based APNs client from the environment.
// Returns nil when credentials are absent, which puts the worker in mock
// mode.
func NewAPNsClient() (*apns2.Client, error) {
	authKeyPath := os.Getenv("APNS_AUTH_KEY_PATH")
	keyID := os.Getenv("APNS_KEY_ID")
	teamID := os.Getenv("APNS_TEAM_ID")

	if authKeyPath == "" || keyID == "" || teamID == "" {
		log.Println("APNs credentials not found. Worker will run in MOCK mode.")
		return nil, nil
	}

	log.Println("APNs credentials found, initializing APNs client...")
	authKey, err := token.AuthKeyFromFile(authKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read APNs auth key: %w", err)
	}

	authToken := &token.Token{
		AuthKey: authKey,
		KeyID:   keyID,
		TeamID:  teamID,
	}

	if os.Getenv("APNS_MODE") == "production" {
		return apns2.NewTokenClient(authToken).Production(), nil
	}
	return apns2.NewTokenClient(authToken).Development(), nil
}

// Start subscribes the worker to payment verdicts. Each approved or
// rejected payment results in a push to the student's registered devices.
func (w *Worker) Start() error {
	_, err := w.natsConn.Subscribe(events.SubjectPaymentVerified, w.handlePaymentVerified)
	return err
}

// alertFor renders the push text for a payment verdict. A rejection carries
// the staff's reason when one was given, so the student knows what to fix
// before resubmitting.
func alertFor(event events.PaymentVerifiedEvent) string {
	if event.Status == "approved" {
		return "Your payment was approved. Welcome to class!"
	}
	if event.Reason != nil && *event.Reason != "" {
		return fmt.Sprintf("Your payment was rejected: %s. Please submit a new proof.", *event.Reason)
	}
	return "Your payment was rejected. Please submit a new proof."
}

func (w *Worker) handlePaymentVerified(msg *nats.Msg) {
	var event events.PaymentVerifiedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		log.Printf("Error unmarshalling event: %v", err)
		return
	}

	log.Printf(
		"📬 Event received: payment %s for course %s is %s.",
		event.PaymentID, event.CourseID, event.Status,
	)

	tokens, err := w.tokens.GetUserDeviceTokens(context.Background(), event.StudentID)
	if err != nil {
		log.Printf("Failed to retrieve device tokens for student %s: %v", event.StudentID, err)
		return
	}

	if len(tokens) == 0 {
		log.Printf("No device tokens found for student %s. No notifications sent.", event.StudentID)
		return
	}

	log.Printf("Found %d device token(s) for student %s. Sending notifications...", len(tokens), event.StudentID)
	payload := fmt.Sprintf(`{"aps":{"alert":%q,"sound":"default"}}`, alertFor(event))

	for _, deviceToken := range tokens {
		notification := &apns2.Notification{
			DeviceToken: deviceToken,
			Topic:       os.Getenv("APNS_TOPIC"),
			Payload:     []byte(payload),
		}

		if w.apnsClient == nil {
			log.Printf("✅ SUCCESS (mock): Push notification sent to device %s", deviceToken)
			continue
		}

		res, err := w.apnsClient.Push(notification)
		if err != nil {
			log.Printf("❌ FAILED to send notification: %v", err)
		} else if res.Sent() {
			log.Printf("✅ SUCCESS: Notification sent with APNS ID: %s", res.ApnsID)
		} else {
			log.Printf("❌ FAILED: Notification not sent. Reason: %s", res.Reason)
		}
	}
}
