package worker

import (
	"testing"

	"github.com/nerkartran297/english-center-api/internal/events"

	"github.com/stretchr/testify/require"
)

func TestAlertFor_Approved(t *testing.T) {
	alert := alertFor(events.PaymentVerifiedEvent{Status: "approved"})
	require.Equal(t, "Your payment was approved. Welcome to class!", alert)
}

func TestAlertFor_RejectedWithReason(t *testing.T) {
	reason := "Blurry image"
	alert := alertFor(events.PaymentVerifiedEvent{Status: "rejected", Reason: &reason})
	require.Equal(t, "Your payment was rejected: Blurry image. Please submit a new proof.", alert)
}

func TestAlertFor_RejectedWithoutReason(t *testing.T) {
	empty := ""
	for _, reason := range []*string{nil, &empty} {
		alert := alertFor(events.PaymentVerifiedEvent{Status: "rejected", Reason: reason})
		require.Equal(t, "Your payment was rejected. Please submit a new proof.", alert)
	}
}
