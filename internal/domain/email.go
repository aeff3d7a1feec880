package domain

import (
	"context"
	"errors"

	"portfolio-contact-api/pkg/email"
)

// EmailSender delivers a single email and returns the provider's message id.
// A non-2xx provider response is an error.
type EmailSender interface {
	Send(ctx context.Context, msg *email.Message) (string, error)
}

type DeliveryStatus int

const (
	DeliveryNotAttempted DeliveryStatus = iota
	DeliverySent
	DeliveryFailed
)

func (s DeliveryStatus) String() string {
	switch s {
	case DeliverySent:
		return "sent"
	case DeliveryFailed:
		return "failed"
	default:
		return "not_attempted"
	}
}

type DeliveryResult struct {
	Status    DeliveryStatus
	MessageID string
	Err       error
}

// DispatchOutcome records what happened to both emails of one submission.
// It is inspected rather than returned as an error: delivery problems
// never fail the request.
type DispatchOutcome struct {
	Notification    DeliveryResult
	Acknowledgement DeliveryResult
}

// Failed reports whether either email errored.
func (o DispatchOutcome) Failed() bool {
	return o.Notification.Status == DeliveryFailed || o.Acknowledgement.Status == DeliveryFailed
}

func (o DispatchOutcome) Err() error {
	return errors.Join(o.Notification.Err, o.Acknowledgement.Err)
}
