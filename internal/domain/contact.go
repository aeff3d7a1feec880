package domain

import (
	"context"
	"time"
)

// User-facing messages returned by the contact endpoint.
const (
	MsgFieldsRequired = "All fields are required"
	MsgInvalidEmail   = "Invalid email format"
	MsgContactSuccess = "Message sent successfully! Thank you for reaching out. You should receive a confirmation email shortly."
)

// ContactSubmission represents a contact form submission. It lives for one
// request and is never stored.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contact_email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactResult is the body of a successful submission.
type ContactResult struct {
	Message string `json:"message"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit parses, validates and dispatches a raw request body.
	// Validation failures come back as *apperror.AppError with status 400;
	// anything else is an internal error. Email delivery problems never
	// produce an error.
	Submit(ctx context.Context, rawBody []byte) (*ContactResult, error)
}

// ContactOwner describes the site owner: where notifications go and how
// both emails are signed.
type ContactOwner struct {
	Name      string
	Title     string
	Location  string
	Email     string
	FromEmail string
	GitHubURL string
	// Zone is used to format the timestamps shown in emails.
	Zone *time.Location
}
