package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

// Kind selects which of the two contact emails is rendered.
type Kind string

const (
	// KindNotification goes to the site owner and replies to the submitter.
	KindNotification Kind = "notification"
	// KindAcknowledgement goes back to the submitter and replies to the owner.
	KindAcknowledgement Kind = "acknowledgement"
)

// TimestampLayout matches the en-US long date the site has always shown,
// e.g. "Saturday, October 17, 2026 at 02:30 PM".
const TimestampLayout = "Monday, January 2, 2006 at 03:04 PM"

// Message is one email handed to a provider.
type Message struct {
	Kind    Kind
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// TemplateData holds everything either contact template can reference.
type TemplateData struct {
	Name    string
	Email   string
	Subject string
	Message string
	SentAt  string

	OwnerName     string
	OwnerTitle    string
	OwnerLocation string
	OwnerEmail    string
	GitHubURL     string
}

//go:embed templates/*.html
var templateFS embed.FS

var templates = map[Kind]*template.Template{
	KindNotification:    template.Must(template.ParseFS(templateFS, "templates/notification.html")),
	KindAcknowledgement: template.Must(template.ParseFS(templateFS, "templates/acknowledgement.html")),
}

// Render executes the template for kind. User supplied fields are escaped.
func Render(kind Kind, data TemplateData) (string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown email kind %q", kind)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", kind, err)
	}
	return body.String(), nil
}

// FormatTimestamp renders t in loc using TimestampLayout.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(TimestampLayout)
}
