package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"portfolio-contact-api/internal/domain"
	"portfolio-contact-api/pkg/apperror"
	"portfolio-contact-api/pkg/email"
	"portfolio-contact-api/pkg/validation"
)

// fallbackTimestampLayout is ISO-8601 with millisecond precision in UTC.
const fallbackTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type contactUsecase struct {
	sender   domain.EmailSender
	owner    domain.ContactOwner
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewContactUsecase creates a new contact usecase. validate must have the
// contact_email tag registered (see validation.New).
func NewContactUsecase(sender domain.EmailSender, owner domain.ContactOwner, validate *validator.Validate, logger *zap.Logger) domain.ContactUsecase {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if owner.Zone == nil {
		owner.Zone = time.UTC
	}
	return &contactUsecase{
		sender:   sender,
		owner:    owner,
		validate: validate,
		logger:   logger.Named("contact"),
		now:      time.Now,
	}
}

// Submit validates the body and dispatches both emails. Email failures are
// logged with the full submission and never change the result.
func (uc *contactUsecase) Submit(ctx context.Context, rawBody []byte) (result *domain.ContactResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("contact form panic", zap.Any("panic", r))
			result, err = nil, apperror.Internal(fmt.Errorf("panic: %v", r))
		}
	}()

	sub, err := parseSubmission(rawBody)
	if err != nil {
		uc.logger.Error("contact form error", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	if err := uc.validateSubmission(sub); err != nil {
		return nil, err
	}

	// Delivery runs to completion even if the client goes away.
	outcome := uc.dispatch(context.WithoutCancel(ctx), sub)
	if outcome.Failed() {
		uc.logFallback(sub, outcome)
	}

	return &domain.ContactResult{Message: domain.MsgContactSuccess}, nil
}

// validateSubmission checks presence first, then address shape.
func (uc *contactUsecase) validateSubmission(sub *domain.ContactSubmission) error {
	err := uc.validate.Struct(sub)
	if err == nil {
		return nil
	}
	uc.logger.Info("contact form rejected", zap.Strings("errors", validation.FormatValidationErrors(err)))

	switch {
	case validation.HasTag(err, "required"):
		return apperror.BadRequest(domain.MsgFieldsRequired)
	case validation.HasTag(err, validation.TagContactEmail):
		return apperror.BadRequest(domain.MsgInvalidEmail)
	default:
		return apperror.Internal(err)
	}
}

// dispatch sends the notification and, only if that succeeded, the
// acknowledgement. It never returns an error; the outcome says what happened.
func (uc *contactUsecase) dispatch(ctx context.Context, sub *domain.ContactSubmission) domain.DispatchOutcome {
	var outcome domain.DispatchOutcome
	data := uc.templateData(sub)

	notification, err := uc.notificationEmail(sub, data)
	if err == nil {
		outcome.Notification = uc.send(ctx, notification)
	} else {
		outcome.Notification = domain.DeliveryResult{Status: domain.DeliveryFailed, Err: err}
	}
	if outcome.Notification.Status != domain.DeliverySent {
		return outcome
	}
	uc.logger.Info("notification email sent", zap.String("email_id", outcome.Notification.MessageID))

	ack, err := uc.acknowledgementEmail(sub, data)
	if err == nil {
		outcome.Acknowledgement = uc.send(ctx, ack)
	} else {
		outcome.Acknowledgement = domain.DeliveryResult{Status: domain.DeliveryFailed, Err: err}
	}
	if outcome.Acknowledgement.Status == domain.DeliverySent {
		uc.logger.Info("acknowledgement email sent", zap.String("email_id", outcome.Acknowledgement.MessageID))
	} else {
		uc.logger.Warn("acknowledgement email failed, notification was delivered", zap.Error(outcome.Acknowledgement.Err))
	}

	return outcome
}

// send never panics: a panicking sender counts as a failed email.
func (uc *contactUsecase) send(ctx context.Context, msg *email.Message) (result domain.DeliveryResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.DeliveryResult{Status: domain.DeliveryFailed, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	id, err := uc.sender.Send(ctx, msg)
	if err != nil {
		return domain.DeliveryResult{Status: domain.DeliveryFailed, Err: err}
	}
	return domain.DeliveryResult{Status: domain.DeliverySent, MessageID: id}
}

func (uc *contactUsecase) templateData(sub *domain.ContactSubmission) email.TemplateData {
	return email.TemplateData{
		Name:          sub.Name,
		Email:         sub.Email,
		Subject:       sub.Subject,
		Message:       sub.Message,
		SentAt:        email.FormatTimestamp(uc.now(), uc.owner.Zone),
		OwnerName:     uc.owner.Name,
		OwnerTitle:    uc.owner.Title,
		OwnerLocation: uc.owner.Location,
		OwnerEmail:    uc.owner.Email,
		GitHubURL:     uc.owner.GitHubURL,
	}
}

func (uc *contactUsecase) notificationEmail(sub *domain.ContactSubmission, data email.TemplateData) (*email.Message, error) {
	html, err := email.Render(email.KindNotification, data)
	if err != nil {
		return nil, err
	}
	return &email.Message{
		Kind:    email.KindNotification,
		From:    formatSender(strings.TrimSpace(uc.owner.Name+" Portfolio"), uc.owner.FromEmail),
		To:      []string{uc.owner.Email},
		ReplyTo: sub.Email,
		Subject: "Portfolio Contact: " + sub.Subject,
		HTML:    html,
	}, nil
}

func (uc *contactUsecase) acknowledgementEmail(sub *domain.ContactSubmission, data email.TemplateData) (*email.Message, error) {
	html, err := email.Render(email.KindAcknowledgement, data)
	if err != nil {
		return nil, err
	}
	return &email.Message{
		Kind:    email.KindAcknowledgement,
		From:    formatSender(uc.owner.Name, uc.owner.FromEmail),
		To:      []string{sub.Email},
		ReplyTo: uc.owner.Email,
		Subject: "Thank you for contacting me, " + sub.Name + "!",
		HTML:    html,
	}, nil
}

// logFallback is the only durable record of a submission whose emails failed.
func (uc *contactUsecase) logFallback(sub *domain.ContactSubmission, outcome domain.DispatchOutcome) {
	uc.logger.Error("email sending failed", zap.Error(outcome.Err()))
	uc.logger.Warn("contact form submission fallback",
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
		zap.String("subject", sub.Subject),
		zap.String("message", sub.Message),
		zap.String("timestamp", uc.now().UTC().Format(fallbackTimestampLayout)),
		zap.Stringer("notification", outcome.Notification.Status),
		zap.Stringer("acknowledgement", outcome.Acknowledgement.Status),
	)
}

func formatSender(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}
