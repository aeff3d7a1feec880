package server

import (
	"context"

	"portfolio-contact-api/config"
	v1 "portfolio-contact-api/internal/delivery/http/v1"
	"portfolio-contact-api/internal/domain"
	"portfolio-contact-api/internal/usecase"
	"portfolio-contact-api/pkg/email"
	"portfolio-contact-api/pkg/secrets"
	"portfolio-contact-api/pkg/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SecretResolver looks up a secret by ARN, falling back to a plain value.
type SecretResolver interface {
	GetSecretString(ctx context.Context, secretARN, fallback string) (string, error)
}

// NewRouter wires config, email delivery and usecases into a gin engine.
// It is shared by the HTTP server and the Lambda entrypoint.
func NewRouter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	var resolver SecretResolver
	if cfg.ResendAPIKeySecretARN != "" {
		client, err := secrets.NewClient(ctx, logger)
		if err != nil {
			// Not fatal: the env key (if any) is still usable.
			logger.Warn("secrets manager unavailable", zap.Error(err))
		} else {
			resolver = client
		}
	}
	return NewRouterWithSecrets(ctx, cfg, logger, resolver)
}

// NewRouterWithSecrets is NewRouter with an explicit secret resolver, which
// may be nil.
func NewRouterWithSecrets(ctx context.Context, cfg *config.Config, logger *zap.Logger, resolver SecretResolver) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Resolve the Resend API key
	apiKey := cfg.ResendAPIKey
	if resolver != nil {
		key, err := resolver.GetSecretString(ctx, cfg.ResendAPIKeySecretARN, cfg.ResendAPIKey)
		if err != nil {
			logger.Warn("Resend API key not found, contact emails will only be logged", zap.Error(err))
		} else {
			apiKey = key
		}
	}

	// 2. Setup Email Sender
	sender, err := email.NewResendSender(email.ResendConfig{
		APIKey:  apiKey,
		BaseURL: cfg.ResendBaseURL,
		Timeout: cfg.EmailTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	if !sender.IsConfigured() {
		logger.Warn("Email sender not configured - submissions will be accepted and logged only")
	}

	// 3. Setup UseCases
	owner := domain.ContactOwner{
		Name:      cfg.OwnerName,
		Title:     cfg.OwnerTitle,
		Location:  cfg.OwnerLocation,
		Email:     cfg.ContactEmailTo,
		FromEmail: cfg.ContactFromEmail,
		GitHubURL: cfg.GitHubURL,
		Zone:      cfg.Location(),
	}
	contactUC := usecase.NewContactUsecase(sender, owner, validation.New(), logger)
	healthUC := usecase.NewHealthUsecase(cfg.Stage, sender.IsConfigured())

	// 4. Setup Router
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Logger:    logger,
		Config:    cfg,
	}), nil
}
