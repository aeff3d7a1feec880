package usecase_test

import (
	"context"
	"testing"

	"portfolio-contact-api/internal/usecase"
	"portfolio-contact-api/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Email Sender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg *email.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func isKind(kind email.Kind) interface{} {
	return mock.MatchedBy(func(msg *email.Message) bool {
		return msg != nil && msg.Kind == kind
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("Should report configured email", func(t *testing.T) {
		got := usecase.NewHealthUsecase("prod", true).Check(context.Background())
		assert.Equal(t, map[string]string{"status": "ok", "stage": "prod", "email": "configured"}, got)
	})

	t.Run("Should report missing email configuration", func(t *testing.T) {
		got := usecase.NewHealthUsecase("dev", false).Check(context.Background())
		assert.Equal(t, "ok", got["status"])
		assert.Equal(t, "not_configured", got["email"])
	})
}
