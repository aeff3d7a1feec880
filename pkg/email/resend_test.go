package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedRequest struct {
	Method  string
	Path    string
	Auth    string
	Type    string
	Payload map[string]interface{}
}

func newFakeResend(t *testing.T, status int, body string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var got []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		got = append(got, capturedRequest{
			Method:  r.Method,
			Path:    r.URL.Path,
			Auth:    r.Header.Get("Authorization"),
			Type:    r.Header.Get("Content-Type"),
			Payload: payload,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func testMessage() *Message {
	return &Message{
		Kind:    KindNotification,
		From:    "Owner Portfolio <onboarding@resend.dev>",
		To:      []string{"owner@example.com"},
		ReplyTo: "ada@example.com",
		Subject: "Portfolio Contact: Hello",
		HTML:    "<p>hi</p>",
	}
}

func TestResendSenderSend(t *testing.T) {
	srv, got := newFakeResend(t, http.StatusOK, `{"id":"email_123"}`)

	sender, err := NewResendSender(ResendConfig{APIKey: "re_test", BaseURL: srv.URL + "/", Timeout: time.Second}, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, sender.IsConfigured())

	id, err := sender.Send(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, "email_123", id)

	require.Len(t, *got, 1)
	req := (*got)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/emails", req.Path)
	assert.Equal(t, "Bearer re_test", req.Auth)
	assert.Equal(t, "application/json", req.Type)
	assert.Equal(t, "Owner Portfolio <onboarding@resend.dev>", req.Payload["from"])
	assert.Equal(t, []interface{}{"owner@example.com"}, req.Payload["to"])
	assert.Equal(t, "ada@example.com", req.Payload["reply_to"])
	assert.Equal(t, "Portfolio Contact: Hello", req.Payload["subject"])
	assert.Equal(t, "<p>hi</p>", req.Payload["html"])
}

func TestResendSenderNon2xxIsError(t *testing.T) {
	srv, got := newFakeResend(t, http.StatusUnprocessableEntity, `{"statusCode":422,"name":"validation_error","message":"Invalid from"}`)

	sender, err := NewResendSender(ResendConfig{APIKey: "re_test", BaseURL: srv.URL + "/", Timeout: time.Second}, zap.NewNop())
	require.NoError(t, err)

	_, err = sender.Send(context.Background(), testMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "send notification email")
	assert.Len(t, *got, 1)
}

func TestResendSenderMissingKeyStillAttempts(t *testing.T) {
	srv, got := newFakeResend(t, http.StatusUnauthorized, `{"statusCode":401,"name":"missing_api_key","message":"Missing API key"}`)

	sender, err := NewResendSender(ResendConfig{BaseURL: srv.URL + "/", Timeout: time.Second}, nil)
	require.NoError(t, err)
	assert.False(t, sender.IsConfigured())

	_, err = sender.Send(context.Background(), testMessage())
	assert.Error(t, err)
	require.Len(t, *got, 1)
	assert.Equal(t, "Bearer", (*got)[0].Auth[:6])
}

func TestResendSenderTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL + "/"
	srv.Close()

	sender, err := NewResendSender(ResendConfig{APIKey: "re_test", BaseURL: url, Timeout: time.Second}, zap.NewNop())
	require.NoError(t, err)

	_, err = sender.Send(context.Background(), testMessage())
	assert.Error(t, err)
}

func TestResendSenderTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	sender, err := NewResendSender(ResendConfig{APIKey: "re_test", BaseURL: srv.URL + "/", Timeout: 20 * time.Millisecond}, zap.NewNop())
	require.NoError(t, err)

	_, err = sender.Send(context.Background(), testMessage())
	assert.Error(t, err)
}

func TestResendSenderNilMessage(t *testing.T) {
	sender, err := NewResendSender(ResendConfig{APIKey: "re_test"}, zap.NewNop())
	require.NoError(t, err)

	_, err = sender.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestNewResendSenderBadBaseURL(t *testing.T) {
	_, err := NewResendSender(ResendConfig{APIKey: "re_test", BaseURL: "http://[::1"}, zap.NewNop())
	assert.Error(t, err)
}
