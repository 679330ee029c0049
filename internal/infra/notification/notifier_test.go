package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/infra/retry"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func levelUpEvent() *service.PointsEvent {
	return &service.PointsEvent{
		EventID:   "evt-1",
		Type:      service.PointsEventLevelUp,
		Recipient: service.Recipient{UserID: "u-1", Email: "ana@example.com", Name: "Ana"},
		Payload:   service.PointsPayload{Points: 100, Level: 1, Delta: 5, PointsToNextLevel: 100},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		eventType   service.PointsEventType
		delta       int
		wantSubject string
		wantBody    string
	}{
		{name: "gain", eventType: service.PointsEventGain, delta: 5, wantSubject: "has ganado 5 puntos", wantBody: "Puntos actuales: 100"},
		{name: "lose", eventType: service.PointsEventLose, delta: -5, wantSubject: "has perdido puntos", wantBody: "has perdido 5 puntos"},
		{name: "levelup", eventType: service.PointsEventLevelUp, delta: 5, wantSubject: "nivel 1", wantBody: "Felicidades Ana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			event := levelUpEvent()
			event.Type = tt.eventType
			event.Payload.Delta = tt.delta

			content := render(event)
			assert.Contains(t, content.Subject, tt.wantSubject)
			assert.Contains(t, content.Body, tt.wantBody)
		})
	}
}

func TestEdgeNotifier_PostsPointsPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])
		assert.Equal(t, "Ana", body["name"])
		assert.Equal(t, "levelup", body["changeType"])
		assert.InDelta(t, 100, body["points"], 0)
		assert.InDelta(t, 1, body["level"], 0)

		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(server.Close)

	notifier := NewEdgeNotifier(server.URL, "anon-key", time.Second, discardLogger())
	require.NoError(t, notifier.Notify(context.Background(), levelUpEvent()))
}

func TestEdgeNotifier_StatusClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status        int
		wantPermanent bool
	}{
		{status: http.StatusBadRequest, wantPermanent: true},
		{status: http.StatusUnauthorized, wantPermanent: true},
		{status: http.StatusTooManyRequests, wantPermanent: false},
		{status: http.StatusInternalServerError, wantPermanent: false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			t.Cleanup(server.Close)

			err := NewEdgeNotifier(server.URL, "", time.Second, discardLogger()).Notify(context.Background(), levelUpEvent())
			require.Error(t, err)
			assert.Equal(t, tt.wantPermanent, retry.IsPermanent(err))
		})
	}
}

func TestResendNotifier_SendsEmail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_123", r.Header.Get("Authorization"))

		var email resendEmail
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&email))
		assert.Equal(t, "Puntos <points@example.com>", email.From)
		assert.Equal(t, []string{"ana@example.com"}, email.To)
		assert.Contains(t, email.Subject, "nivel 1")
		assert.NotEmpty(t, email.Text)

		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	t.Cleanup(server.Close)

	notifier := NewResendNotifier(server.URL, "re_123", "Puntos <points@example.com>", time.Second, discardLogger())
	require.NoError(t, notifier.Notify(context.Background(), levelUpEvent()))
}

func TestResendNotifier_MissingEmailIsPermanent(t *testing.T) {
	t.Parallel()

	event := levelUpEvent()
	event.Recipient.Email = ""

	err := NewResendNotifier("http://127.0.0.1:0", "k", "f", time.Second, discardLogger()).Notify(context.Background(), event)
	require.Error(t, err)
	assert.True(t, retry.IsPermanent(err))
}

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/p/messages/1", nil
}

func TestFirebaseNotifier_SendsToUserTopic(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	notifier := newFirebaseNotifier(sender, "loyalty-", discardLogger())

	require.NoError(t, notifier.Notify(context.Background(), levelUpEvent()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "loyalty-u-1", msg.Topic)
	assert.Contains(t, msg.Notification.Title, "nivel 1")
	assert.Equal(t, "levelup", msg.Data["event_type"])
	assert.Equal(t, "100", msg.Data["points"])
}

func TestFirebaseNotifier_TransportErrorIsRetryable(t *testing.T) {
	t.Parallel()

	notifier := newFirebaseNotifier(&fakeSender{err: errors.New("unavailable")}, "", discardLogger())

	err := notifier.Notify(context.Background(), levelUpEvent())
	require.Error(t, err)
	assert.False(t, retry.IsPermanent(err))
}

func TestWithRetry_RetriesTransientNotifyFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	policy := retry.Policy{Attempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond, Multiplier: 2}
	notifier := WithRetry(NewEdgeNotifier(server.URL, "", time.Second, discardLogger()), policy, discardLogger())

	require.NoError(t, notifier.Notify(context.Background(), levelUpEvent()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWithRetry_StopsOnPermanentFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	t.Cleanup(server.Close)

	policy := retry.Policy{Attempts: 3, InitialBackoff: time.Millisecond, Multiplier: 2}
	notifier := WithRetry(NewEdgeNotifier(server.URL, "", time.Second, discardLogger()), policy, discardLogger())

	err := notifier.Notify(context.Background(), levelUpEvent())
	require.Error(t, err)
	assert.True(t, retry.IsPermanent(err))
	assert.Equal(t, int32(1), calls.Load())
}
