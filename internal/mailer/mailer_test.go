package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamdarshshah/devcollective/pkg/kafka"
	"github.com/iamdarshshah/devcollective/pkg/logger"
)

type capturingPublisher struct {
	topic string
	event *kafka.Event
	err   error
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, event *kafka.Event) error {
	p.topic = topic
	p.event = event
	return p.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))
}

func TestEventMailer_SendAccountConfirmation(t *testing.T) {
	pub := &capturingPublisher{}
	m := NewEventMailer(pub, "https://devcollective.example", discardLogger())

	err := m.SendAccountConfirmation(context.Background(), "ada@example.com", "3f2c8a1e-9d4b-4c6f-8a2e-1b5d7e9f0a3c")
	require.NoError(t, err)

	assert.Equal(t, MailTopic, pub.topic)
	require.NotNil(t, pub.event)
	assert.Equal(t, EventConfirmationEmail, pub.event.EventType)
	assert.Equal(t, "ada@example.com", pub.event.AggregateID)

	var payload ConfirmationRequested
	require.NoError(t, json.Unmarshal(pub.event.Data, &payload))
	assert.Equal(t, "ada@example.com", payload.Email)
	assert.Contains(t, payload.ConfirmationURL, "https://devcollective.example/auth/confirmAccount?")
	assert.Contains(t, payload.ConfirmationURL, "confirm=3f2c8a1e-9d4b-4c6f-8a2e-1b5d7e9f0a3c")
	assert.Contains(t, payload.ConfirmationURL, "email=ada%40example.com")
}

func TestEventMailer_PropagatesCorrelationID(t *testing.T) {
	pub := &capturingPublisher{}
	m := NewEventMailer(pub, "https://devcollective.example", discardLogger())

	ctx := logger.WithCorrelationID(context.Background(), "corr-123")
	require.NoError(t, m.SendAccountConfirmation(ctx, "ada@example.com", "token"))

	require.NotNil(t, pub.event)
	assert.Equal(t, "corr-123", pub.event.CorrelationID)
}

func TestEventMailer_PublishFailure(t *testing.T) {
	pub := &capturingPublisher{err: errors.New("broker down")}
	m := NewEventMailer(pub, "https://devcollective.example", discardLogger())

	err := m.SendAccountConfirmation(context.Background(), "ada@example.com", "token")
	assert.ErrorContains(t, err, "publish confirmation event")
}

func TestLogMailer_WritesLink(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	m := NewLogMailer("http://localhost:8080", log)
	require.NoError(t, m.SendAccountConfirmation(context.Background(), "ada@example.com", "tok"))

	assert.Contains(t, buf.String(), "http://localhost:8080/auth/confirmAccount?")
	assert.Contains(t, buf.String(), "ada%40example.com")
}
