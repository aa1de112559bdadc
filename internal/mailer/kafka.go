package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/iamdarshshah/devcollective/pkg/kafka"
	"github.com/iamdarshshah/devcollective/pkg/logger"
)

// Topic and event type for outbound mail requests. A downstream notification
// worker renders and delivers the actual email.
const (
	MailTopic              = "identity.mail"
	EventConfirmationEmail = "identity.email.confirmation_requested"
)

// ConfirmationRequested is the payload published for each confirmation email.
type ConfirmationRequested struct {
	Email           string `json:"email"`
	ConfirmationURL string `json:"confirmationUrl"`
}

type eventPublisher interface {
	Publish(ctx context.Context, topic string, event *kafka.Event) error
}

// EventMailer publishes mail requests to Kafka instead of talking SMTP
// directly. The confirmation link is built from the public base URL so the
// email works from outside the cluster.
type EventMailer struct {
	producer      eventPublisher
	publicBaseURL string
	logger        *slog.Logger
}

// NewEventMailer creates a Kafka-backed mailer.
func NewEventMailer(producer eventPublisher, publicBaseURL string, log *slog.Logger) *EventMailer {
	return &EventMailer{
		producer:      producer,
		publicBaseURL: publicBaseURL,
		logger:        log,
	}
}

func (m *EventMailer) SendAccountConfirmation(ctx context.Context, to, token string) error {
	payload := ConfirmationRequested{
		Email:           to,
		ConfirmationURL: m.confirmationURL(to, token),
	}

	event, err := kafka.NewEvent(EventConfirmationEmail, to, "user", "identity-service", payload)
	if err != nil {
		return fmt.Errorf("build confirmation event: %w", err)
	}
	if cid := logger.CorrelationIDFromContext(ctx); cid != "" {
		event = event.WithCorrelationID(cid)
	}

	if err := m.producer.Publish(ctx, MailTopic, event); err != nil {
		return fmt.Errorf("publish confirmation event: %w", err)
	}

	m.logger.InfoContext(ctx, "confirmation email requested", slog.String("email", to))
	return nil
}

func (m *EventMailer) confirmationURL(email, token string) string {
	q := url.Values{}
	q.Set("confirm", token)
	q.Set("email", email)
	return m.publicBaseURL + "/auth/confirmAccount?" + q.Encode()
}
