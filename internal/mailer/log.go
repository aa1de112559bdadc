package mailer

import (
	"context"
	"log/slog"
)

// LogMailer writes the confirmation link to the log instead of sending mail.
// Used in development and in tests where no broker is running.
type LogMailer struct {
	publicBaseURL string
	logger        *slog.Logger
}

// NewLogMailer creates a mailer that only logs.
func NewLogMailer(publicBaseURL string, log *slog.Logger) *LogMailer {
	return &LogMailer{publicBaseURL: publicBaseURL, logger: log}
}

func (m *LogMailer) SendAccountConfirmation(ctx context.Context, to, token string) error {
	link := (&EventMailer{publicBaseURL: m.publicBaseURL}).confirmationURL(to, token)
	m.logger.InfoContext(ctx, "account confirmation email (log only)",
		slog.String("email", to),
		slog.String("link", link),
	)
	return nil
}
