// Package transport delivers rendered verification messages to users by
// email or SMS.
package transport

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// Sender delivers message to destination. A nil error means the message was
// handed off; implementations do not retry.
type Sender interface {
	Send(ctx context.Context, message, destination string) error
}

// LogSender writes the message to the log instead of delivering it. Used in
// development and tests.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger.With("module", "transport")}
}

func (s *LogSender) Send(ctx context.Context, message, destination string) error {
	s.logger.Info(ctx, "verification message", "destination", destination, "message", message)
	return nil
}

// Config selects and configures a Sender.
type Config struct {
	Kind string // "log", "smtp" or "sms"

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	SMSEndpoint string
	SMSToken    string
}

// New builds the Sender named by cfg.Kind.
func New(cfg Config, logger logging.Logger) (Sender, error) {
	switch cfg.Kind {
	case "log", "":
		return NewLogSender(logger), nil
	case "smtp":
		if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
			return nil, fmt.Errorf("smtp transport requires host and from address")
		}
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom), nil
	case "sms":
		if cfg.SMSEndpoint == "" {
			return nil, fmt.Errorf("sms transport requires an endpoint")
		}
		return NewSMSSender(cfg.SMSEndpoint, cfg.SMSToken, nil), nil
	}
	return nil, fmt.Errorf("unsupported transport %q", cfg.Kind)
}
