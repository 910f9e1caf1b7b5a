package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// Message is an outbound email.
type Message struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}

// SendResult is the dispatcher's outcome shape. Provider failures are
// reported here, never as errors or panics escaping Send.
type SendResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ConfigSource supplies the stored provider configuration.
type ConfigSource interface {
	Get(ctx context.Context) (*domain.EmailConfig, error)
}

// Dispatcher selects one of three send strategies based on the stored
// provider configuration and forwards the message. Each call is a single
// best-effort attempt: no retry, no queueing.
type Dispatcher struct {
	logger  *slog.Logger
	configs ConfigSource

	// Send functions, replaceable in tests.
	sendGrid sendGridFunc
	sendSMTP smtpFunc
}

type sendGridFunc func(ctx context.Context, cfg *domain.EmailConfig, msg Message) error
type smtpFunc func(cfg *domain.EmailConfig, msg Message) error

// NewDispatcher creates an email dispatcher reading configuration from
// configs on every send.
func NewDispatcher(logger *slog.Logger, configs ConfigSource) *Dispatcher {
	return &Dispatcher{
		logger:   logger,
		configs:  configs,
		sendGrid: sendGridSend,
		sendSMTP: smtpSend,
	}
}

// SMTP2GO connection defaults, used when the stored config selects the
// smtp2go provider without an explicit host.
const (
	smtp2goHost = "mail.smtp2go.com"
	smtp2goPort = 2525
)

// Send forwards msg to the configured provider and converts any failure
// into the result shape.
func (d *Dispatcher) Send(ctx context.Context, msg Message) (result SendResult) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("email provider panic", "panic", r)
			result = SendResult{Error: fmt.Sprintf("email send failed: %v", r)}
		}
	}()

	cfg, err := d.configs.Get(ctx)
	if err != nil {
		d.logger.Error("failed to load email configuration", "error", err)
		return SendResult{Error: "email is not configured"}
	}

	if msg.From == "" {
		msg.From = formatFrom(cfg)
	}

	switch cfg.Provider {
	case domain.ProviderSendGrid:
		err = d.sendGrid(ctx, cfg, msg)
	case domain.ProviderSMTP2GO:
		smtpCfg := *cfg
		if smtpCfg.SMTPHost == "" {
			smtpCfg.SMTPHost = smtp2goHost
		}
		if smtpCfg.SMTPPort == 0 {
			smtpCfg.SMTPPort = smtp2goPort
		}
		err = d.sendSMTP(&smtpCfg, msg)
	case domain.ProviderSMTP:
		err = d.sendSMTP(cfg, msg)
	default:
		err = fmt.Errorf("unknown email provider %q", cfg.Provider)
	}

	if err != nil {
		d.logger.Error("email send failed", "provider", cfg.Provider, "to", msg.To, "error", err)
		return SendResult{Error: err.Error()}
	}

	d.logger.Info("email sent", "provider", cfg.Provider, "to", msg.To)
	return SendResult{Success: true}
}

func formatFrom(cfg *domain.EmailConfig) string {
	if cfg.FromName != "" {
		return fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}
	return cfg.FromAddress
}
