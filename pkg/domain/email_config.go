package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmailProvider selects the backend the email dispatcher forwards to.
type EmailProvider string

const (
	ProviderSendGrid EmailProvider = "sendgrid"
	ProviderSMTP2GO  EmailProvider = "smtp2go"
	ProviderSMTP     EmailProvider = "smtp"
)

// ValidEmailProvider reports whether p is a known provider.
func ValidEmailProvider(p EmailProvider) bool {
	switch p {
	case ProviderSendGrid, ProviderSMTP2GO, ProviderSMTP:
		return true
	}
	return false
}

// EmailConfig is the stored provider selection and credentials. A single
// row holds the active configuration; the dispatcher reads it on every send
// and never writes it.
type EmailConfig struct {
	ID             uuid.UUID     `json:"id"`
	Provider       EmailProvider `json:"provider"`
	SendGridAPIKey string        `json:"-"`
	SMTPHost       string        `json:"smtpHost,omitempty"`
	SMTPPort       int           `json:"smtpPort,omitempty"`
	SMTPUser       string        `json:"smtpUser,omitempty"`
	SMTPPassword   string        `json:"-"`
	FromAddress    string        `json:"fromAddress"`
	FromName       string        `json:"fromName,omitempty"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
