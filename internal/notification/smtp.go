package notification

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// smtpSend delivers a message over SMTP. Serves both the generic smtp
// provider and the smtp2go provider (same protocol, SMTP2GO host defaults
// applied by the dispatcher).
func smtpSend(cfg *domain.EmailConfig, msg Message) error {
	if cfg.SMTPHost == "" {
		return fmt.Errorf("smtp: missing host")
	}
	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		if msg.HTML != "" {
			m.AddAlternative("text/html", msg.HTML)
		}
	} else {
		m.SetBody("text/html", msg.HTML)
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}
