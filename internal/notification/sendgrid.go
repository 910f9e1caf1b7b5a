package notification

import (
	"context"
	"fmt"
	netmail "net/mail"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/leonguyen52/sprout-track-sub004/pkg/domain"
)

// sendGridSend delivers a message through the SendGrid v3 API.
func sendGridSend(ctx context.Context, cfg *domain.EmailConfig, msg Message) error {
	if cfg.SendGridAPIKey == "" {
		return fmt.Errorf("sendgrid: missing API key")
	}

	m := mail.NewV3Mail()
	m.SetFrom(parseEmail(msg.From))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(parseEmail(msg.To))
	m.AddPersonalizations(p)

	// SendGrid requires text/plain before text/html.
	if msg.Text != "" {
		m.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(mail.NewContent("text/html", msg.HTML))
	}

	client := sendgrid.NewSendClient(cfg.SendGridAPIKey)
	resp, err := client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// parseEmail splits a "Name <addr>" string into a SendGrid email value,
// falling back to the raw string as a bare address.
func parseEmail(s string) *mail.Email {
	if addr, err := netmail.ParseAddress(s); err == nil {
		return mail.NewEmail(addr.Name, addr.Address)
	}
	return mail.NewEmail("", s)
}
