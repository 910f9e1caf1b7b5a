package notification

import (
	"strings"
	"testing"
	"time"
)

func TestInviteMessage(t *testing.T) {
	url := "https://track.example.com/setup?token=abc123"
	expires := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)

	msg := InviteMessage("parent@example.com", url, expires)

	if msg.To != "parent@example.com" {
		t.Errorf("To = %q", msg.To)
	}
	if msg.Subject == "" {
		t.Error("empty subject")
	}
	for _, body := range []string{msg.Text, msg.HTML} {
		if !strings.Contains(body, url) {
			t.Errorf("body missing setup URL: %q", body)
		}
		if !strings.Contains(body, "September 2, 2026") {
			t.Errorf("body missing expiry date: %q", body)
		}
		if strings.Contains(body, "7 days") {
			t.Errorf("body carries a fixed expiry instead of the invite's date: %q", body)
		}
	}
}
