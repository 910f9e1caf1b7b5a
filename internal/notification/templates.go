package notification

import (
	"fmt"
	"time"
)

// InviteMessage builds the setup invitation email. The expiry date comes
// from the invite row, so the text follows the configured TTL.
func InviteMessage(to, inviteURL string, expiresAt time.Time) Message {
	expiry := expiresAt.Format("January 2, 2006")

	html := fmt.Sprintf(`<html><body>
		<h2>You're invited to set up a family</h2>
		<p>You have been invited to create a family on Sprout Track.</p>
		<p><a href="%s">Click here to start setup</a></p>
		<p>Or copy this link to your browser: %s</p>
		<p>This invitation expires on %s.</p>
	</body></html>`, inviteURL, inviteURL, expiry)

	text := fmt.Sprintf("You have been invited to create a family on Sprout Track.\n\nStart setup: %s\n\nThis invitation expires on %s.\n", inviteURL, expiry)

	return Message{
		To:      to,
		Subject: "Your family setup invitation",
		Text:    text,
		HTML:    html,
	}
}
