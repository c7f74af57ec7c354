package services

import (
	"fmt"
	"time"
)

// Mailer builds the application's transactional messages. Every message value
// is assembled per call and handed to the sender, so concurrent requests never
// share a payload.
type Mailer struct {
	sender EmailSender
}

func NewMailer(sender EmailSender) *Mailer {
	return &Mailer{sender: sender}
}

func (m *Mailer) SendSignupConfirmation(name, email string) error {
	subject := "Jtaclogs signup confirmation"
	body := fmt.Sprintf(`<html><body>
<h3>Successful sign up for %s with Jtaclogs!</h3>
<div>Thanks for signing up. Be aware that the app is using a third party API
for fetching the catalog content; we do not control sudden changes made by
that third party. For some countries no content is available.
<br/><br/>We hope you enjoy the app.</div>
</body></html>`, name)
	return m.sender.Send(email, subject, body)
}

func (m *Mailer) SendPasswordResetLink(email, resetLink string, expiresAt time.Time) error {
	subject := "Jtaclogs password reset"
	body := fmt.Sprintf(`<html><body>
<h3>Password reset for %s</h3>
<div><p>Click this <a href="%s">link</a> to reset your password.</p>
<p>This link is valid for 15 min until: %s.</p></div>
</body></html>`, email, resetLink, expiresAt.Format(time.RFC1123))
	return m.sender.Send(email, subject, body)
}
