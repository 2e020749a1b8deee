package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender sends mail through a single SMTP relay using PLAIN auth.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender constructs a sender for the given relay. from is used as both
// the envelope sender and the From header.
func NewSMTPSender(host, port, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// sendMail is a seam for testing smtp.SendMail.
var sendMail = smtp.SendMail

// Send delivers one message. The smtp package has no context support, so the
// call runs in a goroutine and the result is abandoned on ctx expiry.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	done := make(chan error, 1)
	go func() {
		done <- sendMail(addr, auth, s.from, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// buildMessage assembles a minimal RFC 5322 text message.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// VerificationSubject and VerificationBody shape the signup confirmation email.
const VerificationSubject = "Confirm your email"

// VerificationBody renders the body for a verification code email.
func VerificationBody(code string) string {
	return fmt.Sprintf("Your verification code is %s.\r\n\r\nEnter it in the app to confirm your email address.", code)
}
