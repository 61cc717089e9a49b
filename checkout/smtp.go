package checkout

import (
	"context"
	"fmt"
	"net/smtp"

	"kitis-shop/models"
)

// SMTPSender delivers orders through a plain SMTP account.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	to       string
}

// NewSMTPSender validates the connection settings up front so a
// misconfigured shop fails at startup, not at the first checkout.
func NewSMTPSender(host, port, username, password, to string) (*SMTPSender, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP host not set")
	}
	if port == "" {
		return nil, fmt.Errorf("SMTP port not set")
	}
	if username == "" {
		return nil, fmt.Errorf("SMTP user not set")
	}
	if password == "" {
		return nil, fmt.Errorf("SMTP password not set")
	}
	return &SMTPSender{host: host, port: port, username: username, password: password, to: to}, nil
}

func (s *SMTPSender) Send(_ context.Context, payload *models.OrderPayload) error {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	msg := []byte(
		"From: " + s.username + "\r\n" +
			"To: " + s.to + "\r\n" +
			"Reply-To: " + payload.Billing.Email + "\r\n" +
			"Subject: " + payload.Subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			payload.Body,
	)

	if err := smtp.SendMail(addr, auth, s.username, []string{s.to}, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
