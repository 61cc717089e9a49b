package checkout

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"kitis-shop/models"
)

// SendGridSender delivers orders through the SendGrid API.
type SendGridSender struct {
	client *sendgrid.Client
	from   string
	to     string
}

// NewSendGridSender creates a SendGrid transport.
func NewSendGridSender(apiKey, from, to string) (*SendGridSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("sendgrid API key is not set")
	}
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}, nil
}

func (s *SendGridSender) Send(_ context.Context, payload *models.OrderPayload) error {
	from := mail.NewEmail("", s.from)
	to := mail.NewEmail("", s.to)
	message := mail.NewSingleEmail(from, payload.Subject, to, payload.Body, "")

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send order email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected order email: status %d", resp.StatusCode)
	}
	return nil
}
