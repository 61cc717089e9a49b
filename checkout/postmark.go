// checkout/postmark.go
package checkout

import (
	"context"
	"fmt"

	"github.com/keighl/postmark"

	"kitis-shop/models"
)

// PostmarkSender delivers orders through the Postmark API.
type PostmarkSender struct {
	client *postmark.Client
	from   string
	to     string
}

// NewPostmarkSender creates a Postmark transport sending from `from`
// to the shop's order inbox `to`.
func NewPostmarkSender(apiToken, from, to string) (*PostmarkSender, error) {
	if apiToken == "" {
		return nil, fmt.Errorf("postmark API token is not set")
	}
	return &PostmarkSender{
		client: postmark.NewClient(apiToken, ""),
		from:   from,
		to:     to,
	}, nil
}

// Send delivers the composed order as a plain-text email.
func (s *PostmarkSender) Send(_ context.Context, payload *models.OrderPayload) error {
	_, err := s.client.SendEmail(postmark.Email{
		From:     s.from,
		To:       s.to,
		ReplyTo:  payload.Billing.Email,
		Subject:  payload.Subject,
		TextBody: payload.Body,
	})
	if err != nil {
		return fmt.Errorf("failed to send order email: %w", err)
	}
	return nil
}
