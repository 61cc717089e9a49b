package checkout

import (
	"context"

	"kitis-shop/models"
)

// Transport delivers a composed order somewhere out of our hands.
// Implementations report success or failure; they never retry on their
// own and they never see the cart.
type Transport interface {
	Send(ctx context.Context, payload *models.OrderPayload) error
}

// Pending is an in-flight order send. It terminates in exactly one of
// two outcomes: success, or failure with a reason. There is no
// cancellation; sends are assumed short-lived, and a duplicate from a
// manual retry is an accepted risk surfaced to the user, not handled
// here.
type Pending struct {
	done chan struct{}
	err  error
}

// Done is closed once the send has terminated.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the send terminates and returns its outcome.
func (p *Pending) Wait() error {
	<-p.done
	return p.err
}

// Service drives checkout: compose, then send asynchronously. Clearing
// the cart on success, and retrying on failure, are policy the caller
// keeps — the cart and the billing input survive any failed send.
type Service struct {
	Composer  *Composer
	Transport Transport
}

// Submit composes an order and starts the send. It fails fast with
// ErrEmptyCart before anything is sent; otherwise the returned Pending
// resolves when the transport reports back.
func (s *Service) Submit(ctx context.Context, proj models.Projection, billing models.BillingInfo) (*Pending, error) {
	payload, err := s.Composer.Compose(proj, billing)
	if err != nil {
		return nil, err
	}

	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.err = s.Transport.Send(ctx, payload)
	}()
	return p, nil
}
