package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/wneessen/go-mail"
)

// Sender delivers a single message. Delivery is best-effort throughout this
// package; callers never see a Send failure reflected anywhere but logs.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender delivers mail over SMTP.
type SMTPSender struct {
	client *mail.Client
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) (*SMTPSender, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPSender{client: client, from: from}, nil
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// BreakerSender wraps a Sender with a circuit breaker so a dead SMTP host
// stops costing a dial per order.
type BreakerSender struct {
	inner Sender
	cb    *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerSender(inner Sender) *BreakerSender {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "smtp",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &BreakerSender{inner: inner, cb: cb}
}

func (b *BreakerSender) Send(ctx context.Context, to, subject, body string) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.inner.Send(ctx, to, subject, body)
	})
	return err
}
