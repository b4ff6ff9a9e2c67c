// Package notify sends order confirmation email as a detached background
// task. A confirmation is attempted once; failure is logged and swallowed,
// never surfaced to the checkout that queued it.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/WGledhill94/loadLab/internal/domain"
	"go.uber.org/zap"
)

// Notifier queues confirmed orders and delivers confirmations from a single
// background dispatcher. Enqueueing never blocks the caller: when the queue
// is full the confirmation is dropped and logged.
type Notifier struct {
	sender      Sender
	queue       chan domain.Order
	sendTimeout time.Duration
	log         *zap.Logger
}

func New(sender Sender, queueSize int, sendTimeout time.Duration, log *zap.Logger) *Notifier {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Notifier{
		sender:      sender,
		queue:       make(chan domain.Order, queueSize),
		sendTimeout: sendTimeout,
		log:         log,
	}
}

// OrderConfirmed hands the order to the dispatcher. Non-blocking.
func (n *Notifier) OrderConfirmed(order domain.Order) {
	select {
	case n.queue <- order:
	default:
		n.log.Warn("confirmation queue full, dropping notification",
			zap.String("order_id", order.ID.String()))
	}
}

// Run processes the queue until the context is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case order := <-n.queue:
			n.deliver(order)
		}
	}
}

func (n *Notifier) deliver(order domain.Order) {
	// Each attempt gets its own bounded context: the originating request is
	// long gone and must not be held up.
	ctx, cancel := context.WithTimeout(context.Background(), n.sendTimeout)
	defer cancel()

	subject := fmt.Sprintf("Order Confirmation - %s", order.ID)
	if err := n.sender.Send(ctx, order.CustomerInfo.Email, subject, confirmationBody(order)); err != nil {
		n.log.Warn("confirmation email failed",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
		return
	}
	n.log.Info("confirmation email sent",
		zap.String("order_id", order.ID.String()))
}

func confirmationBody(order domain.Order) string {
	return fmt.Sprintf(`<h2>Order Confirmed!</h2>
<p>Order ID: %s</p>
<p>Total: $%.2f</p>
<p>Thank you for your order!</p>`, order.ID, order.Total)
}
