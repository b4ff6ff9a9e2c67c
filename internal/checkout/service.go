// Package checkout converts a submitted cart snapshot into a confirmed
// order. Submission is atomic from the caller's point of view: a request
// either fails validation before any order exists, or yields exactly one
// confirmed order.
package checkout

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/WGledhill94/loadLab/internal/domain"
	"github.com/WGledhill94/loadLab/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier receives confirmed orders for best-effort customer notification.
// Implementations must not block and have no way to fail the checkout.
type Notifier interface {
	OrderConfirmed(order domain.Order)
}

type Service interface {
	SubmitOrder(ctx context.Context, items []domain.CartItem, customer domain.CustomerInfo, payment domain.PaymentInfo, identity *domain.Identity) (*Result, error)
}

type Result struct {
	OrderID string
	Status  domain.OrderStatus
}

type ServiceImpl struct {
	orders   *store.Collection[domain.Order]
	notifier Notifier
	log      *zap.Logger
}

func NewService(orders *store.Collection[domain.Order], notifier Notifier, log *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		orders:   orders,
		notifier: notifier,
		log:      log,
	}
}

// SubmitOrder validates the submission, computes the authoritative total
// from the submitted items, and appends a confirmed order. A nil identity
// produces a guest order. Once validation passes there is no failure path:
// the order is appended and the notification attempt cannot undo it.
func (s *ServiceImpl) SubmitOrder(
	ctx context.Context,
	items []domain.CartItem,
	customer domain.CustomerInfo,
	payment domain.PaymentInfo,
	identity *domain.Identity,
) (*Result, error) {
	if err := validate(items, customer); err != nil {
		return nil, err
	}

	var userID *string
	if identity != nil {
		id := identity.ID
		userID = &id
	}

	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)

	order := domain.Order{
		ID:           uuid.New(),
		UserID:       userID,
		Items:        snapshot,
		CustomerInfo: customer,
		CardLast4:    domain.MaskCardNumber(payment.CardNumber),
		Total:        Total(items),
		Status:       domain.OrderStatusConfirmed,
		CreatedAt:    time.Now().UTC(),
	}
	s.orders.Append(order)

	s.log.Info("order confirmed",
		zap.String("order_id", order.ID.String()),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)),
		zap.Bool("guest", userID == nil))

	if s.notifier != nil {
		s.notifier.OrderConfirmed(order)
	}

	return &Result{OrderID: order.ID.String(), Status: order.Status}, nil
}

// Total sums price times quantity over the submitted items. Any
// client-computed total is ignored; this is the only total an order gets.
func Total(items []domain.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

func validate(items []domain.CartItem, customer domain.CustomerInfo) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: product %d has quantity %d", ErrInvalidItem, it.ID, it.Quantity)
		}
		if it.Price < 0 || math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
			return fmt.Errorf("%w: product %d has price %v", ErrInvalidItem, it.ID, it.Price)
		}
	}

	required := []struct {
		field string
		value string
	}{
		{"name", customer.Name},
		{"email", customer.Email},
		{"address", customer.Address},
		{"city", customer.City},
		{"zipCode", customer.ZipCode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingCustomerField, f.field)
		}
	}
	return nil
}
