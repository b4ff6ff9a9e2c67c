package cart

import "github.com/WGledhill94/loadLab/internal/domain"

// Payload is the wire shape of a checkout submission. The card number is
// masked here, at the cart boundary: the full number never leaves the cart
// layer in an outbound payload.
type Payload struct {
	Items        []domain.CartItem   `json:"items"`
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
	PaymentInfo  domain.PaymentInfo  `json:"paymentInfo"`
}

// CheckoutPayload snapshots the cart into a submission payload. The cart
// itself is not cleared; the owner clears it only after the server confirms.
func (c *Cart) CheckoutPayload(customer domain.CustomerInfo, payment domain.PaymentInfo) Payload {
	payment.CardNumber = domain.MaskCardNumber(payment.CardNumber)
	return Payload{
		Items:        c.Items(),
		CustomerInfo: customer,
		PaymentInfo:  payment,
	}
}
