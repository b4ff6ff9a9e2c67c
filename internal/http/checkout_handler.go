package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/WGledhill94/loadLab/internal/checkout"
	"github.com/WGledhill94/loadLab/internal/domain"
)

type CheckoutHandler struct {
	checkout checkout.Service
}

func NewCheckoutHandler(svc checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc}
}

// CheckoutRequestDTO deliberately has no total field: the server computes
// the total from the items, and any client-supplied value is dropped during
// decoding.
type CheckoutRequestDTO struct {
	Items        []domain.CartItem   `json:"items"`
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
	PaymentInfo  domain.PaymentInfo  `json:"paymentInfo"`
}

type CheckoutResponseDTO struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// POST /api/checkout
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Identity was resolved (or not) by the middleware; a checkout without
	// one is a guest checkout, never a rejection.
	identity := IdentityFromContext(r.Context())

	result, err := h.checkout.SubmitOrder(r.Context(), req.Items, req.CustomerInfo, req.PaymentInfo, identity)
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CheckoutResponseDTO{
		OrderID: result.OrderID,
		Status:  result.Status.String(),
	})
}

func handleCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
	case errors.Is(err, checkout.ErrMissingCustomerField):
		respondError(w, http.StatusBadRequest, "missing_customer_field", err.Error())
	case errors.Is(err, checkout.ErrInvalidItem):
		respondError(w, http.StatusBadRequest, "invalid_item", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
