package checkout

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty, nothing to checkout")
	ErrMissingCustomerField = errors.New("missing required customer field")
	ErrInvalidItem          = errors.New("invalid line item")
)
