package services

import "errors"

// Sentinel errors. Controllers map these onto the HTTP taxonomy:
// not-found → 404, validation/conflict → 400.
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")

	ErrAddressNotFound = errors.New("shipping address not found")
	ErrVariantNotFound = errors.New("product variant not found")
	ErrProductNotFound = errors.New("product not found")

	ErrOrderNotFound        = errors.New("order not found")
	ErrAlreadyPaid          = errors.New("payment has already been completed for this order")
	ErrAmountMismatch       = errors.New("amount does not match the order total price")
	ErrDuplicateTransaction = errors.New("transaction id already used")
	ErrPaymentsDisabled     = errors.New("payment provider is not configured")

	ErrWishlistNotFound = errors.New("wishlist not found")
	ErrRoomNotFound     = errors.New("chat room not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
