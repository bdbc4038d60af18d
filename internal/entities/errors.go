package entities

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrOrderNotFound         = fmt.Errorf("order %w", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("user %w", ErrNotFound)
	ErrProductNotFound       = fmt.Errorf("product %w", ErrNotFound)
	ErrAddressNotFound       = fmt.Errorf("address %w", ErrNotFound)
	ErrPaymentMethodNotFound = fmt.Errorf("payment method %w", ErrNotFound)

	ErrInsufficientInventory  = errors.New("not enough inventory")
	ErrPaymentDeclined        = errors.New("payment authorization failed: card declined")
	ErrInvalidStateTransition = errors.New("only processing orders can change status")
	ErrUnauthorized           = errors.New("not allowed to access this order")
	ErrDependencyUnavailable  = errors.New("dependency unavailable")
	ErrInvalidRequest         = errors.New("invalid request")
)

type InsufficientInventoryError struct {
	ProductID int64
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough inventory for product %d", e.ProductID)
}

func (e *InsufficientInventoryError) Is(target error) bool {
	return target == ErrInsufficientInventory
}

func InvalidRequest(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, msg)
}

// Unavailable marks err as an infrastructure failure, keeping known domain errors intact.
func Unavailable(err error) error {
	if err == nil || IsDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
}

func IsDomain(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrInsufficientInventory, ErrPaymentDeclined, ErrInvalidStateTransition,
		ErrUnauthorized, ErrDependencyUnavailable, ErrInvalidRequest,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
