package order

import (
	"fmt"

	"campusmarket/internal/pkg/errs"
)

// OrderType distinguishes the kind of transaction an order represents.
// Only direct sales are supported today; the enum leaves room for rentals.
type OrderType int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown OrderType = iota

	// TypeSell is a direct sale of a listing.
	TypeSell
)

// Validate checks that the OrderType is a defined type.
func (t OrderType) Validate() error {
	if t != TypeSell {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire name of the order type.
func (t OrderType) String() string {
	if t == TypeSell {
		return "SELL"
	}
	return "UNKNOWN"
}
