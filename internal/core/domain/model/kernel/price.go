package kernel

import (
	"fmt"

	"campusmarket/internal/pkg/errs"
	"campusmarket/internal/pkg/guard"
)

// ErrPriceIsNotConstructed indicates that a Price was not created via NewPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice")

// Price is a value object representing a monetary amount in minor currency
// units (e.g. cents). Amounts are snapshots: once captured on an order they
// are never recomputed.
//
// The zero value is invalid; construct via NewPrice.
type Price struct {
	amount int64

	guard guard.ConstructorGuard
}

// NewPrice creates a Price from an amount in minor currency units.
// Negative amounts are rejected.
func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", amount))
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the amount in minor currency units.
func (p Price) Amount() int64 {
	return p.amount
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String renders the amount as a plain integer of minor units.
func (p Price) String() string {
	return fmt.Sprintf("%d", p.amount)
}

// Validate ensures the Price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
