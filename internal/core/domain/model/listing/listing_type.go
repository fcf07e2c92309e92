package listing

import (
	"fmt"

	"campusmarket/internal/pkg/errs"
)

// ListingType describes how a listing may be transacted.
type ListingType int

const (
	// TypeUnknown represents an invalid or undefined listing type.
	TypeUnknown ListingType = iota

	// TypeSell offers the item for direct sale.
	TypeSell

	// TypeRent offers the item for rental only.
	TypeRent

	// TypeBoth offers the item for sale or rental.
	TypeBoth
)

func getValidListingTypeStrings() map[ListingType]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[ListingType]string{
		TypeSell: "SELL",
		TypeRent: "RENT",
		TypeBoth: "BOTH",
	}
}

// Validate checks that the ListingType is a defined type.
func (t ListingType) Validate() error {
	if _, ok := getValidListingTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("listing type",
			fmt.Errorf("%d is not a valid listing type", t))
	}
	return nil
}

// SupportsSale reports whether a sell order may target a listing of this type.
func (t ListingType) SupportsSale() bool {
	return t == TypeSell || t == TypeBoth
}

// String returns the wire name of the listing type.
func (t ListingType) String() string {
	if str, ok := getValidListingTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
