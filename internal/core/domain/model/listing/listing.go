// Package listing provides the Listing aggregate: an item a student offers
// for sale or rent. The order workflow owns the availability side effect of a
// completed sale; the listing's own update path never flips it.
package listing

import (
	"errors"

	"campusmarket/internal/core/domain/model/kernel"
)

var (
	// ErrListingIsNotConstructed is returned when a Listing instance was not
	// created through NewListing or RestoreListing.
	ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing or RestoreListing")
)

// Listing represents an item offered on the marketplace.
//
// Invariants:
//   - Identifier and owner are valid UUIDs
//   - Price is a constructed value
//   - Listing type is one of Sell, Rent, Both
type Listing struct {
	id      kernel.UUID
	ownerID kernel.UUID

	price       kernel.Price
	listingType ListingType
	isAvailable bool

	isConstructed bool
}

// NewListing creates an available listing owned by the given student.
func NewListing(id, ownerID kernel.UUID, price kernel.Price, listingType ListingType) (*Listing, error) {
	return restore(id, ownerID, price, listingType, true)
}

// RestoreListing reconstructs a listing from persistence, including its
// current availability.
func RestoreListing(
	id, ownerID kernel.UUID,
	price kernel.Price,
	listingType ListingType,
	isAvailable bool,
) (*Listing, error) {
	return restore(id, ownerID, price, listingType, isAvailable)
}

func restore(
	id, ownerID kernel.UUID,
	price kernel.Price,
	listingType ListingType,
	isAvailable bool,
) (*Listing, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		price.Validate(),
		listingType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Listing{
		id:            id,
		ownerID:       ownerID,
		price:         price,
		listingType:   listingType,
		isAvailable:   isAvailable,
		isConstructed: true,
	}, nil
}

// Validate ensures the Listing instance was properly constructed.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// OwnerID returns the student identifier of the listing's owner.
func (l *Listing) OwnerID() kernel.UUID {
	return l.ownerID
}

// Price returns the current asking price.
func (l *Listing) Price() kernel.Price {
	return l.price
}

// Type returns the listing type.
func (l *Listing) Type() ListingType {
	return l.listingType
}

// IsAvailable reports whether the listing can still be ordered.
func (l *Listing) IsAvailable() bool {
	return l.isAvailable
}

// IsOwnedBy reports whether the given student owns the listing.
func (l *Listing) IsOwnedBy(studentID kernel.UUID) bool {
	return l.ownerID.IsEqual(studentID)
}

// MarkUnavailable flips the listing off the market. Called by the order
// workflow when a sale completes.
func (l *Listing) MarkUnavailable() {
	l.isAvailable = false
}
