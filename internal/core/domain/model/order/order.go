package order

import (
	"errors"
	"fmt"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a marketplace transaction. It links a
// buyer, a seller, and a listing, and progresses through the Status state
// machine from Pending to one of the terminal statuses.
//
// Order maintains these invariants:
//   - All identifiers are valid UUIDs
//   - Buyer and seller are different students
//   - The seller is the listing owner at creation time (captured by copying
//     the owner id, never re-derived later)
//   - Total price is a snapshot taken at creation and immutable afterwards
//   - Status only changes through transitions the state machine allows
//
// Orders are never physically deleted; rejection and cancellation are
// terminal statuses, not deletions.
type Order struct {
	id        kernel.UUID
	listingID kernel.UUID
	buyerID   kernel.UUID
	sellerID  kernel.UUID

	orderType  OrderType
	status     Status
	totalPrice kernel.Price

	// loadedStatus is the status the aggregate carried when it was read from
	// persistence. Repositories use it for conditional writes so two racing
	// updates on the same order cannot both commit.
	loadedStatus Status

	isConstructed bool
}

// NewOrder creates a Pending sell order. The total price must be the
// listing's price at this instant and the seller must be the listing owner;
// both are the caller's responsibility to source correctly.
//
// Returns a validation error if any identifier is invalid, the price was not
// constructed, or buyer and seller are the same student.
func NewOrder(id, listingID, buyerID, sellerID kernel.UUID, totalPrice kernel.Price) (*Order, error) {
	o := &Order{
		orderType:     TypeSell,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setListingID(listingID),
		o.setParties(buyerID, sellerID),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and order type, and records the status at load
// time for optimistic concurrency checks.
func RestoreOrder(
	id, listingID, buyerID, sellerID kernel.UUID,
	orderType OrderType,
	status Status,
	totalPrice kernel.Price,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setListingID(listingID),
		o.setParties(buyerID, sellerID),
		o.setTotalPrice(totalPrice),
		orderType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.orderType = orderType
	o.status = status
	o.loadedStatus = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ListingID returns the identifier of the listing being transacted.
func (o *Order) ListingID() kernel.UUID {
	return o.listingID
}

// BuyerID returns the buyer's student identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the seller's student identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// Type returns the kind of transaction this order represents.
func (o *Order) Type() OrderType {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus returns the status the aggregate carried when it was read
// from persistence. For freshly created orders it is Unknown.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// TotalPrice returns the price snapshot taken at creation.
func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

// IsBuyer reports whether the given student is the order's buyer.
func (o *Order) IsBuyer(studentID kernel.UUID) bool {
	return o.buyerID.IsEqual(studentID)
}

// IsSeller reports whether the given student is the order's seller.
func (o *Order) IsSeller(studentID kernel.UUID) bool {
	return o.sellerID.IsEqual(studentID)
}

// IsParticipant reports whether the given student is the buyer or the seller.
func (o *Order) IsParticipant(studentID kernel.UUID) bool {
	return o.IsBuyer(studentID) || o.IsSeller(studentID)
}

// ChangeStatus transitions the order to next.
//
// Returns an InvalidTransitionError if the transition is not in the legality
// table. Role-based authorization is not checked here; that is the
// TransitionPolicy's concern.
func (o *Order) ChangeStatus(next Status) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	o.status = next
	return nil
}

// Cancel transitions the order to Cancelled.
//
// Returns a CancellationNotAllowedError unless the current status is in the
// pre-paid set.
func (o *Order) Cancel() error {
	if err := o.status.ValidateCancellation(); err != nil {
		return err
	}

	o.status = Cancelled
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	o.listingID = listingID
	return nil
}

func (o *Order) setParties(buyerID, sellerID kernel.UUID) error {
	if err := errors.Join(buyerID.Validate(), sellerID.Validate()); err != nil {
		return err
	}
	if buyerID.IsEqual(sellerID) {
		return errs.NewValueIsInvalidErrorWithCause("buyer",
			fmt.Errorf("buyer %s must differ from seller", buyerID))
	}

	o.buyerID = buyerID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Price) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}
