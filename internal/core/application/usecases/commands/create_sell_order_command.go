package commands

import (
	"errors"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/pkg/guard"
)

var (
	ErrCreateSellOrderCommandIsNotConstructed = errors.New(
		"CreateSellOrderCommand must be created via NewCreateSellOrderCommand constructor",
	)
)

// CreateSellOrderCommand represents a buyer's request to place a sell order
// against a listing. The buyer is identified by the raw user account id; the
// handler resolves it to a student identity.
type CreateSellOrderCommand struct { //nolint:recvcheck //using for validation
	listingID   kernel.UUID
	buyerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateSellOrderCommand creates a command to place a sell order.
// Both identifiers must be valid UUIDs.
func NewCreateSellOrderCommand(listingID, buyerUserID kernel.UUID) (CreateSellOrderCommand, error) {
	cmd := CreateSellOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setBuyerUserID(buyerUserID),
	); err != nil {
		return CreateSellOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSellOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateSellOrderCommandIsNotConstructed)
}

// ListingID returns the identifier of the listing to order.
func (c CreateSellOrderCommand) ListingID() kernel.UUID {
	return c.listingID
}

// BuyerUserID returns the raw user account identifier of the buyer.
func (c CreateSellOrderCommand) BuyerUserID() kernel.UUID {
	return c.buyerUserID
}

func (c *CreateSellOrderCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}

func (c *CreateSellOrderCommand) setBuyerUserID(buyerUserID kernel.UUID) error {
	if err := buyerUserID.Validate(); err != nil {
		return err
	}
	c.buyerUserID = buyerUserID
	return nil
}
