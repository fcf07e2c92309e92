package commands

import "errors"

// Business-rule rejections raised by command handlers. Each maps to a
// distinct, stable response so clients can render an actionable message.
var (
	// ErrNotAParticipant indicates the acting user has no student identity.
	ErrNotAParticipant = errors.New("user is not a marketplace participant")

	// ErrInactiveAccount indicates the student exists but is deactivated.
	ErrInactiveAccount = errors.New("student account is deactivated")

	// ErrListingUnavailable indicates the listing is no longer on the market.
	ErrListingUnavailable = errors.New("listing is not available")

	// ErrWrongListingType indicates the listing does not support a sale.
	ErrWrongListingType = errors.New("listing does not support sell orders")

	// ErrSelfTrade indicates a buyer tried to order their own listing.
	ErrSelfTrade = errors.New("cannot order your own listing")

	// ErrDuplicateActiveOrder indicates the buyer already holds a non-terminal
	// order against the listing.
	ErrDuplicateActiveOrder = errors.New("an active order for this listing already exists")
)
