package commands

import (
	"errors"
	"time"

	"campusmarket/internal/pkg/guard"
)

var (
	ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
		"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// ExpireStaleOrdersCommand requests cancellation of Pending orders the seller
// never reacted to. Used by the scheduled sweep, not by the request path.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire orders older than maxAge.
func NewExpireStaleOrdersCommand(maxAge time.Duration) (ExpireStaleOrdersCommand, error) {
	if maxAge <= 0 {
		return ExpireStaleOrdersCommand{}, ErrMaxAgeIsInvalid
	}

	return ExpireStaleOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long a Pending order may linger before it expires.
func (c ExpireStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}
