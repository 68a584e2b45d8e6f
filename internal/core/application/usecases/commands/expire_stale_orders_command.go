package commands

import (
	"errors"
	"time"

	"burgershop/internal/pkg/guard"
)

var (
	ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
		"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("maxAge must be greater than 0")
)

// ExpireStaleOrdersCommand represents a request to cancel pending orders
// that were never picked up by the kitchen within the allowed age.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire stale pending orders.
func NewExpireStaleOrdersCommand(maxAge time.Duration) (ExpireStaleOrdersCommand, error) {
	cmd := ExpireStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxAge(maxAge); err != nil {
		return ExpireStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long a pending order may wait before it is cancelled.
func (c ExpireStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *ExpireStaleOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return ErrMaxAgeIsInvalid
	}

	c.maxAge = maxAge
	return nil
}
