package commands

import (
	"errors"

	"parcellabel/internal/pkg/errs"
	"parcellabel/internal/pkg/guard"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrGenerateLabelCommandIsNotConstructed = errors.New(
	"GenerateLabelCommand must be created via NewGenerateLabelCommand constructor",
)

// GenerateLabelCommand requests a carrier label for one order.
//
// Example:
//
//	cmd, err := NewGenerateLabelCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type GenerateLabelCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGenerateLabelCommand validates that orderID is positive.
func NewGenerateLabelCommand(orderID int64) (GenerateLabelCommand, error) {
	cmd := GenerateLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return GenerateLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateLabelCommand) Validate() error {
	return c.guard.Validate(ErrGenerateLabelCommandIsNotConstructed)
}

func (c GenerateLabelCommand) OrderID() int64 {
	return c.orderID
}

func (c *GenerateLabelCommand) setOrderID(orderID int64) error {
	if err := validation.Validate(orderID, validation.Required, validation.Min(int64(1))); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	c.orderID = orderID
	return nil
}
