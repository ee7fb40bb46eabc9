package order

import (
	"errors"
	"fmt"

	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the read-only projection of a shop order.
//
// Invariants:
//   - id is positive
//   - the shipping country is a valid ISO code
//   - the total is not negative
type Order struct {
	id             int64
	shipping       Address
	billing        Contact
	total          kernel.Amount
	payment        PaymentMethod
	shippingMethod ShippingMethod

	// pickup is the checkout map selection, nil when none was stored
	pickup *PickupSelection

	isConstructed bool
}

// NewOrder validates every field and returns the order, or all validation
// errors joined.
func NewOrder(
	id int64,
	shipping Address,
	billing Contact,
	total kernel.Amount,
	payment PaymentMethod,
	shippingMethod ShippingMethod,
	pickup *PickupSelection,
) (*Order, error) {
	o := &Order{
		billing:       billing,
		payment:       payment,
		pickup:        pickup,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShipping(shipping),
		o.setTotal(total),
		o.setShippingMethod(shippingMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate rejects zero-value and nil orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Shipping() Address {
	return o.shipping
}

func (o *Order) Billing() Contact {
	return o.billing
}

func (o *Order) Total() kernel.Amount {
	return o.total
}

func (o *Order) Payment() PaymentMethod {
	return o.payment
}

func (o *Order) ShippingMethod() ShippingMethod {
	return o.shippingMethod
}

// Pickup returns the stored pickup selection, or nil.
func (o *Order) Pickup() *PickupSelection {
	return o.pickup
}

// IsPickupDelivery reports whether the order ships to a locker or shop.
func (o *Order) IsPickupDelivery() bool {
	return o.shippingMethod.RequiresPickup()
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setShipping(shipping Address) error {
	if _, err := kernel.NewCountryCode(string(shipping.Country)); err != nil {
		return fmt.Errorf("shipping country: %w", err)
	}
	o.shipping = shipping
	return nil
}

func (o *Order) setTotal(total kernel.Amount) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("order total is invalid", fmt.Errorf("%s is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) setShippingMethod(m ShippingMethod) error {
	o.shippingMethod = m
	return nil
}
