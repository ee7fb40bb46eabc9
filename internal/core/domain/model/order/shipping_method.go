package order

// ShippingMethod is the checkout method the customer picked. Any method other
// than the pickup ones, including none at all, ships to the address.
type ShippingMethod string

const (
	// AddressDelivery ships to the customer's address.
	AddressDelivery ShippingMethod = "gls_shipping_method"

	// ParcelLockerDelivery ships to a carrier locker chosen on the map.
	ParcelLockerDelivery ShippingMethod = "gls_shipping_method_parcel_locker"

	// ParcelShopDelivery ships to a carrier partner shop chosen on the map.
	ParcelShopDelivery ShippingMethod = "gls_shipping_method_parcel_shop"
)

// RequiresPickup reports whether the method delivers to a pickup point.
func (m ShippingMethod) RequiresPickup() bool {
	return m == ParcelLockerDelivery || m == ParcelShopDelivery
}

// PaymentMethod is the shop's payment gateway id.
type PaymentMethod string

// CashOnDelivery is collected by the carrier at the door.
const CashOnDelivery PaymentMethod = "cod"

func (p PaymentMethod) IsCashOnDelivery() bool {
	return p == CashOnDelivery
}
