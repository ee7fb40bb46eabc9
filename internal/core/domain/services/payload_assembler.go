package services

import (
	"strconv"
	"strings"

	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/core/domain/model/order"
	"parcellabel/internal/core/domain/model/settings"
	"parcellabel/internal/core/domain/model/shipment"
)

const orderIDToken = "{{order_id}}"

// PayloadAssembler builds the single-parcel label request of an order.
type PayloadAssembler struct{}

func NewPayloadAssembler() PayloadAssembler {
	return PayloadAssembler{}
}

// Assemble maps settings, order and the composed services onto the carrier
// request. It returns only order validation errors.
func (PayloadAssembler) Assemble(
	ms settings.MerchantSettings,
	o *order.Order,
	services []shipment.ServiceEntry,
) (shipment.ShipmentRequest, error) {
	if err := o.Validate(); err != nil {
		return shipment.ShipmentRequest{}, err
	}

	orderID := strconv.FormatInt(o.ID(), 10)
	shipping := o.Shipping()

	serviceList := make([]shipment.ServiceEntry, len(services))
	copy(serviceList, services)

	parcel := shipment.Parcel{
		ClientNumber:    ms.ClientID,
		ClientReference: strings.ReplaceAll(ms.ClientReferenceFormat, orderIDToken, orderID),
		Count:           1,
		PickupAddress:   pickupAddress(ms),
		DeliveryAddress: deliveryAddress(shipping, o.Billing()),
		ServiceList:     serviceList,
		Content:         shipping.Address2,
	}

	if shipping.Country == kernel.Serbia {
		parcel.Content = ms.Content
		parcel.SenderIdentityCardNumber = ms.SenderIdentityCardNumber
	}

	if o.Payment().IsCashOnDelivery() {
		total := o.Total()
		parcel.CODAmount = &total
		parcel.CODReference = orderID
	}

	return shipment.ShipmentRequest{
		ParcelList:      []shipment.Parcel{parcel},
		PrintPosition:   ms.PrintPosition,
		TypeOfPrinter:   ms.PrinterType,
		ShowPrintDialog: false,
	}, nil
}

func pickupAddress(ms settings.MerchantSettings) shipment.Address {
	store := ms.Store
	return shipment.Address{
		Name:           store.Name,
		Street:         store.Address1 + " " + store.Address2,
		City:           store.City,
		ZipCode:        store.Postcode,
		CountryIsoCode: string(store.Country),
		ContactName:    store.Name,
		ContactPhone:   ms.PhoneNumber,
		ContactEmail:   store.AdminEmail,
	}
}

func deliveryAddress(shipping order.Address, billing order.Contact) shipment.Address {
	return shipment.Address{
		Name:           shipping.RecipientName(),
		Street:         shipping.Address1,
		City:           shipping.City,
		ZipCode:        shipping.Postcode,
		CountryIsoCode: string(shipping.Country),
		ContactName:    shipping.FullName(),
		ContactPhone:   billing.Phone,
		ContactEmail:   billing.Email,
	}
}
