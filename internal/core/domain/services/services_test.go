package services_test

import (
	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/core/domain/model/order"
	"parcellabel/internal/core/domain/model/settings"
	"parcellabel/internal/core/domain/model/shipment"
)

// expressStub answers Supports from a fixed set of country/zipcode/window triples.
type expressStub struct {
	supported map[string]bool
	calls     int
}

func newExpressStub(triples ...string) *expressStub {
	s := &expressStub{supported: map[string]bool{}}
	for _, t := range triples {
		s.supported[t] = true
	}
	return s
}

func (s *expressStub) Supports(country, zipcode string, window settings.ExpressWindow) bool {
	s.calls++
	return s.supported[country+"/"+zipcode+"/"+string(window)]
}

func baseSettings() settings.MerchantSettings {
	return settings.MerchantSettings{
		ClientID:              100000001,
		Country:               kernel.Croatia,
		ClientReferenceFormat: settings.DefaultClientReferenceFormat,
		PhoneNumber:           "+38512345678",
		PrintPosition:         settings.DefaultPrintPosition,
		PrinterType:           settings.DefaultTypeOfPrinter,
		Content:               "Clothes",
		SMSText:               "Your parcel is on its way",
		Store: settings.StoreProfile{
			Name:       "Demo Shop",
			Address1:   "Vukovarska 1",
			Address2:   "Hall B",
			City:       "Zagreb",
			Postcode:   "10000",
			Country:    kernel.Croatia,
			AdminEmail: "shop@example.com",
		},
	}
}

type orderOption func(*orderParams)

type orderParams struct {
	id       int64
	shipping order.Address
	billing  order.Contact
	total    kernel.Amount
	payment  order.PaymentMethod
	method   order.ShippingMethod
	pickup   *order.PickupSelection
}

func withCountry(c kernel.CountryCode) orderOption {
	return func(p *orderParams) { p.shipping.Country = c }
}

func withPostcode(zip string) orderOption {
	return func(p *orderParams) { p.shipping.Postcode = zip }
}

func withTotal(total string) orderOption {
	return func(p *orderParams) { p.total = kernel.MustAmount(total) }
}

func withCompany(company string) orderOption {
	return func(p *orderParams) { p.shipping.Company = company }
}

func withPayment(m order.PaymentMethod) orderOption {
	return func(p *orderParams) { p.payment = m }
}

func withMethod(m order.ShippingMethod, pickup *order.PickupSelection) orderOption {
	return func(p *orderParams) {
		p.method = m
		p.pickup = pickup
	}
}

func newTestOrder(opts ...orderOption) *order.Order {
	p := orderParams{
		id: 42,
		shipping: order.Address{
			FirstName: "Ana",
			LastName:  "Horvat",
			Address1:  "Ilica 10",
			Address2:  "2nd floor",
			City:      "Zagreb",
			Postcode:  "10000",
			Country:   kernel.Croatia,
		},
		billing: order.Contact{Phone: "+385911234567", Email: "ana@example.com"},
		total:   kernel.MustAmount("250.00"),
		payment: "bacs",
		method:  order.AddressDelivery,
	}
	for _, opt := range opts {
		opt(&p)
	}

	o, err := order.NewOrder(p.id, p.shipping, p.billing, p.total, p.payment, p.method, p.pickup)
	if err != nil {
		panic(err)
	}
	return o
}

func codes(entries []shipment.ServiceEntry) []shipment.ServiceCode {
	out := make([]shipment.ServiceCode, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Code)
	}
	return out
}

func find(entries []shipment.ServiceEntry, code shipment.ServiceCode) (shipment.ServiceEntry, bool) {
	for _, e := range entries {
		if e.Code == code {
			return e, true
		}
	}
	return shipment.ServiceEntry{}, false
}
