package shipment

import (
	"parcellabel/internal/core/domain/model/kernel"
)

// Address is a pickup or delivery address block of the carrier request.
type Address struct {
	Name           string `json:"Name"`
	Street         string `json:"Street"`
	City           string `json:"City"`
	ZipCode        string `json:"ZipCode"`
	CountryIsoCode string `json:"CountryIsoCode"`
	ContactName    string `json:"ContactName"`
	ContactPhone   string `json:"ContactPhone"`
	ContactEmail   string `json:"ContactEmail"`
}

// Parcel describes the single parcel of an order.
type Parcel struct {
	ClientNumber    int64          `json:"ClientNumber"`
	ClientReference string         `json:"ClientReference"`
	Count           int            `json:"Count"`
	PickupAddress   Address        `json:"PickupAddress"`
	DeliveryAddress Address        `json:"DeliveryAddress"`
	ServiceList     []ServiceEntry `json:"ServiceList"`
	Content         string         `json:"Content"`

	// SenderIdentityCardNumber is only sent where customs require it.
	SenderIdentityCardNumber string `json:"SenderIdentityCardNumber,omitempty"`

	CODAmount    *kernel.Amount `json:"CODAmount,omitempty"`
	CODReference string         `json:"CODReference,omitempty"`
}

// ShipmentRequest is the PrintLabels submission envelope.
type ShipmentRequest struct {
	ParcelList      []Parcel `json:"ParcelList"`
	PrintPosition   int      `json:"PrintPosition"`
	TypeOfPrinter   string   `json:"TypeOfPrinter"`
	ShowPrintDialog bool     `json:"ShowPrintDialog"`
}
