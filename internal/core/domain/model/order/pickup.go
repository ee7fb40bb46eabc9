package order

import (
	"parcellabel/internal/pkg/errs"

	"github.com/goccy/go-json"
)

// PickupSelection is the locker or shop picked on the checkout map.
type PickupSelection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// pickupMetadata mirrors the document the map widget stores on the order.
type pickupMetadata struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact struct {
		Address     string `json:"address"`
		City        string `json:"city"`
		PostalCode  string `json:"postalCode"`
		CountryCode string `json:"countryCode"`
	} `json:"contact"`
}

// ParsePickupSelection decodes the pickup metadata slot of an order. An empty
// slot yields (nil, nil).
func ParsePickupSelection(raw []byte) (*PickupSelection, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var meta pickupMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("pickup metadata", err)
	}

	return &PickupSelection{
		ID:       meta.ID,
		Name:     meta.Name,
		Street:   meta.Contact.Address,
		City:     meta.Contact.City,
		Postcode: meta.Contact.PostalCode,
		Country:  meta.Contact.CountryCode,
	}, nil
}

// MarshalMetadata encodes p in the map widget's document shape.
func (p PickupSelection) MarshalMetadata() ([]byte, error) {
	var meta pickupMetadata
	meta.ID = p.ID
	meta.Name = p.Name
	meta.Contact.Address = p.Street
	meta.Contact.City = p.City
	meta.Contact.PostalCode = p.Postcode
	meta.Contact.CountryCode = p.Country
	return json.Marshal(meta)
}
