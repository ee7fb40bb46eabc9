package order

import (
	"strings"

	"parcellabel/internal/core/domain/model/kernel"
)

// Address is the shipping address of an order.
type Address struct {
	FirstName string
	LastName  string
	Company   string
	Address1  string
	Address2  string
	City      string
	Postcode  string
	Country   kernel.CountryCode
}

// FullName joins first and last name with a single space, the way the
// carrier expects contact names.
func (a Address) FullName() string {
	return a.FirstName + " " + a.LastName
}

// RecipientName prefers the company name over the person's name.
func (a Address) RecipientName() string {
	if strings.TrimSpace(a.Company) != "" {
		return a.Company
	}
	return a.FullName()
}

// Contact is the billing contact used for carrier notifications.
type Contact struct {
	Phone string
	Email string
}
