package orderrepo

import (
	"time"

	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID             int64              `gorm:"primaryKey;autoIncrement:false"`
	Shipping       ShippingAddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	Billing        BillingContactDTO  `gorm:"embedded;embeddedPrefix:billing_"`
	Total          decimal.Decimal    `gorm:"type:numeric(14,2)"`
	PaymentMethod  string
	ShippingMethod string

	// PickupMetadata is the map widget's JSON document, NULL without selection.
	PickupMetadata *string `gorm:"type:text"`

	LabelFileName *string
	LabelURL      *string
	TrackingCode  *string
	ParcelID      *string
	UpdatedAt     time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ShippingAddressDTO struct {
	FirstName string
	LastName  string
	Company   string
	Address1  string
	Address2  string
	City      string
	Postcode  string
	Country   string `gorm:"size:2"`
}

type BillingContactDTO struct {
	Phone string
	Email string
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	shipping := o.Shipping()
	billing := o.Billing()

	dto := OrderDTO{
		ID: o.ID(),
		Shipping: ShippingAddressDTO{
			FirstName: shipping.FirstName,
			LastName:  shipping.LastName,
			Company:   shipping.Company,
			Address1:  shipping.Address1,
			Address2:  shipping.Address2,
			City:      shipping.City,
			Postcode:  shipping.Postcode,
			Country:   string(shipping.Country),
		},
		Billing: BillingContactDTO{
			Phone: billing.Phone,
			Email: billing.Email,
		},
		Total:          o.Total().Decimal(),
		PaymentMethod:  string(o.Payment()),
		ShippingMethod: string(o.ShippingMethod()),
	}

	if p := o.Pickup(); p != nil {
		raw, err := p.MarshalMetadata()
		if err != nil {
			return OrderDTO{}, err
		}
		meta := string(raw)
		dto.PickupMetadata = &meta
	}

	return dto, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	var raw []byte
	if dto.PickupMetadata != nil {
		raw = []byte(*dto.PickupMetadata)
	}
	pickup, err := order.ParsePickupSelection(raw)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewAmountFromString(dto.Total.String())
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		dto.ID,
		order.Address{
			FirstName: dto.Shipping.FirstName,
			LastName:  dto.Shipping.LastName,
			Company:   dto.Shipping.Company,
			Address1:  dto.Shipping.Address1,
			Address2:  dto.Shipping.Address2,
			City:      dto.Shipping.City,
			Postcode:  dto.Shipping.Postcode,
			Country:   kernel.CountryCode(dto.Shipping.Country),
		},
		order.Contact{
			Phone: dto.Billing.Phone,
			Email: dto.Billing.Email,
		},
		total,
		order.PaymentMethod(dto.PaymentMethod),
		order.ShippingMethod(dto.ShippingMethod),
		pickup,
	)
}
