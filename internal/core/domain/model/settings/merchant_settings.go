package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/pkg/errs"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"
)

// Source is a read-only key/value store of merchant settings.
type Source interface {
	GetSetting(ctx context.Context, key string) (value string, found bool, err error)
}

// StoreProfile is the shop's own address, used as the parcel pickup address.
type StoreProfile struct {
	Name       string
	Address1   string
	Address2   string
	City       string
	Postcode   string
	Country    kernel.CountryCode
	AdminEmail string
}

// MerchantSettings is the typed snapshot of everything the composer and the
// assembler need to know about the merchant.
type MerchantSettings struct {
	ClientID              int64
	Country               kernel.CountryCode
	ClientReferenceFormat string

	Service24H          bool
	ExpressDelivery     ExpressWindow
	ContactService      bool
	FlexibleDelivery    bool
	FlexibleDeliverySMS bool
	SMSService          bool
	SMSText             string
	SMSPreAdvice        bool
	AddresseeOnly       bool
	Insurance           bool

	PhoneNumber              string
	PrintPosition            int
	PrinterType              string
	Content                  string
	SenderIdentityCardNumber string

	Store StoreProfile
}

// Validate checks the snapshot against the carrier's constraints.
func (s MerchantSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ClientID, validation.Required, validation.Min(int64(1))),
		validation.Field(&s.Country, validation.Required, validation.In(lo.ToAnySlice(kernel.SupportedCountries())...)),
		validation.Field(&s.ClientReferenceFormat, validation.Required),
		validation.Field(&s.ExpressDelivery, validation.In(ExpressT09, ExpressT10, ExpressT12)),
		validation.Field(&s.SMSText, validation.Length(0, MaxSMSTextLength)),
		validation.Field(&s.PrintPosition, validation.Required, validation.Min(1)),
		validation.Field(&s.PrinterType, validation.Required),
		validation.Field(&s.Store),
	)
}

// Validate is called by MerchantSettings.Validate for the nested profile.
func (p StoreProfile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.AdminEmail, is.EmailFormat),
	)
}

// Load reads every known key from src, applies defaults and validates the
// result. Read errors and validation errors are joined.
func Load(ctx context.Context, src Source) (MerchantSettings, error) {
	r := reader{ctx: ctx, src: src}

	s := MerchantSettings{
		ClientID:              r.int64(KeyClientID, 0),
		Country:               r.country(KeyCountry),
		ClientReferenceFormat: r.string(KeyClientReferenceFormat, DefaultClientReferenceFormat),

		Service24H:          r.toggle(KeyService24H),
		ExpressDelivery:     ExpressWindow(r.string(KeyExpressDeliveryService, "")),
		ContactService:      r.toggle(KeyContactService),
		FlexibleDelivery:    r.toggle(KeyFlexibleDeliveryService),
		FlexibleDeliverySMS: r.toggle(KeyFlexibleDeliverySMS),
		SMSService:          r.toggle(KeySMSService),
		SMSText:             r.string(KeySMSServiceText, ""),
		SMSPreAdvice:        r.toggle(KeySMSPreAdviceService),
		AddresseeOnly:       r.toggle(KeyAddresseeOnlyService),
		Insurance:           r.toggle(KeyInsuranceService),

		PhoneNumber:              r.string(KeyPhoneNumber, ""),
		PrintPosition:            int(r.positiveInt64(KeyPrintPosition, DefaultPrintPosition)),
		PrinterType:              r.string(KeyTypeOfPrinter, DefaultTypeOfPrinter),
		Content:                  r.string(KeyContent, ""),
		SenderIdentityCardNumber: r.string(KeySenderIdentityCardNumber, ""),

		Store: StoreProfile{
			Name:       r.string(KeyStoreName, ""),
			Address1:   r.string(KeyStoreAddress, ""),
			Address2:   r.string(KeyStoreAddress2, ""),
			City:       r.string(KeyStoreCity, ""),
			Postcode:   r.string(KeyStorePostcode, ""),
			Country:    r.country(KeyStoreDefaultCountry),
			AdminEmail: r.string(KeyAdminEmail, ""),
		},
	}

	if err := errors.Join(r.errs...); err != nil {
		return MerchantSettings{}, err
	}
	if err := s.Validate(); err != nil {
		return MerchantSettings{}, errs.NewValueIsInvalidErrorWithCause("merchant settings", err)
	}
	return s, nil
}

// reader collects errors so Load can report every bad key at once.
type reader struct {
	ctx  context.Context
	src  Source
	errs []error
}

func (r *reader) raw(key string) (string, bool) {
	v, found, err := r.src.GetSetting(r.ctx, key)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("read setting %s: %w", key, err))
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, found && v != ""
}

func (r *reader) string(key, fallback string) string {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	return v
}

func (r *reader) toggle(key string) bool {
	v, _ := r.raw(key)
	return v == enabledValue
}

func (r *reader) int64(key string, fallback int64) int64 {
	v, ok := r.raw(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return n
}

// positiveInt64 treats values below 1 as unset.
func (r *reader) positiveInt64(key string, fallback int64) int64 {
	if n := r.int64(key, fallback); n >= 1 {
		return n
	}
	return fallback
}

func (r *reader) country(key string) kernel.CountryCode {
	v, ok := r.raw(key)
	if !ok {
		return ""
	}
	c, err := kernel.NewCountryCode(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return ""
	}
	return c
}
