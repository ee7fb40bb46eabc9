package glsapi

import (
	"fmt"
	"time"

	"parcellabel/internal/core/domain/model/kernel"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"
)

// Mode selects the production or the test environment of the carrier.
type Mode string

const (
	Production Mode = "production"
	Sandbox    Mode = "sandbox"
)

const (
	DefaultTimeout       = 30 * time.Second
	DefaultWebshopEngine = "parcellabel"

	printLabelsPath = "/ParcelService.svc/json/PrintLabels"
)

// Config is the account and endpoint of the client.
type Config struct {
	Username      string
	Password      string
	Country       kernel.CountryCode
	Mode          Mode
	WebshopEngine string
	Timeout       time.Duration

	// BaseURL replaces the endpoint derived from Country and Mode.
	BaseURL string
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
		validation.Field(&c.Country, validation.Required, validation.In(lo.ToAnySlice(kernel.SupportedCountries())...)),
		validation.Field(&c.Mode, validation.Required, validation.In(Production, Sandbox)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&c.BaseURL, is.URL),
	)
}

// Endpoint returns the PrintLabels URL for a country and mode, e.g.
// https://api.mygls.hr/ParcelService.svc/json/PrintLabels.
func Endpoint(country kernel.CountryCode, mode Mode) string {
	host := "api.mygls." + country.Lower()
	if mode == Sandbox {
		host = "api.test.mygls." + country.Lower()
	}
	return fmt.Sprintf("https://%s%s", host, printLabelsPath)
}

func (c Config) endpoint() string {
	if c.BaseURL != "" {
		return c.BaseURL + printLabelsPath
	}
	return Endpoint(c.Country, c.Mode)
}
