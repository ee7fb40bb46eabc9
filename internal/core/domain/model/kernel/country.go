package kernel

import (
	"fmt"
	"strings"

	"parcellabel/internal/pkg/errs"
)

// CountryCode is an upper-case ISO 3166-1 alpha-2 code.
type CountryCode string

const (
	Croatia       CountryCode = "HR"
	CzechRepublic CountryCode = "CZ"
	Hungary       CountryCode = "HU"
	Romania       CountryCode = "RO"
	Slovenia      CountryCode = "SI"
	Slovakia      CountryCode = "SK"
	Serbia        CountryCode = "RS"
)

// SupportedCountries lists the countries the carrier operates a label API in.
func SupportedCountries() []CountryCode {
	return []CountryCode{Croatia, CzechRepublic, Hungary, Romania, Slovenia, Slovakia, Serbia}
}

// NewCountryCode normalizes s to upper case and checks it is two letters.
// A "CC:STATE" suffix, as store profiles carry it, is stripped.
func NewCountryCode(s string) (CountryCode, error) {
	code, _, _ := strings.Cut(strings.TrimSpace(s), ":")
	code = strings.ToUpper(code)
	if len(code) != 2 || !isASCIILetters(code) {
		return "", errs.NewValueIsInvalidErrorWithCause("country code", fmt.Errorf("%q is not an ISO alpha-2 code", s))
	}
	return CountryCode(code), nil
}

// IsSupported reports whether c is one of SupportedCountries.
func (c CountryCode) IsSupported() bool {
	for _, s := range SupportedCountries() {
		if s == c {
			return true
		}
	}
	return false
}

// Lower returns the lower-case form used in carrier host names and URLs.
func (c CountryCode) Lower() string {
	return strings.ToLower(string(c))
}

func (c CountryCode) String() string {
	return string(c)
}

func isASCIILetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
