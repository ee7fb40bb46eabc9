package eligibility

import (
	"parcellabel/internal/core/domain/model/kernel"
)

// InsuranceType selects the threshold table.
type InsuranceType string

const (
	Domestic InsuranceType = "domestic"
	Export   InsuranceType = "export"
)

// InsuranceTypeFor returns Domestic when origin and destination match.
func InsuranceTypeFor(origin, destination kernel.CountryCode) InsuranceType {
	if origin == destination {
		return Domestic
	}
	return Export
}

// Limits is an inclusive range of insurable order totals, in the origin's currency.
type Limits struct {
	Min kernel.Amount
	Max kernel.Amount
}

// Allows reports whether total lies within the limits, bounds included.
func (l Limits) Allows(total kernel.Amount) bool {
	return total.Between(l.Min, l.Max)
}

// Amounts are in the origin country's currency: CZK, EUR (HR, SI, SK), HUF, RON and RSD.
var insuranceLimits = map[InsuranceType]map[kernel.CountryCode]Limits{
	Domestic: {
		kernel.CzechRepublic: {Min: kernel.MustAmount("20000"), Max: kernel.MustAmount("100000")},
		kernel.Croatia:       {Min: kernel.MustAmount("165.9"), Max: kernel.MustAmount("1659.04")},
		kernel.Hungary:       {Min: kernel.MustAmount("50000"), Max: kernel.MustAmount("500000")},
		kernel.Romania:       {Min: kernel.MustAmount("2000"), Max: kernel.MustAmount("7000")},
		kernel.Slovenia:      {Min: kernel.MustAmount("200"), Max: kernel.MustAmount("2000")},
		kernel.Slovakia:      {Min: kernel.MustAmount("332"), Max: kernel.MustAmount("2655")},
		kernel.Serbia:        {Min: kernel.MustAmount("40000"), Max: kernel.MustAmount("200000")},
	},
	Export: {
		kernel.CzechRepublic: {Min: kernel.MustAmount("20000"), Max: kernel.MustAmount("100000")},
		kernel.Croatia:       {Min: kernel.MustAmount("165.91"), Max: kernel.MustAmount("663.61")},
		kernel.Hungary:       {Min: kernel.MustAmount("50000"), Max: kernel.MustAmount("200000")},
		kernel.Romania:       {Min: kernel.MustAmount("2000"), Max: kernel.MustAmount("7000")},
		kernel.Slovenia:      {Min: kernel.MustAmount("200"), Max: kernel.MustAmount("2000")},
		kernel.Slovakia:      {Min: kernel.MustAmount("332"), Max: kernel.MustAmount("1000")},
	},
}

// InsuranceLimits returns the limits for the origin country, or false when
// the carrier does not insure that combination.
func InsuranceLimits(t InsuranceType, origin kernel.CountryCode) (Limits, bool) {
	limits, ok := insuranceLimits[t][origin]
	return limits, ok
}
