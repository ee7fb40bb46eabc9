// Package kernel holds the value objects shared by every domain package:
// UUID for run identifiers, CountryCode for origin and destination countries,
// and Amount for order totals and insurance thresholds.
package kernel
