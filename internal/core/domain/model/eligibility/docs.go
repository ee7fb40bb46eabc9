// Package eligibility holds the static reference data that gates optional
// carrier services: insurance thresholds per origin country and the
// (country, zipcode) table of express delivery windows.
//
// All lookups fail closed: a missing row means "not eligible", never an error.
package eligibility
