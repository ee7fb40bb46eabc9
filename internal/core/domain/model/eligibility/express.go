package eligibility

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"parcellabel/internal/core/domain/model/settings"
)

//go:embed express-service.csv
var defaultExpressCSV string

const (
	colCountry = iota
	colZipcode
	colT12
	colT09
	colT10
	expressColumns
)

// supportedMarker flags a window as available in the express table.
const supportedMarker = "x"

type expressRow struct {
	country string
	zipcode string
	t12     bool
	t09     bool
	t10     bool
}

// ExpressTable is an immutable snapshot of the express availability table.
type ExpressTable struct {
	rows []expressRow
}

// ParseExpressTable reads a header row followed by
// "country,zipcode,T12,T09,T10" rows. Rows with fewer columns are skipped.
func ParseExpressTable(r io.Reader) (*ExpressTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return &ExpressTable{}, nil
		}
		return nil, fmt.Errorf("read express table header: %w", err)
	}

	table := &ExpressTable{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read express table: %w", err)
		}
		if len(record) < expressColumns {
			continue
		}
		table.rows = append(table.rows, expressRow{
			country: strings.TrimSpace(record[colCountry]),
			zipcode: strings.TrimSpace(record[colZipcode]),
			t12:     strings.TrimSpace(record[colT12]) == supportedMarker,
			t09:     strings.TrimSpace(record[colT09]) == supportedMarker,
			t10:     strings.TrimSpace(record[colT10]) == supportedMarker,
		})
	}

	return table, nil
}

// DefaultExpressTable is the table used until a carrier-provided file is
// loaded. It has no rows, so no postcode is express eligible.
func DefaultExpressTable() (*ExpressTable, error) {
	return ParseExpressTable(strings.NewReader(defaultExpressCSV))
}

// Len returns the number of usable rows.
func (t *ExpressTable) Len() int {
	return len(t.rows)
}

// Supports reports whether window is offered for (country, zipcode). The
// first exact row match decides; no match means false.
func (t *ExpressTable) Supports(country, zipcode string, window settings.ExpressWindow) bool {
	for _, row := range t.rows {
		if row.country != country || row.zipcode != zipcode {
			continue
		}
		switch window {
		case settings.ExpressT12:
			return row.t12
		case settings.ExpressT09:
			return row.t09
		case settings.ExpressT10:
			return row.t10
		default:
			return false
		}
	}
	return false
}

// ExpressRegistry hands out the current ExpressTable and lets a reload swap
// it without blocking readers.
type ExpressRegistry struct {
	current atomic.Pointer[ExpressTable]
}

// NewExpressRegistry starts with the given table.
func NewExpressRegistry(initial *ExpressTable) *ExpressRegistry {
	r := &ExpressRegistry{}
	if initial == nil {
		initial = &ExpressTable{}
	}
	r.current.Store(initial)
	return r
}

// Replace swaps in a new snapshot.
func (r *ExpressRegistry) Replace(t *ExpressTable) {
	if t == nil {
		return
	}
	r.current.Store(t)
}

// Table returns the current snapshot.
func (r *ExpressRegistry) Table() *ExpressTable {
	return r.current.Load()
}

// Supports delegates to the current snapshot.
func (r *ExpressRegistry) Supports(country, zipcode string, window settings.ExpressWindow) bool {
	return r.Table().Supports(country, zipcode, window)
}
