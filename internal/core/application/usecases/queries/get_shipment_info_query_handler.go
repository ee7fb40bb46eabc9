package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"parcellabel/internal/core/domain/model/order"
	"parcellabel/internal/core/domain/model/settings"
	"parcellabel/internal/pkg/errs"

	"gorm.io/gorm"
)

const trackingURLFormat = "https://gls-group.eu/%s/en/parcel-tracking/?match=%s"

// TrackingURL is the carrier's public tracking page for code, localized by
// the merchant's country as stored in settings.
func TrackingURL(country, code string) string {
	return fmt.Sprintf(trackingURLFormat, country, url.QueryEscape(code))
}

// GetShipmentInfoQueryHandler reads the shipment view from the orders,
// settings and label_submissions tables.
type GetShipmentInfoQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentInfoQueryHandler(db *gorm.DB) GetShipmentInfoQueryHandler {
	return GetShipmentInfoQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order.
func (h GetShipmentInfoQueryHandler) Handle(ctx context.Context, query GetShipmentInfoQuery) (ShipmentInfo, error) {
	if err := query.Validate(); err != nil {
		return ShipmentInfo{}, err
	}

	var (
		pickupMetadata sql.NullString
		labelURL       sql.NullString
		trackingCode   sql.NullString
		parcelID       sql.NullString
		country        sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.pickup_metadata,
			o.label_url,
			o.tracking_code,
			o.parcel_id,
			(SELECT s.value FROM settings s WHERE s.key = ?) AS country
		FROM orders o
		WHERE o.id = ?
	`, settings.KeyCountry, query.OrderID()).Row()

	err := row.Scan(&pickupMetadata, &labelURL, &trackingCode, &parcelID, &country)
	if errors.Is(err, sql.ErrNoRows) {
		return ShipmentInfo{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return ShipmentInfo{}, err
	}

	pickup, err := order.ParsePickupSelection([]byte(pickupMetadata.String))
	if err != nil {
		return ShipmentInfo{}, err
	}

	info := ShipmentInfo{
		OrderID:      query.OrderID(),
		Pickup:       pickup,
		LabelURL:     labelURL.String,
		TrackingCode: trackingCode.String,
		ParcelID:     parcelID.String,
	}
	if info.TrackingCode != "" && country.String != "" {
		info.TrackingURL = TrackingURL(country.String, info.TrackingCode)
	}

	info.LastRun, err = h.lastRun(ctx, query.OrderID())
	if err != nil {
		return ShipmentInfo{}, err
	}

	return info, nil
}

func (h GetShipmentInfoQueryHandler) lastRun(ctx context.Context, orderID int64) (*RunSummary, error) {
	var (
		summary RunSummary
		reason  sql.NullString
		at      time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			run_id::text,
			state,
			failure_reason,
			finished_at
		FROM label_submissions
		WHERE order_id = ?
		ORDER BY finished_at DESC
		LIMIT 1
	`, orderID).Row()

	err := row.Scan(&summary.RunID, &summary.State, &reason, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	summary.FailureReason = reason.String
	summary.FinishedAt = at.UTC()
	return &summary, nil
}
