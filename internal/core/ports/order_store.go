package ports

import (
	"context"

	"parcellabel/internal/core/domain/model/order"
	"parcellabel/internal/core/domain/model/shipment"
)

// OrderStore reads orders and records label artifacts against them.
// Each save is an atomic update of one order; repeating it replaces the
// previously stored values.
type OrderStore interface {
	// Get returns errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// SaveLabel stores the label document reference.
	SaveLabel(ctx context.Context, id int64, label shipment.LabelArtifact) error

	// SaveTracking stores the tracking code and parcel id.
	SaveTracking(ctx context.Context, id int64, tracking shipment.TrackingRecord) error
}
