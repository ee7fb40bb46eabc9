package queries

import (
	"errors"
	"time"

	"parcellabel/internal/core/domain/model/order"
	"parcellabel/internal/pkg/errs"
	"parcellabel/internal/pkg/guard"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrGetShipmentInfoQueryIsNotConstructed = errors.New(
	"GetShipmentInfoQuery must be created via NewGetShipmentInfoQuery constructor",
)

// GetShipmentInfoQuery reads what is known about an order's shipment.
//
// Example:
//
//	query, err := NewGetShipmentInfoQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	info, err := handler.Handle(ctx, query)
type GetShipmentInfoQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetShipmentInfoQuery(orderID int64) (GetShipmentInfoQuery, error) {
	if err := validation.Validate(orderID, validation.Required, validation.Min(int64(1))); err != nil {
		return GetShipmentInfoQuery{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return GetShipmentInfoQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentInfoQueryIsNotConstructed)
}

func (q GetShipmentInfoQuery) OrderID() int64 {
	return q.orderID
}

// ShipmentInfo is the shipment view of one order. Empty strings mean the
// value was never recorded.
type ShipmentInfo struct {
	OrderID      int64                  `json:"order_id"`
	Pickup       *order.PickupSelection `json:"pickup,omitempty"`
	LabelURL     string                 `json:"label_url,omitempty"`
	TrackingCode string                 `json:"tracking_code,omitempty"`
	ParcelID     string                 `json:"parcel_id,omitempty"`
	TrackingURL  string                 `json:"tracking_url,omitempty"`
	LastRun      *RunSummary            `json:"last_run,omitempty"`
}

// RunSummary is the latest recorded label run of the order.
type RunSummary struct {
	RunID         string    `json:"run_id"`
	State         string    `json:"state"`
	FailureReason string    `json:"failure_reason,omitempty"`
	FinishedAt    time.Time `json:"finished_at"`
}
