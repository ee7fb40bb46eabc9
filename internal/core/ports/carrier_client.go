package ports

import (
	"context"

	"parcellabel/internal/core/domain/model/shipment"
)

// CarrierClient submits label requests to the carrier. Implementations bound
// the call with their own timeout and never retry.
type CarrierClient interface {
	Submit(ctx context.Context, req shipment.ShipmentRequest) (shipment.CarrierResponse, error)
}
