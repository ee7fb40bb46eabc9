package shipment

import "errors"

// ErrCarrierRejected is wrapped by carrier clients when the carrier answered
// but refused to print the label.
var ErrCarrierRejected = errors.New("carrier rejected the shipment")

// ErrCarrierUnreachable is wrapped when no answer was received, including
// timeouts.
var ErrCarrierUnreachable = errors.New("carrier is unreachable")

// TrackingEntry pairs the public tracking number with the carrier's parcel id.
type TrackingEntry struct {
	ParcelNumber string
	ParcelID     string
}

// CarrierResponse is a successful PrintLabels answer. Labels and Tracking are
// independently optional.
type CarrierResponse struct {
	Labels   []byte
	Tracking []TrackingEntry
}

// HasLabel reports whether label bytes were returned.
func (r CarrierResponse) HasLabel() bool {
	return len(r.Labels) > 0
}

// FirstTracking returns the tracking data of the first parcel.
func (r CarrierResponse) FirstTracking() (TrackingEntry, bool) {
	if len(r.Tracking) == 0 {
		return TrackingEntry{}, false
	}
	return r.Tracking[0], true
}
