package shipment

import "fmt"

// LabelFileName is the blob name of an order's label. Re-running the
// workflow overwrites the same name.
func LabelFileName(orderID int64) string {
	return fmt.Sprintf("shipping_label_%d.pdf", orderID)
}

// LabelArtifact references the stored label document of one order.
type LabelArtifact struct {
	OrderID  int64
	FileName string
	URL      string
}

// TrackingRecord is the tracking data stored on one order.
type TrackingRecord struct {
	OrderID      int64
	TrackingCode string
	ParcelID     string
}
