package commands

import (
	"parcellabel/internal/core/domain/model/kernel"
	"parcellabel/internal/core/domain/model/shipment"
)

const noArtifactsWarning = "carrier returned neither a label nor tracking data"

// GenerateLabelResult describes a run that reached Persisted. Label and
// Tracking are nil when the carrier did not return them or storing them
// failed; the matching error field then carries the storage failure.
type GenerateLabelResult struct {
	RunID    kernel.UUID
	State    shipment.State
	Label    *shipment.LabelArtifact
	Tracking *shipment.TrackingRecord

	LabelErr    error
	TrackingErr error
}

// Warnings lists the problems that did not fail the run.
func (r GenerateLabelResult) Warnings() []string {
	warnings := make([]string, 0, 2)
	if r.LabelErr != nil {
		warnings = append(warnings, "label not stored: "+r.LabelErr.Error())
	}
	if r.TrackingErr != nil {
		warnings = append(warnings, "tracking not stored: "+r.TrackingErr.Error())
	}
	if r.Label == nil && r.Tracking == nil && r.LabelErr == nil && r.TrackingErr == nil {
		warnings = append(warnings, noArtifactsWarning)
	}
	return warnings
}
