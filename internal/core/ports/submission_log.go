package ports

import (
	"context"
	"time"

	"parcellabel/internal/core/domain/model/shipment"
)

// SubmissionLog keeps an append-only history of label runs.
type SubmissionLog interface {
	Append(ctx context.Context, run *shipment.Run, finishedAt time.Time) error
}
