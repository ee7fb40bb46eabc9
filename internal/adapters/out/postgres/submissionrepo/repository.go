package submissionrepo

import (
	"context"
	"time"

	"parcellabel/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GormSubmissionRepository appends label runs to label_submissions.
type GormSubmissionRepository struct {
	db *gorm.DB
}

func NewGormSubmissionRepository(db *gorm.DB) *GormSubmissionRepository {
	return &GormSubmissionRepository{db: db}
}

func (r *GormSubmissionRepository) Append(ctx context.Context, run *shipment.Run, finishedAt time.Time) error {
	dto := SubmissionDTO{
		RunID:      run.ID().Value(),
		OrderID:    run.OrderID(),
		State:      run.State().String(),
		StartedAt:  run.StartedAt().UTC(),
		FinishedAt: finishedAt.UTC(),
	}
	if reason := run.Reason(); reason != nil {
		msg := reason.Error()
		dto.FailureReason = &msg
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// CountByOrder returns how many runs were recorded for an order.
func (r *GormSubmissionRepository) CountByOrder(ctx context.Context, orderID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&SubmissionDTO{}).Where("order_id = ?", orderID).Count(&n).Error
	return n, err
}
