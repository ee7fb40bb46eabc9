package submissionrepo

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionDTO struct {
	RunID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       int64     `gorm:"index"`
	State         string    `gorm:"size:16"`
	FailureReason *string   `gorm:"type:text"`
	StartedAt     time.Time
	FinishedAt    time.Time
}

func (SubmissionDTO) TableName() string {
	return "label_submissions"
}
