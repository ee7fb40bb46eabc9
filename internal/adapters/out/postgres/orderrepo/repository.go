package orderrepo

import (
	"context"
	"errors"

	"parcellabel/internal/core/domain/model/order"
	"parcellabel/internal/core/domain/model/shipment"
	"parcellabel/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository stores orders and their label artifacts in the orders table.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save upserts the order fields the shop owns. Label and tracking columns are
// left untouched.
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(o)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"shipping_first_name", "shipping_last_name", "shipping_company",
			"shipping_address1", "shipping_address2", "shipping_city",
			"shipping_postcode", "shipping_country",
			"billing_phone", "billing_email",
			"total", "payment_method", "shipping_method", "pickup_metadata", "updated_at",
		}),
	}).Create(&dto).Error
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) SaveLabel(ctx context.Context, id int64, label shipment.LabelArtifact) error {
	return r.update(ctx, id, map[string]any{
		"label_file_name": label.FileName,
		"label_url":       label.URL,
	})
}

func (r *GormOrderRepository) SaveTracking(ctx context.Context, id int64, tracking shipment.TrackingRecord) error {
	return r.update(ctx, id, map[string]any{
		"tracking_code": tracking.TrackingCode,
		"parcel_id":     tracking.ParcelID,
	})
}

// update runs a single-row UPDATE so each artifact is stored atomically.
func (r *GormOrderRepository) update(ctx context.Context, id int64, columns map[string]any) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}
