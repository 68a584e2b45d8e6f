package orderrepo

import (
	"context"
	"errors"
	"time"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items, customizations, and status
// history to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Child rows are replaced so
// they always match the aggregate exactly.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":         dto.Status,
		"payment_method": dto.PaymentMethod,
		"total":          dto.Total,
		"customer_id":    dto.CustomerID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceChildren(db, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceChildren deletes the order's child rows and re-creates them from the
// DTO. Ingredient rows go first so line items are never orphan parents.
func (r *GormOrderRepository) replaceChildren(db *gorm.DB, dto OrderDTO) error {
	if err := r.removeChildren(db, dto.ID); err != nil {
		return err
	}

	if len(dto.LineItems) > 0 {
		if err := db.Create(&dto.LineItems).Error; err != nil {
			return err
		}
	}
	if len(dto.History) > 0 {
		if err := db.Create(&dto.History).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order by ID with all of its child rows.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems.Ingredients").
		Preload("LineItems").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at, id")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes an order together with all of its child rows.
// Deletion order is customizations, line items, history, then the order,
// so a failure partway through never leaves orphaned children.
func (r *GormOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := r.removeChildren(db, id.Bytes()); err != nil {
		return err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	return nil
}

func (r *GormOrderRepository) removeChildren(db *gorm.DB, orderID any) error {
	lineItemIDs := db.Session(&gorm.Session{NewDB: true}).
		Model(&LineItemDTO{}).
		Select("id").
		Where("order_id = ?", orderID)

	if err := db.Where("line_item_id IN (?)", lineItemIDs).Delete(&LineItemIngredientDTO{}).Error; err != nil {
		return err
	}
	if err := db.Delete(&LineItemDTO{}, "order_id = ?", orderID).Error; err != nil {
		return err
	}
	return db.Delete(&StatusChangeDTO{}, "order_id = ?", orderID).Error
}

// GetAllPendingBefore retrieves pending orders created before the cutoff,
// with all child rows loaded so they can be transitioned and updated.
func (r *GormOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems.Ingredients").
		Preload("LineItems").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at, id")
		}).
		Find(&dtos, "status = ? AND created_at < ?", int(order.Pending), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
