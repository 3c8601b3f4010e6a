package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/Ijilanmax/printing-shop-tracker/internal/tracker"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/db/models"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Archive is the durable mirror of the in-memory order book. Load hydrates
// the book at startup; Replace writes the full book back after a mutation.
type Archive interface {
	Load(ctx context.Context) ([]tracker.Order, error)
	Replace(ctx context.Context, orders []tracker.Order) error
}

type repository struct {
	db *gorm.DB
	tx txRunner
}

// NewRepository builds an order archive bound to the provided DB.
func NewRepository(db *gorm.DB, tx txRunner) Archive {
	return &repository{db: db, tx: tx}
}

func (r *repository) Load(ctx context.Context) ([]tracker.Order, error) {
	var rows []models.ArchivedOrder
	err := r.db.WithContext(ctx).
		Order("date_received DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]tracker.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, orderFromModel(row))
	}
	return orders, nil
}

func (r *repository) Replace(ctx context.Context, orders []tracker.Order) error {
	rows := make([]models.ArchivedOrder, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, modelFromOrder(order))
	}

	return r.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.ArchivedOrder{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, 200).Error
	})
}

func orderFromModel(row models.ArchivedOrder) tracker.Order {
	return tracker.Order{
		ID:           row.ID,
		CustomerName: row.CustomerName,
		Phone:        row.Phone,
		Details:      row.Details,
		DateReceived: row.DateReceived,
		Completed:    row.Completed,
		PickedUp:     row.PickedUp,
		CompletedAt:  row.CompletedAt,
		PickedAt:     row.PickedAt,
	}
}

func modelFromOrder(order tracker.Order) models.ArchivedOrder {
	return models.ArchivedOrder{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Details:      order.Details,
		DateReceived: order.DateReceived,
		Completed:    order.Completed,
		PickedUp:     order.PickedUp,
		CompletedAt:  order.CompletedAt,
		PickedAt:     order.PickedAt,
	}
}
