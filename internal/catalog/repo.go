package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ijilanmax/printing-shop-tracker/pkg/db/models"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Repository is the persistence surface for the product catalog and the
// orders placed against it.
type Repository interface {
	ListActiveProducts(ctx context.Context) ([]models.Product, error)
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	ListOrders(ctx context.Context) ([]models.CatalogOrder, error)
	CreateOrder(ctx context.Context, order *models.CatalogOrder) (*models.CatalogOrder, error)
}

type repository struct {
	db *gorm.DB
	tx txRunner
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB, tx txRunner) Repository {
	return &repository{db: db, tx: tx}
}

func (r *repository) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) ListOrders(ctx context.Context) ([]models.CatalogOrder, error) {
	var orders []models.CatalogOrder
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) CreateOrder(ctx context.Context, order *models.CatalogOrder) (*models.CatalogOrder, error) {
	err := r.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
