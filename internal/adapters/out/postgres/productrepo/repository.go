package productrepo

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetActiveByIDsForUpdate reads the active products in ids with SELECT ... FOR UPDATE.
// Rows are locked in id order so concurrent orders over the same products cannot deadlock.
func (r *GormProductRepository) GetActiveByIDsForUpdate(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ? AND is_active = ?", raw, true).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// UpdateStock writes the stock column of each product.
func (r *GormProductRepository) UpdateStock(ctx context.Context, products []*product.Product) error {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}

		result := r.db.WithContext(ctx).
			Model(&ProductDTO{}).
			Where("id = ?", p.ID().Bytes()).
			Update("stock", p.Stock())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("product", p.ID().String())
		}

		r.tracker.TrackAggregate(p.ID(), p)
	}

	return nil
}
