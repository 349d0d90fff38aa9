package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"loja/internal/models"
)

// GORMProductRepository specializes the generic repository for the produtos
// table: fixed allow-list, search over nome, plus the stock helpers.
type GORMProductRepository struct {
	base *Repository[models.Product]
}

// Compile-time interface guard.
var _ ProductRepository = (*GORMProductRepository)(nil)

// NewGORMProductRepository creates a ProductRepository over the given handle.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		base: New[models.Product](db, Config{
			Table:        "produtos",
			Fields:       []string{"nome", "preco", "estoque"},
			SearchFields: []string{"nome"},
		}),
	}
}

// List returns a page of products reshaped into the resource-named envelope.
func (r *GORMProductRepository) List(ctx context.Context, opts ListOptions) (*models.ProductPage, error) {
	page, err := r.base.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &models.ProductPage{Products: page.Rows, Pagination: page.Pagination}, nil
}

func (r *GORMProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	return r.base.FindByID(ctx, id)
}

func (r *GORMProductRepository) Create(ctx context.Context, data map[string]any) (*models.Product, error) {
	return r.base.Create(ctx, data)
}

func (r *GORMProductRepository) Update(ctx context.Context, id int64, data map[string]any) (*models.Product, error) {
	return r.base.Update(ctx, id, data)
}

func (r *GORMProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.base.Delete(ctx, id)
}

func (r *GORMProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.base.Exists(ctx, id)
}

// FindWithLowStock returns products at or below the threshold, lowest stock
// first.
func (r *GORMProductRepository) FindWithLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	products := []models.Product{}
	err := r.base.db.WithContext(ctx).
		Raw("SELECT * FROM produtos WHERE estoque <= ? ORDER BY estoque ASC", threshold).
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low-stock products: %w", err)
	}
	return products, nil
}

// UpdateStock writes only the estoque column.
func (r *GORMProductRepository) UpdateStock(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	return r.base.Update(ctx, id, map[string]any{"estoque": quantity})
}
