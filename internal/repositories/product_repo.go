package repositories

import (
	"context"

	"loja/internal/models"
)

// ProductRepository defines data access for produtos.
type ProductRepository interface {
	List(ctx context.Context, opts ListOptions) (*models.ProductPage, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, data map[string]any) (*models.Product, error)
	Update(ctx context.Context, id int64, data map[string]any) (*models.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	FindWithLowStock(ctx context.Context, threshold int) ([]models.Product, error)
	UpdateStock(ctx context.Context, id int64, quantity int) (*models.Product, error)
}
