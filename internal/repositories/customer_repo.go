package repositories

import (
	"context"

	"loja/internal/models"
)

// CustomerRepository defines data access for clientes.
type CustomerRepository interface {
	List(ctx context.Context, opts ListOptions) (*models.CustomerPage, error)
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	Create(ctx context.Context, data map[string]any) (*models.Customer, error)
	Update(ctx context.Context, id int64, data map[string]any) (*models.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error)
}
