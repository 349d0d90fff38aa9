package repositories

import (
	"context"

	"gorm.io/gorm"

	"loja/internal/models"
)

// GORMCustomerRepository specializes the generic repository for the clientes
// table: fixed allow-list, search over nome and email, plus the email lookups
// used for uniqueness checks.
type GORMCustomerRepository struct {
	base *Repository[models.Customer]
}

// Compile-time interface guard.
var _ CustomerRepository = (*GORMCustomerRepository)(nil)

// NewGORMCustomerRepository creates a CustomerRepository over the given handle.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		base: New[models.Customer](db, Config{
			Table:        "clientes",
			Fields:       []string{"nome", "email"},
			SearchFields: []string{"nome", "email"},
		}),
	}
}

// List returns a page of customers reshaped into the resource-named envelope.
func (r *GORMCustomerRepository) List(ctx context.Context, opts ListOptions) (*models.CustomerPage, error) {
	page, err := r.base.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &models.CustomerPage{Customers: page.Rows, Pagination: page.Pagination}, nil
}

func (r *GORMCustomerRepository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	return r.base.FindByID(ctx, id)
}

func (r *GORMCustomerRepository) Create(ctx context.Context, data map[string]any) (*models.Customer, error) {
	return r.base.Create(ctx, data)
}

func (r *GORMCustomerRepository) Update(ctx context.Context, id int64, data map[string]any) (*models.Customer, error) {
	return r.base.Update(ctx, id, data)
}

func (r *GORMCustomerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.base.Delete(ctx, id)
}

func (r *GORMCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.base.Exists(ctx, id)
}

// FindByEmail returns the customer with the given email, or nil when absent.
func (r *GORMCustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.base.FindWhere(ctx, "email", email)
}

// EmailExists reports whether the email is already registered. With a non-nil
// excludeID the check answers "is this email used by another customer".
func (r *GORMCustomerRepository) EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error) {
	return r.base.ExistsWhere(ctx, "email", email, excludeID)
}
