package services

import (
	"context"
	"fmt"
	"log"

	"loja/internal/apperrors"
	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/validators"
	"loja/pkg/events"
)

// ProductService handles business logic for produtos: validation, the
// price/stock business rules, and event publication.
type ProductService struct {
	repo   repositories.ProductRepository
	events *events.Client // nil disables event publication
}

// NewProductService creates a ProductService. Pass a nil events client to
// disable event publication.
func NewProductService(repo repositories.ProductRepository, eventsClient *events.Client) *ProductService {
	return &ProductService{
		repo:   repo,
		events: eventsClient,
	}
}

// List returns a page of products matching the validated query parameters.
func (s *ProductService) List(ctx context.Context, params validators.ListParams) (*models.ProductPage, error) {
	return s.repo.List(ctx, repositories.ListOptions{
		Page:   params.Page,
		Limit:  params.Limit,
		Search: params.Search,
	})
}

// Get returns the product with the given id or a NotFound error.
func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("product not found")
	}
	return product, nil
}

// Create validates, applies the product business rules, and stores a new
// product. The created record is read back from storage.
func (s *ProductService) Create(ctx context.Context, in validators.ProductCreateInput) (*models.Product, error) {
	data, err := validators.ValidateProductCreate(in)
	if err != nil {
		return nil, err
	}
	if err := applyProductRules(data); err != nil {
		return nil, err
	}

	product, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.publish(events.ActionCreated, product)
	return product, nil
}

// Update validates and applies a partial update to an existing product.
func (s *ProductService) Update(ctx context.Context, id int64, in validators.ProductUpdateInput) (*models.Product, error) {
	data, err := validators.ValidateProductUpdate(in)
	if err != nil {
		return nil, err
	}
	if err := applyProductRules(data); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("product not found")
	}

	product, err := s.repo.Update(ctx, id, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if product == nil {
		return nil, apperrors.NotFound("product not found")
	}

	s.publish(events.ActionUpdated, product)
	return product, nil
}

// Delete removes a product or fails with NotFound.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return apperrors.NotFound("product not found")
	}

	s.publish(events.ActionRemoved, map[string]any{"id": id})
	return nil
}

// FindWithLowStock returns products at or below the threshold, lowest first.
func (s *ProductService) FindWithLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	if threshold < 0 {
		return nil, apperrors.BadRequest("threshold must not be negative")
	}
	return s.repo.FindWithLowStock(ctx, threshold)
}

// UpdateStock writes a new stock level for the product. Negative levels are
// rejected before any write reaches storage.
func (s *ProductService) UpdateStock(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	if quantity < 0 {
		return nil, apperrors.BadRequest("stock must not be negative")
	}

	product, err := s.repo.UpdateStock(ctx, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	if product == nil {
		return nil, apperrors.NotFound("product not found")
	}

	s.publish(events.ActionUpdated, product)
	return product, nil
}

// CheckStockAvailability reports whether the product has at least quantity
// units in stock.
func (s *ProductService) CheckStockAvailability(ctx context.Context, id int64, quantity int) (bool, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return product.Stock >= quantity, nil
}

// applyProductRules re-checks the price/stock invariants at the business-rule
// layer (defense in depth beyond the validators) and normalizes the price.
func applyProductRules(data map[string]any) error {
	if price, ok := data["preco"].(float64); ok {
		if price < 0 {
			return apperrors.BadRequest("price must not be negative")
		}
		data["preco"] = validators.RoundPrice(price)
	}
	if stock, ok := data["estoque"].(int); ok && stock < 0 {
		return apperrors.BadRequest("stock must not be negative")
	}
	return nil
}

// publish sends a product lifecycle event; failures are logged and never
// propagate, the storage mutation already succeeded.
func (s *ProductService) publish(action string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEntityEvent("produto", action, payload); err != nil {
		log.Printf("Warning: failed to publish produto.%s event: %v", action, err)
	}
}
