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

// CustomerService handles business logic for clientes, in particular the
// email uniqueness contract: a pre-check gives the friendly Conflict error,
// while the storage engine's unique constraint remains the authoritative
// signal and is upgraded to Conflict when it fires on the write.
type CustomerService struct {
	repo   repositories.CustomerRepository
	events *events.Client // nil disables event publication
}

// NewCustomerService creates a CustomerService. Pass a nil events client to
// disable event publication.
func NewCustomerService(repo repositories.CustomerRepository, eventsClient *events.Client) *CustomerService {
	return &CustomerService{
		repo:   repo,
		events: eventsClient,
	}
}

// List returns a page of customers matching the validated query parameters.
func (s *CustomerService) List(ctx context.Context, params validators.ListParams) (*models.CustomerPage, error) {
	return s.repo.List(ctx, repositories.ListOptions{
		Page:   params.Page,
		Limit:  params.Limit,
		Search: params.Search,
	})
}

// Get returns the customer with the given id or a NotFound error.
func (s *CustomerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NotFound("customer not found")
	}
	return customer, nil
}

// Create validates and stores a new customer. The email must not be in use.
func (s *CustomerService) Create(ctx context.Context, in validators.CustomerCreateInput) (*models.Customer, error) {
	data, err := validators.ValidateCustomerCreate(in)
	if err != nil {
		return nil, err
	}

	email := data["email"].(string)
	inUse, err := s.repo.EmailExists(ctx, email, nil)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, apperrors.Conflict("email is already registered")
	}

	customer, err := s.repo.Create(ctx, data)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			// A concurrent create won the race; the constraint is authoritative.
			return nil, apperrors.Conflict("email is already registered")
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.publish(events.ActionCreated, customer)
	return customer, nil
}

// Update validates and applies a partial update. When the email changes it
// must not be in use by another customer.
func (s *CustomerService) Update(ctx context.Context, id int64, in validators.CustomerUpdateInput) (*models.Customer, error) {
	data, err := validators.ValidateCustomerUpdate(in)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("customer not found")
	}

	if email, ok := data["email"].(string); ok {
		inUse, err := s.repo.EmailExists(ctx, email, &id)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, apperrors.Conflict("email is already used by another customer")
		}
	}

	customer, err := s.repo.Update(ctx, id, data)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("email is already used by another customer")
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	if customer == nil {
		return nil, apperrors.NotFound("customer not found")
	}

	s.publish(events.ActionUpdated, customer)
	return customer, nil
}

// Delete removes a customer or fails with NotFound.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if !deleted {
		return apperrors.NotFound("customer not found")
	}

	s.publish(events.ActionRemoved, map[string]any{"id": id})
	return nil
}

// FindByEmail returns the customer registered under the given email.
func (s *CustomerService) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	email = validators.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.BadRequest("email is required")
	}

	customer, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NotFound("customer not found")
	}
	return customer, nil
}

// publish sends a customer lifecycle event; failures are logged and never
// propagate.
func (s *CustomerService) publish(action string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEntityEvent("cliente", action, payload); err != nil {
		log.Printf("Warning: failed to publish cliente.%s event: %v", action, err)
	}
}
