// Package validators holds the stateless input validation and normalization
// layer. Every malformed client value is rejected here, before any repository
// call; the outputs are normalized field bags ready for the repository
// allow-list intersection.
//
// Emails are trimmed and lowercased on validation, so storage, comparison,
// and the uniqueness pre-check all operate on the folded form.
package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"loja/internal/apperrors"
)

var validate = validator.New()

// ProductCreateInput is the request payload for creating a product.
type ProductCreateInput struct {
	Name  string   `json:"nome" validate:"required,min=2"`
	Price *float64 `json:"preco" validate:"required,gt=0"`
	Stock *int     `json:"estoque" validate:"omitempty,gte=0"`
}

// ProductUpdateInput is the request payload for a partial product update.
type ProductUpdateInput struct {
	Name  *string  `json:"nome" validate:"omitempty,min=2"`
	Price *float64 `json:"preco" validate:"omitempty,gt=0"`
	Stock *int     `json:"estoque" validate:"omitempty,gte=0"`
}

// CustomerCreateInput is the request payload for creating a customer.
type CustomerCreateInput struct {
	Name  string `json:"nome" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

// CustomerUpdateInput is the request payload for a partial customer update.
type CustomerUpdateInput struct {
	Name  *string `json:"nome" validate:"omitempty,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ListParams are validated pagination and search parameters.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// RoundPrice normalizes a price to 2 decimal places (half-up).
func RoundPrice(price float64) float64 {
	rounded, _ := decimal.NewFromFloat(price).Round(2).Float64()
	return rounded
}

// ValidateProductCreate checks and normalizes a product creation payload.
// Stock defaults to 0 when omitted; price is rounded to 2 decimals.
func ValidateProductCreate(in ProductCreateInput) (map[string]any, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	return map[string]any{
		"nome":    in.Name,
		"preco":   RoundPrice(*in.Price),
		"estoque": stock,
	}, nil
}

// ValidateProductUpdate checks and normalizes a partial product update.
// At least one updatable field must be present.
func ValidateProductUpdate(in ProductUpdateInput) (map[string]any, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	data := map[string]any{}
	if in.Name != nil {
		data["nome"] = *in.Name
	}
	if in.Price != nil {
		data["preco"] = RoundPrice(*in.Price)
	}
	if in.Stock != nil {
		data["estoque"] = *in.Stock
	}
	if len(data) == 0 {
		return nil, apperrors.Validation("at least one field must be provided")
	}
	return data, nil
}

// ValidateCustomerCreate checks and normalizes a customer creation payload.
func ValidateCustomerCreate(in CustomerCreateInput) (map[string]any, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	return map[string]any{
		"nome":  in.Name,
		"email": in.Email,
	}, nil
}

// ValidateCustomerUpdate checks and normalizes a partial customer update.
func ValidateCustomerUpdate(in CustomerUpdateInput) (map[string]any, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if in.Email != nil {
		folded := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &folded
	}
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	data := map[string]any{}
	if in.Name != nil {
		data["nome"] = *in.Name
	}
	if in.Email != nil {
		data["email"] = *in.Email
	}
	if len(data) == 0 {
		return nil, apperrors.Validation("at least one field must be provided")
	}
	return data, nil
}

// NormalizeEmail folds an email the same way the customer validators do.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseID parses a path parameter into a positive integer id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.Validation("id must be a positive integer")
	}
	return id, nil
}

// ParseListParams validates pagination query parameters: page >= 1
// (default 1), limit in [1,100] (default 10), search trimmed.
func ParseListParams(page, limit, search string) (ListParams, error) {
	params := ListParams{Page: 1, Limit: 10, Search: strings.TrimSpace(search)}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return ListParams{}, apperrors.Validation("page must be an integer greater than or equal to 1")
		}
		params.Page = n
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > 100 {
			return ListParams{}, apperrors.Validation("limit must be an integer between 1 and 100")
		}
		params.Limit = n
	}
	return params, nil
}

// ParseThreshold parses the low-stock threshold query parameter
// (default 5, must not be negative).
func ParseThreshold(raw string) (int, error) {
	if raw == "" {
		return 5, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperrors.Validation("limite must be a non-negative integer")
	}
	return n, nil
}

// ParseQuantity parses a stock quantity value (must not be negative).
func ParseQuantity(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperrors.Validation("quantidade must be a non-negative integer")
	}
	return n, nil
}

// validationError converts validator/v10 errors into a single domain
// validation error with a readable message for the first failing field.
func validationError(err error) error {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		return apperrors.Validation(fieldMessage(fieldErrs[0]))
	}
	return apperrors.Validation("invalid request payload")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
	case "email":
		return "email must be a valid email address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
