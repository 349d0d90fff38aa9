// Package repositories implements data access for produtos and clientes on
// top of a single generic, table-agnostic repository. The generic repository
// builds parameterized SQL from its configuration (table name, writable field
// allow-list, search fields); the per-resource repositories only supply
// configuration and reshape results.
package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"loja/internal/models"
)

// Config parameterizes a Repository for one table.
type Config struct {
	Table          string   // table name
	Fields         []string // writable column allow-list, in insert order
	SearchFields   []string // default columns matched by free-text search
	DefaultOrderBy string   // default sort column (falls back to data_criacao)
}

// ListOptions controls filtering, sorting, and pagination for List.
type ListOptions struct {
	Page           int      // 1-based page number (default 1)
	Limit          int      // rows per page (default 10; clamped upstream by validators)
	Search         string   // free-text term, substring-matched
	SearchFields   []string // columns to match; empty disables search
	OrderBy        string   // sort column (validated against the table's columns)
	OrderDirection string   // ASC or DESC (default DESC)
}

// Page bundles one page of rows with its pagination metadata.
type Page[T any] struct {
	Rows       []T
	Pagination models.Pagination
}

// Repository provides table-agnostic CRUD plus filtered, paginated listing.
// It holds the shared storage handle by value; there is no hidden state.
type Repository[T any] struct {
	db  *gorm.DB
	cfg Config
}

// New creates a Repository for the given table configuration.
func New[T any](db *gorm.DB, cfg Config) *Repository[T] {
	if cfg.DefaultOrderBy == "" {
		cfg.DefaultOrderBy = "data_criacao"
	}
	return &Repository[T]{db: db, cfg: cfg}
}

// columnAllowed reports whether name is a known column of the table: the
// writable allow-list plus the id and creation-timestamp columns. Identifiers
// interpolated into SQL text must pass this check.
func (r *Repository[T]) columnAllowed(name string) bool {
	if name == "id" || name == "data_criacao" {
		return true
	}
	for _, f := range r.cfg.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// buildSearchClause returns the LIKE disjunction and its arguments for the
// given term, or an empty clause when search is disabled.
func (r *Repository[T]) buildSearchClause(search string, searchFields []string) (string, []any) {
	term := strings.TrimSpace(search)
	if term == "" || len(searchFields) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(searchFields))
	args := make([]any, 0, len(searchFields))
	for _, field := range searchFields {
		if !r.columnAllowed(field) {
			continue
		}
		conditions = append(conditions, field+" LIKE ?")
		args = append(args, "%"+term+"%")
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return "(" + strings.Join(conditions, " OR ") + ")", args
}

// List returns one page of rows plus pagination metadata. The count query and
// the data query share the identical WHERE clause and arguments, so the two
// results are consistent for a given snapshot; no transaction wraps the pair.
func (r *Repository[T]) List(ctx context.Context, opts ListOptions) (*Page[T], error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	searchFields := opts.SearchFields
	if len(searchFields) == 0 {
		searchFields = r.cfg.SearchFields
	}

	orderBy := r.cfg.DefaultOrderBy
	if opts.OrderBy != "" && r.columnAllowed(opts.OrderBy) {
		orderBy = opts.OrderBy
	}
	orderDir := "DESC"
	if strings.EqualFold(opts.OrderDirection, "ASC") {
		orderDir = "ASC"
	}

	where, args := r.buildSearchClause(opts.Search, searchFields)

	countSQL := "SELECT COUNT(*) FROM " + r.cfg.Table
	dataSQL := "SELECT * FROM " + r.cfg.Table
	if where != "" {
		countSQL += " WHERE " + where
		dataSQL += " WHERE " + where
	}
	dataSQL += fmt.Sprintf(" ORDER BY %s %s LIMIT ? OFFSET ?", orderBy, orderDir)

	var total int
	if err := r.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", r.cfg.Table, err)
	}

	queryArgs := append(append([]any{}, args...), limit, offset)
	rows := []T{}
	if err := r.db.WithContext(ctx).Raw(dataSQL, queryArgs...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.cfg.Table, err)
	}

	totalPages := (total + limit - 1) / limit
	return &Page[T]{
		Rows: rows,
		Pagination: models.Pagination{
			CurrentPage: page,
			PerPage:     limit,
			TotalItems:  total,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	}, nil
}

// FindByID returns the row with the given primary key, or nil when absent.
// A miss is not an error.
func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var row T
	result := r.db.WithContext(ctx).
		Raw("SELECT * FROM "+r.cfg.Table+" WHERE id = ? LIMIT 1", id).
		Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find %s by id: %w", r.cfg.Table, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// FindWhere returns a single row matching field = value, or nil when absent.
func (r *Repository[T]) FindWhere(ctx context.Context, field string, value any) (*T, error) {
	if !r.columnAllowed(field) {
		return nil, fmt.Errorf("unknown column %q for table %s", field, r.cfg.Table)
	}
	var row T
	result := r.db.WithContext(ctx).
		Raw("SELECT * FROM "+r.cfg.Table+" WHERE "+field+" = ? LIMIT 1", value).
		Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find %s by %s: %w", r.cfg.Table, field, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// ListWhere returns every row matching field = value.
func (r *Repository[T]) ListWhere(ctx context.Context, field string, value any) ([]T, error) {
	if !r.columnAllowed(field) {
		return nil, fmt.Errorf("unknown column %q for table %s", field, r.cfg.Table)
	}
	rows := []T{}
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM "+r.cfg.Table+" WHERE "+field+" = ?", value).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s by %s: %w", r.cfg.Table, field, err)
	}
	return rows, nil
}

// intersect returns the allow-listed columns present in data, in the
// configured field order, with their values. Unknown keys are dropped.
func (r *Repository[T]) intersect(data map[string]any) ([]string, []any) {
	columns := make([]string, 0, len(r.cfg.Fields))
	values := make([]any, 0, len(r.cfg.Fields))
	for _, field := range r.cfg.Fields {
		if v, ok := data[field]; ok {
			columns = append(columns, field)
			values = append(values, v)
		}
	}
	return columns, values
}

// Create inserts the allow-listed subset of data and returns the created row
// re-read from storage, so generated ids and column defaults are reflected.
// Uniqueness violations propagate wrapped for the service layer to classify.
func (r *Repository[T]) Create(ctx context.Context, data map[string]any) (*T, error) {
	columns, values := r.intersect(data)
	if len(columns) == 0 {
		return nil, fmt.Errorf("no writable fields for table %s", r.cfg.Table)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.cfg.Table, strings.Join(columns, ", "), placeholders,
	)

	var id int64
	if err := r.db.WithContext(ctx).Raw(insertSQL, values...).Scan(&id).Error; err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", r.cfg.Table, err)
	}

	return r.FindByID(ctx, id)
}

// Update writes the allow-listed subset of data to the row with the given id
// and returns the updated row re-read from storage, or nil when no row
// matched. An empty intersection issues no UPDATE at all.
func (r *Repository[T]) Update(ctx context.Context, id int64, data map[string]any) (*T, error) {
	columns, values := r.intersect(data)
	if len(columns) == 0 {
		return r.FindByID(ctx, id)
	}

	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = col + " = ?"
	}
	updateSQL := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ?",
		r.cfg.Table, strings.Join(assignments, ", "),
	)
	args := append(values, id)

	result := r.db.WithContext(ctx).Exec(updateSQL, args...)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update %s: %w", r.cfg.Table, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

// Delete removes the row with the given id. Returns false (without error)
// when nothing was deleted.
func (r *Repository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Exec("DELETE FROM "+r.cfg.Table+" WHERE id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", r.cfg.Table, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Exists reports whether a row with the given primary key is present.
func (r *Repository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(1) FROM "+r.cfg.Table+" WHERE id = ?", id).
		Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", r.cfg.Table, err)
	}
	return count > 0, nil
}

// ExistsWhere reports whether a row with field = value exists. When excludeID
// is non-nil the row with that id is not counted, which answers "is this
// value used by someone else". This is a pre-check only; the storage
// constraint remains the authoritative uniqueness guarantee.
func (r *Repository[T]) ExistsWhere(ctx context.Context, field string, value any, excludeID *int64) (bool, error) {
	if !r.columnAllowed(field) {
		return false, fmt.Errorf("unknown column %q for table %s", field, r.cfg.Table)
	}

	querySQL := "SELECT COUNT(1) FROM " + r.cfg.Table + " WHERE " + field + " = ?"
	args := []any{value}
	if excludeID != nil {
		querySQL += " AND id != ?"
		args = append(args, *excludeID)
	}

	var count int
	err := r.db.WithContext(ctx).Raw(querySQL, args...).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check %s.%s existence: %w", r.cfg.Table, field, err)
	}
	return count > 0, nil
}
