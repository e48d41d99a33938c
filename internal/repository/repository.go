package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "storefront/internal/errors"
)

const (
	defaultLimit = 10
	defaultPage  = 1
)

// Filter restricts a query to records matching every entry. A plain value
// means column equality; a Range value bounds the column inclusively.
// Keys are column names and come from trusted callers, never from requests.
type Filter map[string]interface{}

// Range is an inclusive bound usable as a Filter value. Nil ends are open.
type Range struct {
	Gte interface{}
	Lte interface{}
}

// Repository provides uniform CRUD and search over one table of records of
// type T. Absent records are returned as nil results, not errors; database
// faults surface as persistence errors.
type Repository[T any] struct {
	db *gorm.DB
}

// New builds a GORM-backed repository for T.
func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Create persists a new record. Identity and timestamps are assigned by the
// model hooks; the stored record is returned.
func (r *Repository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, apperrors.Persistence("repository.Create", err)
	}
	return entity, nil
}

// FindByID returns the record with the given id, or nil if missing.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Persistence("repository.FindByID", err)
	}
	return &entity, nil
}

// FindOne returns the first record matching the filter, or nil if none does.
func (r *Repository[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var entity T
	err := applyFilter(r.db.WithContext(ctx), filter).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Persistence("repository.FindOne", err)
	}
	return &entity, nil
}

// Update applies a partial patch and returns the post-update record, or nil
// if no record with that id exists. The id column itself is never patched.
func (r *Repository[T]) Update(ctx context.Context, id string, data map[string]interface{}) (*T, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	delete(data, "id")
	if len(data) > 0 {
		err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(data).Error
		if err != nil {
			return nil, apperrors.Persistence("repository.Update", err)
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes and returns the record, or nil if missing.
func (r *Repository[T]) Delete(ctx context.Context, id string) (*T, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return nil, apperrors.Persistence("repository.Delete", err)
	}
	return existing, nil
}

// DeleteMany removes every record whose id is in ids. Ids with no matching
// record are silently ignored.
func (r *Repository[T]) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(new(T)).Error; err != nil {
		return apperrors.Persistence("repository.DeleteMany", err)
	}
	return nil
}

// Search returns the page of records matching the filter, newest-first by
// creation timestamp. When searchTerm and fields are both given, records
// must additionally contain the term case-insensitively in at least one of
// the named fields. Page and limit are 1-based; limit has no upper bound.
func (r *Repository[T]) Search(ctx context.Context, filter Filter, searchTerm string, fields []string, limit, page int) ([]T, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if page <= 0 {
		page = defaultPage
	}

	q := applyFilter(r.db.WithContext(ctx).Model(new(T)), filter)
	if searchTerm != "" && len(fields) > 0 {
		clause, args := searchCondition(searchTerm, fields)
		q = q.Where(clause, args...)
	}

	var out []T
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offsetFor(page, limit)).
		Find(&out).Error
	if err != nil {
		return nil, apperrors.Persistence("repository.Search", err)
	}
	return out, nil
}

func applyFilter(q *gorm.DB, filter Filter) *gorm.DB {
	for column, value := range filter {
		if rng, ok := value.(Range); ok {
			if rng.Gte != nil {
				q = q.Where(column+" >= ?", rng.Gte)
			}
			if rng.Lte != nil {
				q = q.Where(column+" <= ?", rng.Lte)
			}
			continue
		}
		q = q.Where(column+" = ?", value)
	}
	return q
}

// searchCondition builds an OR clause matching the term case-insensitively
// as a substring of any of the fields.
func searchCondition(term string, fields []string) (string, []interface{}) {
	pattern := likePattern(term)
	conds := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields))
	for _, field := range fields {
		conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", field))
		args = append(args, pattern)
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}

// likePattern lowers the term and escapes LIKE metacharacters so the match
// is a literal substring.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}

func offsetFor(page, limit int) int {
	return (page - 1) * limit
}
