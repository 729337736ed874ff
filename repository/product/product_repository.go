package product

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/omartarek/e-commerce-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, int64, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsBase  = `SELECT p.id, p.name, p.description, p.category_id, p.type_id, p.price FROM product p WHERE true`
	countProductsBase = `SELECT COUNT(*) FROM product p WHERE true`
)

func buildPredicates(filter *model.ProductFilter) (string, []any) {
	clause := ""
	args := make([]any, 0, 6)

	if filter.Query != "" {
		clause += " AND (p.name LIKE ? OR p.description LIKE ?)"
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}
	if filter.CategoryID != 0 {
		clause += " AND p.category_id = ?"
		args = append(args, filter.CategoryID)
	}
	if filter.TypeID != 0 {
		clause += " AND p.type_id = ?"
		args = append(args, filter.TypeID)
	}
	if filter.MinPrice != "" {
		clause += " AND p.price >= ?"
		args = append(args, filter.MinPrice)
	}
	if filter.MaxPrice != "" {
		clause += " AND p.price <= ?"
		args = append(args, filter.MaxPrice)
	}

	return clause, args
}

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, int64, error) {
	clause, args := buildPredicates(filter)
	offset := (filter.Page - 1) * filter.PerPage

	query := listProductsBase + clause + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, append(args, filter.PerPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// total count over the same predicates
	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsBase+clause, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
