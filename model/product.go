package model

// FilterQueries shapes the optional product search parameters taken from
// the request query string. Numeric fields arrive as strings and are
// validated before being parsed. Prices use the custom `price` format.
type FilterQueries struct {
	Query        string `json:"query" validate:"omitempty"`
	CategoryID   string `json:"category_id" validate:"omitempty,numeric"`
	TypeID       string `json:"type_id" validate:"omitempty,numeric"`
	MinimumPrice string `json:"minimum_price" validate:"omitempty,price"`
	MaximumPrice string `json:"maximum_price" validate:"omitempty,price"`
	Page         string `json:"page" validate:"omitempty,numeric"`
	Size         string `json:"size" validate:"omitempty,numeric"`
}

// ProductFilter is the repository-level shape after parsing FilterQueries
type ProductFilter struct {
	Query      string
	CategoryID uint64
	TypeID     uint64
	MinPrice   string
	MaxPrice   string
	Page       int
	PerPage    int
}

type ProductListItem struct {
	ID          uint64  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description,omitempty"`
	CategoryID  uint64  `db:"category_id" json:"category_id"`
	TypeID      uint64  `db:"type_id" json:"type_id"`
	Price       float64 `db:"price" json:"price"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}
