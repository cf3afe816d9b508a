package books

// ListFilters describes a listing request after query-string parsing.
// Page and Limit are already clamped to >= 1 by the handler.
type ListFilters struct {
	Search   string // case-insensitive substring over title/author/isbn
	Category string // exact match, as stored
	Page     int
	Limit    int
}

// CreateBookDTO is the create payload. Price and Stock are pointers so a
// missing field is distinguishable from an explicit zero: price is
// required, stock defaults to 0.
type CreateBookDTO struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	ISBN          string   `json:"isbn"`
	Price         *float64 `json:"price"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Stock         *int     `json:"stock"`
	ImageURL      string   `json:"imageUrl"`
	PublishedDate string   `json:"publishedDate"` // YYYY-MM-DD, optional
}

// UpdateBookDTO is the partial-update payload: nil means "leave unchanged".
type UpdateBookDTO struct {
	Title         *string  `json:"title"`
	Author        *string  `json:"author"`
	ISBN          *string  `json:"isbn"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Stock         *int     `json:"stock"`
	ImageURL      *string  `json:"imageUrl"`
	PublishedDate *string  `json:"publishedDate"`
}
