package models

import "time"

// Book is the single catalog entity. JSON field names follow the public
// API shape consumed by the client (camelCase, id as opaque string).
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	ISBN          string     `json:"isbn"`
	Price         float64    `json:"price"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Stock         int        `json:"stock"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// SuggestedCategories is the fixed set the UI offers. The column itself is
// open-ended; these are suggestions, not an enum.
var SuggestedCategories = []string{
	"Fiction", "Non-Fiction", "Science", "Technology", "History", "Biography",
}
