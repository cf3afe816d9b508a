package books

import (
	"context"
	"database/sql"
	"strings"

	"github.com/shravya312/Online-book-Store/internal/api/apperr"
	"github.com/shravya312/Online-book-Store/internal/models"
	"github.com/shravya312/Online-book-Store/internal/validate"
)

// sanitize runs the full field-level ruleset and returns the record as it
// should be persisted. Used by Create directly and by Update on the merged
// result, so partial updates re-validate everything.
func (dto CreateBookDTO) sanitize() (models.Book, error) {
	var f validate.Fields
	var b models.Book

	b.Title = f.Required("title", dto.Title)
	b.Author = f.Required("author", dto.Author)
	b.ISBN = f.Required("isbn", dto.ISBN)
	b.Category = f.Required("category", dto.Category)

	// description is required but kept verbatim (no trim)
	if strings.TrimSpace(dto.Description) == "" {
		f.Add("description", "required", "description is required")
	}
	b.Description = dto.Description

	if dto.Price == nil {
		f.Add("price", "required", "price is required")
	} else {
		f.NonNegativeFloat("price", *dto.Price)
		b.Price = *dto.Price
	}

	if dto.Stock != nil {
		f.NonNegativeInt("stock", *dto.Stock)
		b.Stock = *dto.Stock
	}

	b.ImageURL = f.Optional("imageUrl", dto.ImageURL)
	b.PublishedDate = f.Date("publishedDate", dto.PublishedDate)

	return b, f.Err()
}

// Create validates the payload, persists it with a generated identifier
// and timestamps, and returns the stored record. A duplicate isbn surfaces
// as a ValidationError on the isbn field.
func Create(ctx context.Context, db *sql.DB, dto CreateBookDTO) (models.Book, error) {
	b, err := dto.sanitize()
	if err != nil {
		return models.Book{}, err
	}

	row := db.QueryRowContext(ctx, `
		INSERT INTO books (title, author, isbn, price, description, category, stock, image_url, published_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+bookColumns,
		b.Title, b.Author, b.ISBN, b.Price, b.Description, b.Category, b.Stock,
		nullIfEmpty(b.ImageURL), nullTime(b.PublishedDate),
	)
	stored, err := scanBook(row)
	if err != nil {
		return models.Book{}, apperr.Normalize(err)
	}
	return stored, nil
}
