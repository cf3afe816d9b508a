package books

import (
	"context"
	"database/sql"

	"github.com/shravya312/Online-book-Store/internal/api/apperr"
	"github.com/shravya312/Online-book-Store/internal/models"
	"github.com/shravya312/Online-book-Store/internal/store/dbx"
)

// Update merges the provided fields onto the stored record, re-validates
// the merged result against the full ruleset, persists it and bumps
// updated_at. Fields absent from the patch stay as they were.
func Update(ctx context.Context, db *sql.DB, id string, patch UpdateBookDTO) (models.Book, error) {
	var updated models.Book
	err := dbx.WithinTx(ctx, db, func(tx *sql.Tx) error {
		current, err := fetchForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		merged := mergePatch(current, patch)
		b, err := merged.sanitize()
		if err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx, `
			UPDATE books
			SET title = $1, author = $2, isbn = $3, price = $4, description = $5,
			    category = $6, stock = $7, image_url = $8, published_date = $9,
			    updated_at = now()
			WHERE id = $10
			RETURNING `+bookColumns,
			b.Title, b.Author, b.ISBN, b.Price, b.Description, b.Category, b.Stock,
			nullIfEmpty(b.ImageURL), nullTime(b.PublishedDate), id,
		)
		updated, err = scanBook(row)
		return apperr.Normalize(err)
	})
	if err != nil {
		return models.Book{}, err
	}
	return updated, nil
}

// fetchForUpdate locks the row so the read-merge-write below sees a stable
// base. Concurrent updates remain last-write-wins, just with whole merges.
func fetchForUpdate(ctx context.Context, tx *sql.Tx, id string) (models.Book, error) {
	if !looksLikeUUID(id) {
		return models.Book{}, apperr.ErrNotFound
	}
	row := tx.QueryRowContext(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1 FOR UPDATE`, id)
	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return models.Book{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Book{}, apperr.Normalize(err)
	}
	return b, nil
}

// mergePatch lays the patch over the current record, expressed as a create
// payload so the merged whole goes through the same validation.
func mergePatch(current models.Book, patch UpdateBookDTO) CreateBookDTO {
	dto := CreateBookDTO{
		Title:       current.Title,
		Author:      current.Author,
		ISBN:        current.ISBN,
		Price:       &current.Price,
		Description: current.Description,
		Category:    current.Category,
		Stock:       &current.Stock,
		ImageURL:    current.ImageURL,
	}
	if current.PublishedDate != nil {
		dto.PublishedDate = current.PublishedDate.Format("2006-01-02")
	}

	if patch.Title != nil {
		dto.Title = *patch.Title
	}
	if patch.Author != nil {
		dto.Author = *patch.Author
	}
	if patch.ISBN != nil {
		dto.ISBN = *patch.ISBN
	}
	if patch.Price != nil {
		dto.Price = patch.Price
	}
	if patch.Description != nil {
		dto.Description = *patch.Description
	}
	if patch.Category != nil {
		dto.Category = *patch.Category
	}
	if patch.Stock != nil {
		dto.Stock = patch.Stock
	}
	if patch.ImageURL != nil {
		dto.ImageURL = *patch.ImageURL
	}
	if patch.PublishedDate != nil {
		dto.PublishedDate = *patch.PublishedDate
	}
	return dto
}
