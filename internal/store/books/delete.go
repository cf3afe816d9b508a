package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shravya312/Online-book-Store/internal/api/apperr"
	"github.com/shravya312/Online-book-Store/internal/models"
)

// Delete removes the record permanently and returns its last-known state.
func Delete(ctx context.Context, db *sql.DB, id string) (models.Book, error) {
	if !looksLikeUUID(id) {
		return models.Book{}, apperr.ErrNotFound
	}
	row := db.QueryRowContext(ctx, `DELETE FROM books WHERE id = $1 RETURNING `+bookColumns, id)
	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Book{}, apperr.Normalize(err)
	}
	return b, nil
}
