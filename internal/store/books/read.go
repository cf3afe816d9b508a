package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shravya312/Online-book-Store/internal/api/apperr"
	"github.com/shravya312/Online-book-Store/internal/models"
	"github.com/shravya312/Online-book-Store/internal/store/dbx"
)

// FetchByID returns the record with the given identifier. Unknown and
// malformed identifiers both report ErrNotFound.
func FetchByID(ctx context.Context, g dbx.Getter, id string) (models.Book, error) {
	if !looksLikeUUID(id) {
		return models.Book{}, apperr.ErrNotFound
	}
	row := g.QueryRowContext(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Book{}, apperr.Normalize(err)
	}
	return b, nil
}
