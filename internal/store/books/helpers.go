package books

import (
	"database/sql"
	"strings"
	"time"

	"github.com/shravya312/Online-book-Store/internal/models"
)

// bookColumns is the scan order shared by every SELECT/RETURNING below.
const bookColumns = `id::text, title, author, isbn, price, description, category, stock,
	COALESCE(image_url, ''), published_date, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (models.Book, error) {
	var b models.Book
	var published sql.NullTime
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Price, &b.Description,
		&b.Category, &b.Stock, &b.ImageURL, &published, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return models.Book{}, err
	}
	if published.Valid {
		t := published.Time
		b.PublishedDate = &t
	}
	return b, nil
}

func looksLikeUUID(s string) bool { return len(s) == 36 && strings.Count(s, "-") == 4 }

// escapeLike neutralizes LIKE metacharacters in user input so a search for
// "100%" matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
