package books

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/shravya312/Online-book-Store/internal/api/apperr"
	"github.com/shravya312/Online-book-Store/internal/models"
)

// List returns one page of matching books plus the total match count
// before pagination. Most recently created first.
func List(ctx context.Context, db *sql.DB, f ListFilters) ([]models.Book, int, error) {
	where := []string{}
	args := []any{}
	i := 1

	// exact category match, case-sensitive as stored
	if f.Category != "" {
		where = append(where, "category = $"+strconv.Itoa(i))
		args = append(args, f.Category)
		i++
	}

	// free-text search: case-insensitive substring over title/author/isbn
	if f.Search != "" {
		p := "$" + strconv.Itoa(i)
		where = append(where,
			"(title ILIKE '%' || "+p+" || '%' OR author ILIKE '%' || "+p+" || '%' OR isbn ILIKE '%' || "+p+" || '%')")
		args = append(args, escapeLike(f.Search))
		i++
	}

	cond := ""
	if len(where) > 0 {
		cond = "WHERE " + strings.Join(where, " AND ") + "\n"
	}

	var total int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books\n"+cond, args...).Scan(&total); err != nil {
		return nil, 0, apperr.Normalize(err)
	}

	q := "SELECT " + bookColumns + " FROM books\n" + cond +
		"ORDER BY created_at DESC\nLIMIT $" + strconv.Itoa(i) + " OFFSET $" + strconv.Itoa(i+1)
	rows, err := db.QueryContext(ctx, q, append(args, f.Limit, (f.Page-1)*f.Limit)...)
	if err != nil {
		return nil, 0, apperr.Normalize(err)
	}
	defer rows.Close()

	out := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

// Pages is the page count for a total at the given limit.
func Pages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
