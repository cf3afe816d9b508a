package s3

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reDashes   = regexp.MustCompile(`-+`)
)

// CoverObjectKey builds a stable, URL-safe object key for a book cover:
// covers/{bookID}/{slugified-title}-{unix}.{ext}
func CoverObjectKey(bookID, title, ext string) string {
	return fmt.Sprintf("covers/%s/%s-%d.%s", bookID, slugify(title), time.Now().Unix(), ext)
}

// maxSlugLen keeps object keys short enough that the stored reference
// always fits the imageUrl field rules, whatever the title length.
const maxSlugLen = 60

// slugify folds accents and strips everything but [a-z0-9-].
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if normalized, _, err := transform.String(t, s); err == nil {
		s = normalized
	}
	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	if s == "" {
		s = "cover"
	}
	return s
}
