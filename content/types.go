package content

import (
	"context"
	"errors"

	"github.com/eringen/folio/content/portabletext"
)

// ErrNotFound is returned when a single-item lookup matches nothing.
var ErrNotFound = errors.New("content: not found")

// Post is a blog post as returned by the content store. Any field may be
// empty; the store enforces no schema.
type Post struct {
	ID          string               `json:"_id"`
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	PublishedAt string               `json:"publishedAt"`
	Excerpt     string               `json:"excerpt"`
	Body        []portabletext.Block `json:"body"`
	MainImage   *Image               `json:"mainImage"`
	Categories  []Category           `json:"categories"`
	Author      *Author              `json:"author"`
}

// Image is a resolved image asset.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Category is a referenced category document.
type Category struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// Author is a referenced author document.
type Author struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Bio   any    `json:"bio"`
}

// PostQuery selects posts ordered by publish time, newest first.
type PostQuery struct {
	// Limit caps the number of posts; zero means no limit.
	Limit int
	// Locale keeps posts in that language plus posts with no language set.
	Locale string
}

// Source is a read-only content store.
type Source interface {
	Posts(ctx context.Context, q PostQuery) ([]Post, error)
	Post(ctx context.Context, slug string) (Post, error)
}
