package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/eringen/folio/content"
)

// Component adapts a gomponents node to templ.Component so the app renders
// every view through one path.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// BuildURL joins path segments onto a base URL.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	return u.String()
}

// PathEscape wraps url.PathEscape for building links from slugs.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

var ruMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatDate renders an ISO timestamp as a long date in UTC, e.g.
// "March 5, 2023". It returns "" when the value cannot be parsed.
func FormatDate(raw, loc string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return ""
		}
	}
	t = t.UTC()
	if loc == "ru" {
		return strconv.Itoa(t.Day()) + " " + ruMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
	}
	return t.Format("January 2, 2006")
}

// AuthorName returns the post author, or fallback when the post has none.
func AuthorName(p content.Post, fallback string) string {
	if p.Author != nil && strings.TrimSpace(p.Author.Name) != "" {
		return p.Author.Name
	}
	return fallback
}

// CategoryTitles lists the non-empty category titles of a post.
func CategoryTitles(p content.Post) []string {
	var out []string
	for _, c := range p.Categories {
		if t := strings.TrimSpace(c.Title); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg SiteConfig, post content.Post) string {
	postURL := BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"datePublished": post.PublishedAt,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Excerpt != "" {
		data["description"] = post.Excerpt
	}
	if author := AuthorName(post, cfg.Author); author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  author,
		}
	}
	if post.MainImage != nil && post.MainImage.URL != "" {
		data["image"] = post.MainImage.URL
	}
	if cats := CategoryTitles(post); len(cats) > 0 {
		data["keywords"] = strings.Join(cats, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// motionJSON serialises a motion binding for the browser script.
func motionJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
