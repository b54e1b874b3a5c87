package views

import (
	"strings"

	"github.com/eringen/folio/locale"
	"github.com/eringen/folio/site"
)

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to views so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}

// Page is the request-scoped context every view renders against.
type Page struct {
	Site   SiteConfig
	Data   *site.Data
	Locale string
	// Path is the request path with any locale prefix removed.
	Path string
	Meta PageMeta
}

// T translates a UI string into the page locale.
func (p Page) T(key string) string {
	return locale.Printer(p.Locale).Sprintf(key)
}

// Href prefixes an internal path with the page locale.
func (p Page) Href(path string) string {
	prefix := locale.Prefix(p.Locale)
	if path == "/" && prefix != "" {
		return prefix
	}
	return prefix + path
}

// Fragment builds a fragment URL carrying the page locale.
func (p Page) Fragment(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "/fragments" + path + sep + "locale=" + p.Locale
}
