package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/locale"
	"github.com/eringen/folio/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// renderSitemap lists every page in every locale: the static pages, each
// project and each post.
func (a *App) renderSitemap(c echo.Context, posts []content.Post) error {
	type page struct{ path, lastMod string }
	pages := []page{{path: "/"}, {path: "/about"}, {path: "/blog"}}
	for _, pr := range a.Data.Projects {
		pages = append(pages, page{path: "/projects/" + pr.Slug})
	}
	for _, p := range posts {
		if p.Slug == "" {
			continue
		}
		pages = append(pages, page{path: "/blog/" + p.Slug, lastMod: sitemapDate(p.PublishedAt)})
	}

	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(pages)*len(locale.Supported))
	for _, loc := range locale.Supported {
		for _, p := range pages {
			urls = append(urls, sitemapURL{
				Loc:     views.BuildURL(base, locale.Prefix(loc), p.path),
				LastMod: p.lastMod,
			})
		}
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

// sitemapDate trims a timestamp to the W3C date form.
func sitemapDate(raw string) string {
	if len(raw) >= len("2006-01-02") {
		return raw[:len("2006-01-02")]
	}
	return ""
}
