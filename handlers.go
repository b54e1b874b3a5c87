package folio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/folio/carousel"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/content/portabletext"
	"github.com/eringen/folio/locale"
	"github.com/eringen/folio/views"
)

const (
	previewPosts   = 3
	relatedCount   = 2
	postImageWidth = 1200
)

var errRateLimited = errors.New("folio: fetch rate limit exceeded")

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

func (a *App) page(c echo.Context) views.Page {
	return views.Page{
		Site:   a.siteConfig(),
		Data:   a.Data,
		Locale: Locale(c),
		Path:   c.Request().URL.Path,
	}
}

func (a *App) handleHome(c echo.Context) error {
	p := a.page(c)
	index := 0
	if n := len(a.Data.Testimonials); n > 0 {
		if t, err := strconv.Atoi(c.QueryParam("t")); err == nil {
			car, _ := carousel.New(n)
			index = car.Seek(t)
		}
	}
	return renderNode(c, http.StatusOK, views.Home(p, index))
}

func (a *App) handleAbout(c echo.Context) error {
	p := a.page(c)
	p.Meta = views.PageMeta{
		Title:       p.T("About"),
		Description: a.Data.About.Tagline,
		Image:       a.absURL(a.Data.About.Image),
	}
	return renderNode(c, http.StatusOK, views.About(p))
}

func (a *App) handleBlog(c echo.Context) error {
	p := a.page(c)
	p.Meta = views.PageMeta{Title: p.T("Blog")}
	return renderNode(c, http.StatusOK, views.BlogPage(p))
}

func (a *App) handlePost(c echo.Context) error {
	p := a.page(c)
	p.Meta = views.PageMeta{Title: p.T("Blog"), OGType: "article"}
	return renderNode(c, http.StatusOK, views.PostPage(p, c.Param("slug")))
}

func (a *App) handleProject(c echo.Context) error {
	p := a.page(c)
	slug := c.Param("slug")
	pr, ok := a.Data.Project(slug)
	if !ok {
		p.Meta = views.PageMeta{Title: p.T("Project not found")}
		return renderNode(c, http.StatusNotFound, views.ProjectNotFound(p))
	}
	p.Meta = views.PageMeta{
		Title:       pr.Title,
		Description: pr.Description,
		Image:       a.absURL(pr.Image),
	}
	return renderNode(c, http.StatusOK, views.ProjectPage(p, pr, a.Data.RelatedProjects(slug, relatedCount)))
}

func (a *App) handleBlogPreviewFragment(c echo.Context) error {
	p := a.page(c)
	posts, err := runFetch(a, c, func(ctx context.Context) ([]content.Post, error) {
		return a.Cache.Posts(ctx, content.PostQuery{Limit: previewPosts, Locale: p.Locale})
	})
	if a.abandoned(c, "blog-preview", err) {
		return nil
	}
	l := content.Settle(posts, err)
	a.settled(c, "blog-preview", l)
	return renderNode(c, http.StatusOK, views.BlogPreview(p, l, p.Fragment("/blog-preview")))
}

func (a *App) handleBlogFragment(c echo.Context) error {
	p := a.page(c)
	posts, err := runFetch(a, c, func(ctx context.Context) ([]content.Post, error) {
		return a.Cache.Posts(ctx, content.PostQuery{Locale: p.Locale})
	})
	if a.abandoned(c, "blog", err) {
		return nil
	}
	l := content.Settle(posts, err)
	a.settled(c, "blog", l)
	return renderNode(c, http.StatusOK, views.BlogList(p, l, p.Fragment("/blog")))
}

func (a *App) handlePostFragment(c echo.Context) error {
	p := a.page(c)
	slug := c.Param("slug")
	post, err := runFetch(a, c, func(ctx context.Context) (content.Post, error) {
		return a.Cache.Post(ctx, slug)
	})
	if a.abandoned(c, "post", err) {
		return nil
	}
	l := content.SettleOne(post, err)
	a.settled(c, "post", l)
	opts := portabletext.Options{ImageURL: a.imageURL, Classes: portabletext.DefaultClasses}
	return renderNode(c, http.StatusOK, views.PostBody(p, l, p.Fragment("/blog/"+views.PathEscape(slug)), opts))
}

func (a *App) handleTestimonialFragment(c echo.Context) error {
	p := a.page(c)
	step := c.QueryParam("step")
	if step != "next" && step != "prev" {
		return echo.NewHTTPError(http.StatusBadRequest, "step must be next or prev")
	}
	from, err := strconv.Atoi(c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from must be an integer")
	}
	car, err := carousel.New(len(a.Data.Testimonials))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	// The outgoing entry is already on the page; stepping moves it to
	// exiting and mounts the incoming one.
	var stage carousel.Stage
	if err := stage.Show(a.Data.Testimonials[car.Seek(from)].Name).Entered(); err != nil {
		return err
	}
	index := car.Step(step)
	stage.Show(a.Data.Testimonials[index].Name)
	a.metrics.TestimonialSteps.WithLabelValues(step).Inc()

	return renderNode(c, http.StatusOK, views.TestimonialStage(p, stage.Entries(), index))
}

// handleLocale stores the visitor's language and sends them to the same
// page in that language.
func (a *App) handleLocale(c echo.Context) error {
	code := c.Param("code")
	if !locale.IsSupported(code) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	next, err := url.Parse(c.QueryParam("next"))
	if err != nil || next.Host != "" || next.Scheme != "" || len(next.Path) == 0 || next.Path[0] != '/' {
		next = &url.URL{Path: "/"}
	}
	if err := saveLocale(c, code); err != nil {
		a.Logger.Warn("save locale preference", zap.String("locale", code), zap.Error(err))
	}

	target := locale.SwitchPath(next.Path, code)
	if code == locale.Default {
		_, target = locale.Split(next.Path)
	}
	if !sameOrigin(target) {
		home := locale.Prefix(code)
		if home == "" {
			home = "/"
		}
		return c.Redirect(http.StatusSeeOther, home)
	}
	if next.RawQuery != "" {
		target += "?" + next.RawQuery
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// sameOrigin reports whether a redirect path stays on this host. Browsers
// read a leading "//" as another host and treat "\" like "/".
func sameOrigin(target string) bool {
	return strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") && !strings.Contains(target, `\`)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.Posts(c.Request().Context(), content.PostQuery{})
	if err != nil {
		// The static pages are still worth listing.
		a.Logger.Warn("sitemap: list posts", zap.Error(err))
		posts = nil
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.Posts(c.Request().Context(), content.PostQuery{})
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable).SetInternal(err)
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /fragments/\n\nSitemap: %s\n", views.BuildURL(a.Config.URL, "sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func (a *App) handleHealth(c echo.Context) error {
	if err := a.Cache.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "cache": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// runFetch runs one content fetch tied to the request: it is cancelled when
// the visitor disconnects and bounded by FetchTimeout.
func runFetch[T any](a *App, c echo.Context, fetch func(context.Context) (T, error)) (T, error) {
	if !a.limiter.Allow(c.RealIP()) {
		var zero T
		return zero, errRateLimited
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), a.Config.FetchTimeout)
	defer cancel()
	return content.Start(ctx, fetch).Wait()
}

// abandoned reports whether the request went away before its fetch
// settled. Nothing is rendered for such a request.
func (a *App) abandoned(c echo.Context, fragment string, err error) bool {
	if err == nil || c.Request().Context().Err() == nil {
		return false
	}
	a.Logger.Debug("fragment abandoned",
		zap.String("fragment", fragment),
		zap.String("request_id", requestID(c)),
	)
	return true
}

func (a *App) settled(c echo.Context, fragment string, l content.Load) {
	a.metrics.FragmentStates.WithLabelValues(fragment, l.State.String()).Inc()
	if l.State != content.Failed {
		return
	}
	a.Logger.Warn("content fetch failed",
		zap.String("fragment", fragment),
		zap.String("uri", c.Request().RequestURI),
		zap.String("request_id", requestID(c)),
		zap.Error(l.Err),
	)
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func (a *App) imageURL(ref string) string {
	return content.ImageURL(a.Config.Sanity.ProjectID, a.Config.Sanity.Dataset, ref, postImageWidth)
}

// absURL resolves a site-relative asset path against the canonical URL.
func (a *App) absURL(p string) string {
	if p == "" {
		return ""
	}
	u, err := url.Parse(p)
	if err != nil || u.IsAbs() {
		return p
	}
	return views.BuildURL(a.Config.URL, p)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	p := a.page(c)
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		p.Meta = views.PageMeta{Title: p.T("Page not found")}
		_ = renderNode(c, http.StatusNotFound, views.NotFound(p))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Int("status", code),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
		p.Meta = views.PageMeta{Title: p.T("Something went wrong")}
		_ = renderNode(c, code, views.ServerError(p))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
