package views

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/eringen/folio/carousel"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/content/portabletext"
	"github.com/eringen/folio/site"
)

func testPage(loc, path string) Page {
	return Page{
		Site:   SiteConfig{Name: "Folio", URL: "https://example.com", Author: "Ilham Akbar"},
		Data:   site.MustLoad(),
		Locale: loc,
		Path:   path,
	}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		raw, loc, want string
	}{
		{"2023-03-05T00:00:00Z", "en", "March 5, 2023"},
		{"2023-03-05", "en", "March 5, 2023"},
		{"2023-03-05T23:30:00-02:00", "en", "March 6, 2023"},
		{"2023-03-05T00:00:00Z", "ru", "5 марта 2023"},
		{"", "en", ""},
		{"yesterday", "en", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.raw, tt.loc), "FormatDate(%q, %q)", tt.raw, tt.loc)
	}
}

func TestPageLinks(t *testing.T) {
	en := testPage("en", "/blog")
	ru := testPage("ru", "/blog")

	assert.Equal(t, "/blog", en.Href("/blog"))
	assert.Equal(t, "/ru/blog", ru.Href("/blog"))
	assert.Equal(t, "/ru", ru.Href("/"))
	assert.Equal(t, "/fragments/blog?locale=ru", ru.Fragment("/blog"))
	assert.Equal(t, "/fragments/testimonials?from=1&step=next&locale=en", en.Fragment("/testimonials?from=1&step=next"))
}

func TestAuthorFallbacks(t *testing.T) {
	assert.Equal(t, "Unknown Author", AuthorName(content.Post{}, "Unknown Author"))
	assert.Equal(t, "Unknown Author", AuthorName(content.Post{Author: &content.Author{Name: "  "}}, "Unknown Author"))
	assert.Equal(t, "Ada", AuthorName(content.Post{Author: &content.Author{Name: "Ada"}}, "x"))

	assert.Equal(t, "", AuthorBio(&content.Author{}))
	assert.Equal(t, "Writes code.", AuthorBio(&content.Author{Bio: "Writes code."}))
	bio := []any{map[string]any{
		"_type":    "block",
		"children": []any{map[string]any{"_type": "span", "text": "Designer and developer."}},
	}}
	assert.Equal(t, "Designer and developer.", AuthorBio(&content.Author{Bio: bio}))
}

func TestBlogPreviewStates(t *testing.T) {
	p := testPage("en", "/")
	src := p.Fragment("/blog-preview")

	loading := render(t, BlogPreview(p, content.Load{State: content.Loading}, src))
	assert.Contains(t, loading, `data-state="loading"`)
	assert.Contains(t, loading, `hx-trigger="load"`)

	empty := render(t, BlogPreview(p, content.Settle(nil, nil), src))
	assert.Contains(t, empty, "No blog posts yet")
	assert.NotContains(t, empty, "Failed to load")

	failed := render(t, BlogPreview(p, content.Settle(nil, errors.New("boom")), src))
	assert.Contains(t, failed, "Failed to load blog posts")
	assert.Contains(t, failed, `hx-target="closest [data-state]"`)
	assert.NotContains(t, failed, "No blog posts yet")

	ready := render(t, BlogPreview(p, content.Settle([]content.Post{{Title: "Hello", Slug: "hello"}}, nil), src))
	assert.Contains(t, ready, `href="/blog/hello"`)
	assert.Contains(t, ready, "No date")
}

func TestPostBodyRendersPortableText(t *testing.T) {
	p := testPage("en", "/blog/hello")
	post := content.Post{
		Title: "Hello",
		Slug:  "hello",
		Body: []portabletext.Block{{
			Type:     "block",
			Style:    "h2",
			Children: []portabletext.Span{{Type: "span", Text: "Intro"}},
		}},
		MainImage: &content.Image{URL: "https://cdn.sanity.io/images/x.jpg"},
	}
	out := render(t, PostBody(p, content.SettleOne(post, nil), p.Fragment("/blog/hello"), portabletext.Options{}))

	assert.Contains(t, out, "<h2>Intro</h2>")
	assert.Contains(t, out, `alt="Hello"`)
	assert.Contains(t, out, "Unknown Author")
	assert.NotContains(t, out, "No content available")

	missing := render(t, PostBody(p, content.SettleOne(content.Post{}, content.ErrNotFound), "", portabletext.Options{}))
	assert.Contains(t, missing, "Post not found")
	assert.Contains(t, missing, `href="/blog"`)

	failed := render(t, PostBody(p, content.SettleOne(content.Post{}, errors.New("boom")), "/fragments/blog/hello", portabletext.Options{}))
	assert.Contains(t, failed, "Failed to load post")
	assert.NotContains(t, failed, "blog posts")
	assert.Contains(t, failed, `hx-get="/fragments/blog/hello"`)
}

func TestTestimonialControls(t *testing.T) {
	p := testPage("en", "/")
	out := render(t, Testimonial(p, 0, carousel.Visible))

	assert.Contains(t, out, `data-phase="visible"`)
	assert.Contains(t, out, `href="/?t=2#testimonials"`)
	assert.Contains(t, out, `href="/?t=1#testimonials"`)
	assert.Contains(t, out, `hx-swap="innerHTML"`)
	assert.Contains(t, out, "1 / 3")
	assert.Contains(t, out, "object-position: 50%")
}

func TestLanguageMenuLinksToSwitch(t *testing.T) {
	out := render(t, Header(testPage("ru", "/blog")))

	assert.Contains(t, out, `href="/locale/en?next=%2Fblog"`)
	assert.Contains(t, out, `href="/locale/ru?next=%2Fblog"`)
	assert.Contains(t, out, `aria-current="true"`)
}

func TestHomeOrderAndMotion(t *testing.T) {
	out := render(t, Home(testPage("en", "/"), 0))

	hero := strings.Index(out, `id="hero"`)
	faqs := strings.Index(out, `id="faqs"`)
	require.True(t, hero >= 0 && faqs > hero)
	assert.Contains(t, out, `data-motion-target="#testimonials"`)
	assert.Contains(t, out, `style="--testimonial-exit:500ms"`)
	assert.Contains(t, out, "&#34;source&#34;:&#34;velocity&#34;")
}

func TestAuthoredCopyMarkup(t *testing.T) {
	out := render(t, Home(testPage("en", "/"), 0))

	assert.Contains(t, out, "<strong>headless CMS</strong>")
	assert.Contains(t, out, ">Get in touch</a>")
	assert.NotContains(t, out, "[Get in touch]")
}

func TestTestimonialStageRendersExitBeforeEnter(t *testing.T) {
	p := testPage("en", "/")
	var stage carousel.Stage
	require.NoError(t, stage.Show("Ryan Pratama").Entered())
	stage.Show("Fakhrul")

	out := render(t, TestimonialStage(p, stage.Entries(), 2))

	exiting := strings.Index(out, `data-key="Ryan Pratama" data-phase="exiting" aria-hidden="true"`)
	entering := strings.Index(out, `data-key="Fakhrul" data-phase="entering"`)
	require.True(t, exiting >= 0, out)
	require.True(t, entering > exiting, out)
	assert.Equal(t, 2, strings.Count(out, `class="testimonial `))
	assert.Contains(t, out, "3 / 3")
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://example.com/", BuildURL("https://example.com"))
	assert.Equal(t, "https://example.com/blog/post", BuildURL("https://example.com/", "blog", "post"))
	assert.Equal(t, "https://example.com/ru", BuildURL("https://example.com", "/ru", "/"))
}
