package views

import (
	"bytes"
	"encoding/json"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/content/portabletext"
)

// Loading is the placeholder a content section shows until its fragment
// arrives. It requests the fragment as soon as it is on the page and is
// replaced by whatever state the fetch settles into.
func Loading(p Page, src string, cards int) g.Node {
	return h.Div(
		g.Attr("data-state", content.Loading.String()),
		hx.Get(src),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
		h.Aria("busy", "true"),
		h.Div(h.Class("grid md:grid-cols-3 gap-8 animate-pulse"),
			g.Map(make([]struct{}, cards), func(struct{}) g.Node {
				return h.Div(
					h.Div(h.Class("aspect-[4/3] bg-stone-300 rounded-lg")),
					h.Div(h.Class("h-4 w-1/3 bg-stone-300 rounded mt-6")),
					h.Div(h.Class("h-6 w-3/4 bg-stone-300 rounded mt-3")),
				)
			}),
		),
		h.Span(h.Class("sr-only"), g.Text(p.T("Loading posts…"))),
	)
}

// fragmentRoot wraps a settled fragment so a retry can replace it whole.
func fragmentRoot(state content.State, children ...g.Node) g.Node {
	return h.Div(g.Attr("data-state", state.String()), g.Group(children))
}

func emptyState(p Page, title string) g.Node {
	return fragmentRoot(content.Empty,
		h.Div(h.Class("flex flex-col items-center text-center py-16 text-stone-500"),
			icon("size-12 mb-4", pathDocument),
			h.P(h.Class("text-2xl text-stone-700"), g.Text(title)),
			h.P(h.Class("mt-2"), g.Text(p.T("Check back soon for new articles."))),
		),
	)
}

// failedState reports a fetch error and offers a retry that re-issues the
// same fragment request.
func failedState(p Page, title, src string) g.Node {
	return fragmentRoot(content.Failed,
		h.Div(h.Class("flex flex-col items-center text-center py-16"), h.Role("alert"),
			icon("size-12 mb-4 text-red-orange-500", pathWarning),
			h.P(h.Class("text-2xl"), g.Text(title)),
			h.P(h.Class("mt-2 text-stone-500"), g.Text(p.T("Something went wrong while loading."))),
			h.Button(h.Type("button"),
				hx.Get(src),
				hx.Target("closest [data-state]"),
				hx.Swap("outerHTML"),
				h.Class(buttonClass+" mt-6 border-stone-900"),
				g.Text(p.T("Try Again")),
			),
		),
	)
}

// BlogPreview renders the home page's latest-posts fragment.
func BlogPreview(p Page, l content.Load, src string) g.Node {
	switch l.State {
	case content.Ready:
		return fragmentRoot(content.Ready,
			h.Div(h.Class("grid md:grid-cols-3 gap-8"),
				g.Map(l.Posts, func(post content.Post) g.Node { return postCard(p, post, false) }),
			),
		)
	case content.Empty:
		return emptyState(p, p.T("No blog posts yet"))
	case content.Failed:
		return failedState(p, p.T("Failed to load blog posts"), src)
	}
	return Loading(p, src, 3)
}

// BlogPage renders the blog index shell.
func BlogPage(p Page) g.Node {
	return Layout(p,
		h.Section(h.Class("container pt-40 pb-24"),
			h.A(h.Href(p.Href("/")), h.Class("inline-flex items-center text-base hover:text-red-orange-500 transition-colors mb-16"),
				icon("size-5 mr-2", pathArrowLeft), g.Text(p.T("Back to home"))),
			h.H1(h.Class("text-5xl md:text-7xl lg:text-8xl font-light mb-16"), g.Text(p.T("Blog"))),
			Loading(p, p.Fragment("/blog"), 6),
		),
		Footer(p),
	)
}

// BlogList renders the blog index fragment.
func BlogList(p Page, l content.Load, src string) g.Node {
	switch l.State {
	case content.Ready:
		return fragmentRoot(content.Ready,
			h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-x-8 gap-y-16"),
				g.Map(l.Posts, func(post content.Post) g.Node { return postCard(p, post, true) }),
			),
		)
	case content.Empty:
		return emptyState(p, p.T("No blog posts found"))
	case content.Failed:
		return failedState(p, p.T("Failed to load blog posts"), src)
	}
	return Loading(p, src, 6)
}

func postCard(p Page, post content.Post, detailed bool) g.Node {
	date := FormatDate(post.PublishedAt, p.Locale)
	if date == "" {
		date = p.T("No date")
	}
	return h.Article(h.Class("group"),
		h.A(h.Href(p.Href("/blog/"+PathEscape(post.Slug))), h.Class("block"),
			h.Div(h.Class("relative aspect-[4/3] overflow-hidden rounded-lg bg-stone-300"),
				postImage(post, "size-full object-cover group-hover:scale-105 transition-transform duration-700"),
			),
			h.Div(h.Class("mt-6 flex flex-wrap items-center gap-2 text-sm text-stone-500"),
				g.El("time", g.Attr("datetime", post.PublishedAt), g.Text(date)),
				g.Map(CategoryTitles(post), func(c string) g.Node {
					return h.Span(h.Class("px-2 py-0.5 rounded-full border border-stone-400 text-xs uppercase"), g.Text(c))
				}),
			),
			h.H3(h.Class("text-2xl mt-3 group-hover:text-red-orange-500 transition-colors"), g.Text(post.Title)),
			g.If(detailed && post.Excerpt != "", h.P(h.Class("mt-3 text-stone-700 line-clamp-3"), g.Text(post.Excerpt))),
			g.If(detailed, h.P(h.Class("mt-4 text-sm text-stone-500"), g.Text(AuthorName(post, p.Site.Author)))),
		),
	)
}

// postImage renders the main image, or a placeholder icon when the post
// has none.
func postImage(post content.Post, class string) g.Node {
	if post.MainImage == nil || post.MainImage.URL == "" {
		return h.Div(h.Class("size-full flex items-center justify-center text-stone-400"),
			icon("size-12", pathPhoto))
	}
	alt := post.MainImage.Alt
	if alt == "" {
		alt = post.Title
	}
	return h.Img(h.Class(class), h.Src(post.MainImage.URL), h.Alt(alt), g.Attr("loading", "lazy"))
}

// PostPage renders the shell of a single post page.
func PostPage(p Page, slug string) g.Node {
	return Layout(p,
		h.Section(h.Class("container pt-40 pb-24 max-w-4xl"),
			Loading(p, p.Fragment("/blog/"+PathEscape(slug)), 1),
		),
		Footer(p),
	)
}

// PostBody renders a single post fragment.
func PostBody(p Page, l content.Load, src string, opts portabletext.Options) g.Node {
	switch l.State {
	case content.Ready:
		return postArticle(p, l.Post, opts)
	case content.NotFound:
		return fragmentRoot(content.NotFound,
			h.Div(h.Class("text-center py-24"),
				h.H1(h.Class("text-4xl md:text-6xl font-light"), g.Text(p.T("Post not found"))),
				h.P(h.Class("mt-4 text-stone-500"), g.Text(p.T("The post you are looking for does not exist."))),
				h.A(h.Href(p.Href("/blog")), h.Class(buttonClass+" mt-8 border-stone-900"), g.Text(p.T("Back to blog"))),
			),
		)
	case content.Failed:
		return failedState(p, p.T("Failed to load post"), src)
	}
	return Loading(p, src, 1)
}

func postArticle(p Page, post content.Post, opts portabletext.Options) g.Node {
	date := FormatDate(post.PublishedAt, p.Locale)
	if date == "" {
		date = p.T("No date")
	}
	var body bytes.Buffer
	portabletext.Render(&body, post.Body, opts)

	return fragmentRoot(content.Ready,
		g.El("title", g.Text(post.Title+" | "+p.Site.Name)),
		h.Script(h.Type("application/ld+json"), g.Raw(BlogPostingJsonLD(p.Site, post))),
		h.Article(
			h.A(h.Href(p.Href("/blog")), h.Class("inline-flex items-center text-base hover:text-red-orange-500 transition-colors mb-12"),
				icon("size-5 mr-2", pathArrowLeft), g.Text(p.T("Back to blog"))),
			h.Div(h.Class("flex flex-wrap gap-2 mb-6"),
				g.Map(CategoryTitles(post), func(c string) g.Node {
					return h.Span(h.Class("px-3 py-1 rounded-full bg-stone-900 text-white text-xs uppercase"), g.Text(c))
				}),
			),
			h.H1(h.Class("text-4xl md:text-6xl font-light leading-tight"), g.Text(post.Title)),
			h.Div(h.Class("mt-6 flex items-center gap-3 text-stone-500"),
				g.El("time", g.Attr("datetime", post.PublishedAt), g.Text(date)),
				h.Span(g.Text("•")),
				h.Span(g.Text(AuthorName(post, p.T("Unknown Author")))),
			),
			g.If(post.MainImage != nil && post.MainImage.URL != "",
				h.Figure(h.Class("relative w-full my-12 aspect-video overflow-hidden rounded-lg"),
					postImage(post, "size-full object-cover"),
				),
			),
			g.If(body.Len() > 0, h.Div(h.Class("post-body"), g.Raw(body.String()))),
			g.If(body.Len() == 0, h.P(h.Class("text-xl text-stone-500 my-12"), g.Text(p.T("No content available for this post.")))),
			authorCard(p, post.Author),
		),
	)
}

func authorCard(p Page, a *content.Author) g.Node {
	if a == nil || a.Name == "" {
		return nil
	}
	bio := AuthorBio(a)
	return h.Div(h.Class("mt-16 pt-8 border-t border-stone-300 flex items-center gap-4"),
		g.If(a.Image != "", h.Img(h.Class("size-16 rounded-full object-cover"), h.Src(a.Image), h.Alt(a.Name))),
		h.Div(
			h.P(h.Class("text-lg font-medium"), g.Text(a.Name)),
			g.If(bio != "", h.P(h.Class("text-stone-600"), g.Text(bio))),
		),
	)
}

// AuthorBio returns an author's bio as plain text. The store holds it
// either as a string or as portable text.
func AuthorBio(a *content.Author) string {
	switch v := a.Bio.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	raw, err := json.Marshal(a.Bio)
	if err != nil {
		return ""
	}
	var blocks []portabletext.Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return ""
	}
	return portabletext.PlainText(blocks)
}
