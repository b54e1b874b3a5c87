package views

import (
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/folio/locale"
	"github.com/eringen/folio/site"
)

const (
	tailwindURL = "https://cdn.tailwindcss.com"
	htmxURL     = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
)

const buttonClass = "group/button inline-flex items-center gap-2 h-11 px-6 rounded-xl uppercase border transition-colors duration-500 relative isolate overflow-hidden"

// Layout wraps page content in the document shell, header and footer.
func Layout(p Page, body ...g.Node) g.Node {
	title := p.Meta.Title
	if title == "" {
		title = p.Site.Name
	} else if p.Site.Name != "" && title != p.Site.Name {
		title += " | " + p.Site.Name
	}
	desc := p.Meta.Description
	if desc == "" {
		desc = p.Site.Description
	}
	canonical := p.Meta.URL
	if canonical == "" {
		canonical = BuildURL(p.Site.URL, p.Href(p.Path))
	}
	ogType := p.Meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	return h.Doctype(
		h.HTML(h.Lang(p.Locale),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(title)),
				h.Meta(h.Name("description"), h.Content(desc)),
				h.Link(h.Rel("canonical"), h.Href(canonical)),
				g.Map(p.Data.Languages, func(l site.Language) g.Node {
					return h.Link(h.Rel("alternate"), g.Attr("hreflang", l.Code),
						h.Href(BuildURL(p.Site.URL, locale.SwitchPath(p.Path, l.Code))))
				}),
				h.Meta(g.Attr("property", "og:title"), h.Content(title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(desc)),
				h.Meta(g.Attr("property", "og:type"), h.Content(ogType)),
				h.Meta(g.Attr("property", "og:url"), h.Content(canonical)),
				g.If(p.Meta.Image != "", h.Meta(g.Attr("property", "og:image"), h.Content(p.Meta.Image))),
				h.Link(h.Rel("alternate"), h.Type("application/rss+xml"), g.Attr("title", p.Site.Name), h.Href("/feed.xml")),
				h.Script(h.Src(tailwindURL)),
				h.Script(h.Src("/public/site.js")),
				h.Script(h.Src(htmxURL), h.Defer()),
				h.Script(h.Src("/public/motion.js"), h.Defer()),
				h.Script(h.Type("application/ld+json"), g.Raw(WebsiteJsonLD(p.Site))),
			),
			h.Body(h.Class("bg-stone-200 text-stone-900 antialiased"),
				Header(p),
				h.Main(h.ID("main"), g.Group(body)),
			),
		),
	)
}

// navHref resolves a nav target: in-page anchors point at the home page
// unless the visitor is already on it.
func navHref(p Page, href string) string {
	if strings.HasPrefix(href, "#") {
		if p.Path == "/" {
			return href
		}
		return p.Href("/") + href
	}
	return p.Href(href)
}

// Header renders the fixed site header with the language switcher and the
// slide-down navigation menu.
func Header(p Page) g.Node {
	current := p.Data.Language(p.Locale)
	return h.Header(
		h.Div(h.Class("fixed top-0 z-10 left-0 w-full mix-blend-difference backdrop-blur-md"),
			h.Div(h.Class("container !max-w-full"),
				h.Div(h.Class("flex justify-between h-20 items-center"),
					h.A(h.Href(p.Href("/")),
						h.Span(h.Class("text-xl font-bold text-white uppercase"), g.Text(p.Data.Owner.Name)),
					),
				),
			),
		),
		h.Div(h.Class("fixed z-20 top-0 right-0"),
			h.Div(h.Class("flex justify-end h-20 items-center gap-4 px-4"),
				h.Details(h.ID("language-menu"), h.Class("relative"), g.Attr("data-dismiss", ""),
					h.Summary(h.ID("language-button"),
						h.Class("list-none cursor-pointer inline-flex items-center justify-center gap-1 px-3 py-2 text-sm bg-stone-200 border border-stone-400 rounded-full hover:bg-stone-300 transition-colors"),
						h.Aria("label", p.T("Language")),
						h.Span(h.Class("text-lg mr-1"), g.Text(current.Flag)),
						h.Span(h.Class("hidden sm:inline"), g.Text(current.Name)),
						icon("w-4 h-4 transition-transform duration-200 chevron", pathChevronDown),
					),
					h.Div(h.Class("absolute right-0 mt-2 w-40 bg-white rounded-lg shadow-lg py-1 z-20"),
						g.Map(p.Data.Languages, func(l site.Language) g.Node {
							class := "w-full text-left px-4 py-2 hover:bg-stone-100 transition-colors flex items-center"
							if l.Code == p.Locale {
								class += " bg-stone-50 text-red-orange-500 font-medium"
							}
							return h.A(h.Class(class),
								h.Href("/locale/"+l.Code+"?next="+url.QueryEscape(p.Path)),
								g.If(l.Code == p.Locale, h.Aria("current", "true")),
								h.Span(h.Class("text-lg mr-2"), g.Text(l.Flag)),
								h.Span(g.Text(l.Name)),
							)
						}),
					),
				),
				h.Details(h.ID("nav-menu"), g.Attr("data-dismiss", ""),
					h.Summary(h.Class("list-none cursor-pointer size-11 border border-stone-400 bg-stone-200 rounded-full inline-flex justify-center items-center"),
						h.Aria("label", p.T("Menu")),
						menuIcon(),
					),
					h.Div(h.Class("nav-panel fixed top-0 left-0 w-full h-full overflow-hidden bg-stone-900 -z-10"),
						h.Nav(h.Class("mt-20 flex flex-col"),
							g.Map(p.Data.Nav, func(item site.Link) g.Node {
								return h.A(h.Href(navHref(p, item.Href)),
									h.Class("text-stone-200 group/nav-item relative isolate py-8 border-t border-stone-800 last:border-b"),
									h.Div(h.Class("container !max-w-full flex items-center justify-between"),
										h.Span(h.Class("text-3xl group-hover/nav-item:pl-4 transition-all duration-500"), g.Text(p.T(item.Label))),
										icon("size-6", pathArrowUpRight),
									),
									h.Div(h.Class("absolute w-full h-0 bg-stone-800 group-hover/nav-item:h-full transition-all duration-500 bottom-0 -z-10")),
								)
							}),
						),
					),
				),
				h.A(h.Href(navHref(p, "#contact")),
					h.Class(buttonClass+" hidden md:inline-flex bg-red-orange-500 text-white border-red-orange-500"),
					g.Text(p.T("Contact me")),
				),
			),
		),
	)
}

// Footer renders the contact footer shared by the home and project pages.
func Footer(p Page) g.Node {
	f := p.Data.Footer
	return h.Footer(h.ID("contact"), h.Class("bg-stone-900 text-white"),
		h.Div(h.Class("container"),
			h.Div(h.Class("section py-24"),
				h.Div(h.Class("flex items-center gap-3"),
					h.Div(h.Class("size-3 bg-green-400 animate-pulse rounded-full")),
					h.Span(h.Class("uppercase"), g.Text(f.Status)),
				),
				h.Div(h.Class("grid md:grid-cols-3 md:items-center"),
					h.Div(h.Class("md:col-span-2"),
						h.H2(h.Class("text-4xl lg:text-8xl md:text-7xl mt-8 font-extralight"), g.Text(f.Heading)),
						h.A(h.Href("mailto:"+p.Data.Owner.Email),
							h.Class(buttonClass+" mt-8 border-white text-white"),
							g.Text(p.Data.Owner.Email),
							slidingIcon("size-6", pathArrowUpRight),
						),
					),
					h.Nav(h.Class("flex flex-col md:items-end gap-8 md:mt-0 mt-16"),
						g.Map(f.Links, func(l site.Link) g.Node {
							return h.A(h.Href(navHref(p, l.Href)), h.Class("text-lg uppercase"), g.Text(p.T(l.Label)))
						}),
					),
				),
			),
			h.P(h.Class("py-16 text-white/30 text-sm"),
				g.Textf("Copyright © %s • %s", p.Data.Owner.Name, p.T("All rights reserved.")),
			),
		),
	)
}
