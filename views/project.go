package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/site"
)

// ProjectPage renders one project with its details and a few other
// projects to continue to.
func ProjectPage(p Page, pr site.Project, related []site.Project) g.Node {
	return Layout(p,
		h.Section(h.Class("container pt-40 pb-16"),
			h.A(h.Href(p.Href("/")+"#projects"), h.Class("inline-flex items-center text-base hover:text-red-orange-500 transition-colors mb-16"),
				icon("size-5 mr-2", pathArrowLeft), g.Text(p.T("Back to home"))),
			h.Span(h.Class("text-sm uppercase tracking-wider text-stone-500 block mb-4"), g.Text(pr.Category)),
			h.H1(h.Class("text-5xl md:text-7xl lg:text-8xl font-light"), g.Text(pr.Title)),
			markdown.Paragraph("text-xl md:text-2xl text-stone-700 mt-8 max-w-3xl", pr.Description),
			h.Div(h.Class("grid grid-cols-2 md:grid-cols-4 gap-8 mt-16 border-t border-stone-400 pt-8"),
				projectFact(p.T("Client"), pr.Client),
				projectFact(p.T("Year"), pr.Year),
				projectFact(p.T("Role"), pr.Role),
				h.Div(
					h.P(h.Class("text-sm uppercase tracking-wider text-stone-500"), g.Text(p.T("Technologies"))),
					h.Ul(h.Class("mt-2 space-y-1"),
						g.Map(pr.Technologies, func(t string) g.Node { return h.Li(g.Text(t)) }),
					),
				),
			),
			g.If(pr.LiveURL != "",
				h.A(h.Href(pr.LiveURL), h.Target("_blank"), h.Rel("noopener noreferrer"),
					h.Class(buttonClass+" mt-12 bg-red-orange-500 text-white border-red-orange-500"),
					g.Text(p.T("Visit live site")),
					slidingIcon("size-5", pathArrowUpRight),
				),
			),
		),
		h.Section(h.Class("container pb-24"),
			h.Figure(h.Class("aspect-video overflow-hidden"),
				h.Img(h.Class("size-full object-cover"), h.Src(pr.Image), h.Alt(pr.Title)),
			),
			g.If(len(pr.DetailImages) > 0,
				h.Div(h.Class("grid md:grid-cols-2 gap-8 mt-8"),
					g.Map(pr.DetailImages, func(src string) g.Node {
						return h.Figure(h.Class("aspect-[4/3] overflow-hidden"),
							h.Img(h.Class("size-full object-cover"), h.Src(src), h.Alt(pr.Title), g.Attr("loading", "lazy")),
						)
					}),
				),
			),
		),
		g.If(len(related) > 0,
			h.Section(h.Class("container py-24 border-t border-stone-400"),
				h.H2(h.Class("text-4xl md:text-6xl mb-16"), g.Text(p.T("More Projects"))),
				h.Div(h.Class("grid md:grid-cols-2 gap-x-8 gap-y-16"),
					g.Map(related, func(r site.Project) g.Node { return projectCard(p, r) }),
				),
			),
		),
		Footer(p),
	)
}

func projectFact(label, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Div(
		h.P(h.Class("text-sm uppercase tracking-wider text-stone-500"), g.Text(label)),
		h.P(h.Class("mt-2 text-lg"), g.Text(value)),
	)
}
