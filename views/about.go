package views

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/motion"
)

// About renders the about page.
func About(p Page) g.Node {
	a := p.Data.About
	owner := p.Data.Owner
	return Layout(p,
		h.Div(h.ID("about"), h.Class("min-h-screen bg-white"),
			h.Div(h.Class("container mx-auto pt-40 pb-24"),
				h.A(h.Href(p.Href("/")), h.Class("flex items-center text-base hover:text-red-orange-500 transition-colors mb-16"),
					icon("size-5 mr-2", pathArrowLeft), g.Text(p.T("Back to home"))),
				h.Span(h.Class("text-sm uppercase tracking-wider text-stone-500 mb-4 block"), g.Text(p.T("About"))),
				h.H1(h.Class("text-5xl md:text-7xl lg:text-8xl font-light mb-6"), g.Text(owner.Name)),
				h.P(h.Class("text-xl md:text-2xl text-stone-600 mb-10 max-w-2xl"), g.Text(a.Tagline)),
			),
			h.Div(h.Class("container mx-auto"),
				h.Div(h.Class("grid lg:grid-cols-5 gap-16"),
					h.Div(h.Class("lg:col-span-3 order-2 lg:order-1"),
						h.Div(h.Class("max-w-2xl text-lg space-y-6 text-stone-800"),
							g.Map(a.Bio, func(s string) g.Node { return markdown.Paragraph("", s) }),
						),
						h.Div(h.Class("my-16 border-t border-stone-200 pt-16"),
							h.H2(h.Class("text-2xl mb-8 font-light"), g.Text(p.T("Technical Expertise"))),
							h.Ul(h.Class("grid grid-cols-2 md:grid-cols-3 gap-y-6 gap-x-4"),
								g.Map(a.Skills, func(s string) g.Node {
									return h.Li(h.Class("flex items-center"),
										h.Span(h.Class("block h-[6px] w-[6px] rounded-full bg-blue-500 mr-3")),
										h.Span(g.Text(s)),
									)
								}),
							),
						),
					),
					h.Div(h.Class("lg:col-span-2 order-1 lg:order-2"),
						h.Div(h.Class("sticky top-40"),
							motionAttrs(motion.Parallax(), "#about"),
							h.Div(h.Class("overflow-hidden"),
								h.Img(h.Class("w-full h-auto object-cover"), h.Src(a.Image), h.Alt(owner.Name),
									g.Attr("width", "800"), g.Attr("height", "1000")),
							),
						),
					),
				),
				g.If(len(a.Approach) > 0,
					h.Div(h.Class("my-32 max-w-3xl"),
						h.Div(h.Class("h-[1px] w-24 bg-stone-300 mb-16")),
						h.H2(h.Class("text-2xl font-light mb-8"), g.Text(p.T("My Approach"))),
						h.Div(h.Class("space-y-6 text-lg text-stone-800"),
							g.Map(a.Approach, func(s string) g.Node { return markdown.Paragraph("", s) }),
						),
					),
				),
				h.Div(h.Class("my-32 border-t border-stone-200 pt-16"),
					h.H2(h.Class("text-2xl font-light mb-12"), g.Text(p.T("Get In Touch"))),
					h.Div(h.Class("flex flex-col md:flex-row gap-8 items-start"),
						h.A(h.Href("mailto:"+owner.Email),
							h.Class("px-8 py-4 border border-stone-900 bg-stone-900 text-white hover:bg-stone-800 transition-all flex items-center"),
							icon("size-5 mr-3", pathMail), g.Text(owner.Email)),
						g.If(owner.GitHub != "", externalLink(owner.GitHub, "GitHub")),
						g.If(owner.LinkedIn != "", externalLink(owner.LinkedIn, "LinkedIn")),
					),
				),
			),
			h.Div(h.Class("container mx-auto border-t border-stone-200 py-12 mt-16 mb-8"),
				h.P(h.Class("text-sm text-stone-500"),
					g.Textf("© %d %s. %s", time.Now().Year(), owner.Name, p.T("All rights reserved."))),
			),
		),
	)
}

func externalLink(href, label string) g.Node {
	return h.A(h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer"),
		h.Class("px-8 py-4 border border-stone-200 hover:border-stone-900 transition-all flex items-center"),
		g.Text(label),
	)
}
