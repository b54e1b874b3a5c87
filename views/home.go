package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/folio/carousel"
	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/motion"
	"github.com/eringen/folio/site"
)

// Home renders the landing page. Sections appear in a fixed order; the
// blog preview is a placeholder filled in by a fragment request.
// testimonial is the index of the testimonial shown first.
func Home(p Page, testimonial int) g.Node {
	return Layout(p,
		hero(p),
		intro(p),
		projects(p),
		blogPreviewSection(p),
		testimonials(p, testimonial),
		faqs(p),
		Footer(p),
	)
}

func motionAttrs(b motion.Binding, target string) g.Node {
	return g.Group{
		g.Attr("data-motion", motionJSON(b)),
		g.Attr("data-motion-target", target),
	}
}

func hero(p Page) g.Node {
	hr := p.Data.Hero
	return h.Section(h.ID("hero"),
		h.Div(h.Class("grid md:grid-cols-12 md:h-screen items-stretch sticky top-0"),
			h.Div(h.Class("md:col-span-7 flex flex-col justify-center"),
				h.Div(h.Class("container !max-w-full"),
					h.H1(h.Class("text-5xl md:text-6xl lg:text-7xl mt-40 md:mt-0"), g.Text(hr.Title)),
					h.Div(h.Class("flex flex-col md:flex-row md:items-center items-start gap-6 mt-10"),
						h.A(h.Href("#projects"), h.Class(buttonClass+" border-red-orange-500 text-red-orange-500"),
							h.Span(g.Text(hr.PrimaryCTA)),
							slidingIcon("size-5", pathDoubleDown),
						),
						h.A(h.Href("#contact"), h.Class("h-11 px-0 border-transparent uppercase inline-flex items-center relative after:absolute after:h-px after:bottom-2 after:w-0 after:bg-red-orange-500 hover:after:w-full after:transition-all after:duration-500"),
							g.Text(hr.SecondaryCTA),
						),
					),
				),
			),
			h.Div(h.Class("md:col-span-5 relative"),
				h.Div(h.Class("mt-20 md:mt-0 md:size-full md:absolute md:right-0 max-md:!w-full"),
					motionAttrs(motion.HeroWidth(), "#hero-scroll"),
					h.Img(h.Class("size-full object-cover"), h.Src(hr.Image), h.Alt(p.Data.Owner.Name)),
				),
			),
		),
		h.Div(h.ID("hero-scroll"), h.Class("md:h-[200vh]")),
	)
}

func intro(p Page) g.Node {
	return h.Section(h.ID("intro"), h.Class("py-24 md:py-32 lg:py-40 lg:mt-20 mt-12 md:mt-16"),
		h.Div(h.Class("container"),
			h.H2(h.Class("text-4xl md:text-7xl lg:w-[80%] lg:text-8xl"), g.Text(p.Data.Intro)),
		),
	)
}

func projects(p Page) g.Node {
	return h.Section(h.ID("projects"), h.Class("py-24 md:py-32 lg:py-40"),
		h.Div(h.Class("container"),
			h.H2(h.Class("text-4xl md:text-7xl lg:text-8xl mb-16 md:mb-24"), g.Text(p.T("Selected Projects"))),
			h.Div(h.Class("grid md:grid-cols-2 gap-x-8 gap-y-16 lg:gap-x-16 lg:gap-y-24"),
				g.Map(p.Data.Projects, func(pr site.Project) g.Node { return projectCard(p, pr) }),
			),
		),
	)
}

func projectCard(p Page, pr site.Project) g.Node {
	return h.A(h.Href(p.Href("/projects/"+PathEscape(pr.Slug))), h.Class("group block"),
		h.Div(h.Class("relative aspect-[4/3] overflow-hidden"),
			h.Img(h.Class("size-full object-cover group-hover:scale-105 transition-transform duration-700"),
				h.Src(pr.Image), h.Alt(pr.Title), g.Attr("loading", "lazy")),
		),
		h.Div(h.Class("mt-6 flex items-start justify-between gap-4"),
			h.Div(
				h.Span(h.Class("text-sm uppercase tracking-wider text-stone-500"), g.Text(pr.Category)),
				h.H3(h.Class("text-2xl md:text-3xl mt-2 group-hover:text-red-orange-500 transition-colors"), g.Text(pr.Title)),
			),
			icon("size-6 shrink-0 mt-8", pathArrowUpRight),
		),
	)
}

func blogPreviewSection(p Page) g.Node {
	return h.Section(h.ID("blog"), h.Class("py-24 md:py-32"),
		h.Div(h.Class("container"),
			h.Div(h.Class("flex items-end justify-between mb-16"),
				h.H2(h.Class("text-4xl md:text-7xl lg:text-8xl"), g.Text(p.T("Latest from the blog"))),
				h.A(h.Href(p.Href("/blog")), h.Class("hidden md:inline-flex items-center gap-2 uppercase hover:text-red-orange-500 transition-colors"),
					g.Text(p.T("View all posts")), icon("size-5", pathArrowRight)),
			),
			Loading(p, p.Fragment("/blog-preview"), 3),
		),
	)
}

func testimonials(p Page, index int) g.Node {
	return h.Section(h.ID("testimonials"), h.Class("py-24 md:py-32 lg:py-40"),
		h.H2(h.Class("flex flex-col overflow-hidden lg:text-8xl md:text-7xl text-4xl"),
			h.Span(h.Class("whitespace-nowrap will-change-transform"),
				motionAttrs(motion.TitleBand(false), "#testimonials"),
				g.Text(p.T("Some nice words from my past clients")),
			),
			h.Span(h.Class("whitespace-nowrap text-red-orange-500 self-end will-change-transform"),
				motionAttrs(motion.TitleBand(true), "#testimonials"),
				g.Text(p.T("Some nice words from my past clients")),
			),
		),
		h.Div(h.Class("container"),
			h.Div(h.ID("testimonial-stage"), h.Class("mt-20 relative"), g.Attr("style", StageStyle),
				Testimonial(p, index, carousel.Visible),
			),
		),
	)
}

func faqs(p Page) g.Node {
	return h.Section(h.ID("faqs"), h.Class("py-24 md:py-32 lg:py-40"),
		h.Div(h.Class("container"),
			h.H2(h.Class("text-4xl md:text-7xl lg:text-8xl"), g.Text(p.T("Frequently asked questions"))),
			h.Div(h.Class("mt-10 md:mt-16 lg:mt-20"),
				g.Map(p.Data.FAQs, func(f site.FAQ) g.Node {
					return h.Details(h.Class("group border-t border-stone-400 border-dotted py-6 md:py-8 lg:py-10 last:border-b"),
						h.Summary(h.Class("list-none cursor-pointer flex items-center justify-between gap-4"),
							h.Span(h.Class("text-2xl md:text-3xl lg:text-4xl"), g.Text(f.Question)),
							h.Span(h.Class("inline-flex items-center justify-center size-11 border border-stone-400 rounded-full shrink-0 group-open:rotate-45 transition-transform duration-300"),
								g.Text("+")),
						),
						markdown.Paragraph("text-xl mt-4 md:w-3/4", f.Answer),
					)
				}),
			),
		),
	)
}
