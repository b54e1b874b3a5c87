package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func errorPage(p Page, code, title, linkLabel string) g.Node {
	return Layout(p,
		h.Section(h.Class("container min-h-screen flex flex-col items-start justify-center"),
			h.P(h.Class("text-sm uppercase tracking-wider text-stone-500"), g.Text(code)),
			h.H1(h.Class("text-5xl md:text-7xl lg:text-8xl font-light mt-4"), g.Text(title)),
			h.A(h.Href(p.Href("/")), h.Class(buttonClass+" mt-12 border-stone-900"),
				icon("size-5", pathArrowLeft), g.Text(linkLabel)),
		),
	)
}

// NotFound renders the 404 page.
func NotFound(p Page) g.Node {
	return errorPage(p, "404", p.T("Page not found"), p.T("Back to home"))
}

// ProjectNotFound renders the 404 page for an unknown project slug.
func ProjectNotFound(p Page) g.Node {
	return errorPage(p, "404", p.T("Project not found"), p.T("Back to home"))
}

// ServerError renders the 500 page.
func ServerError(p Page) g.Node {
	return errorPage(p, "500", p.T("Something went wrong"), p.T("Back to home"))
}
