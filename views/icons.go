package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Outline icon paths (24x24, stroke 1.5).
const (
	pathArrowLeft    = "M10.5 19.5 3 12m0 0 7.5-7.5M3 12h18"
	pathArrowRight   = "M13.5 4.5 21 12m0 0-7.5 7.5M21 12H3"
	pathArrowUpRight = "m4.5 19.5 15-15m0 0H8.25m11.25 0v11.25"
	pathChevronDown  = "m19.5 8.25-7.5 7.5-7.5-7.5"
	pathDoubleDown   = "m4.5 5.25 7.5 7.5 7.5-7.5m-15 6 7.5 7.5 7.5-7.5"
	pathPhoto        = "m2.25 15.75 5.159-5.159a2.25 2.25 0 0 1 3.182 0l5.159 5.159m-1.5-1.5 1.409-1.409a2.25 2.25 0 0 1 3.182 0l2.909 2.909m-18 3.75h16.5a1.5 1.5 0 0 0 1.5-1.5V6a1.5 1.5 0 0 0-1.5-1.5H3.75A1.5 1.5 0 0 0 2.25 6v12a1.5 1.5 0 0 0 1.5 1.5Zm10.5-11.25h.008v.008h-.008V8.25Zm.375 0a.375.375 0 1 1-.75 0 .375.375 0 0 1 .75 0Z"
	pathWarning      = "M12 9v3.75m-9.303 3.376c-.866 1.5.217 3.374 1.948 3.374h14.71c1.73 0 2.813-1.874 1.948-3.374L13.949 3.378c-.866-1.5-3.032-1.5-3.898 0L2.697 16.126ZM12 15.75h.007v.008H12v-.008Z"
	pathDocument     = "M19.5 14.25v-2.625a3.375 3.375 0 0 0-3.375-3.375h-1.5A1.125 1.125 0 0 1 13.5 7.125v-1.5a3.375 3.375 0 0 0-3.375-3.375H8.25m2.25 0H5.625c-.621 0-1.125.504-1.125 1.125v17.25c0 .621.504 1.125 1.125 1.125h12.75c.621 0 1.125-.504 1.125-1.125V11.25a9 9 0 0 0-9-9Z"
	pathMail         = "M21.75 6.75v10.5a2.25 2.25 0 0 1-2.25 2.25h-15a2.25 2.25 0 0 1-2.25-2.25V6.75m19.5 0A2.25 2.25 0 0 0 19.5 4.5h-15a2.25 2.25 0 0 0-2.25 2.25m19.5 0v.243a2.25 2.25 0 0 1-1.07 1.916l-7.5 4.615a2.25 2.25 0 0 1-2.36 0L3.32 8.91a2.25 2.25 0 0 1-1.07-1.916V6.75"
)

func icon(class, d string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("fill", "none"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("stroke-width", "1.5"),
		g.Attr("stroke", "currentColor"),
		g.Attr("aria-hidden", "true"),
		h.Class(class),
		g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("d", d),
		),
	)
}

// sliding icon used on call-to-action buttons: two copies side by side,
// shifted on hover.
func slidingIcon(size, d string) g.Node {
	return h.Div(h.Class("overflow-hidden "+size),
		h.Div(h.Class("flex w-[200%] h-full group-hover/button:-translate-x-1/2 transition-transform duration-500"),
			icon(size, d),
			icon(size, d),
		),
	)
}

func menuIcon() g.Node {
	return g.El("svg",
		g.Attr("width", "24"),
		g.Attr("height", "24"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("aria-hidden", "true"),
		g.El("rect", h.Class("menu-line-top"), g.Attr("x", "3"), g.Attr("y", "7"), g.Attr("width", "18"), g.Attr("height", "2"), g.Attr("fill", "currentColor")),
		g.El("rect", h.Class("menu-line-bottom"), g.Attr("x", "3"), g.Attr("y", "15"), g.Attr("width", "18"), g.Attr("height", "2"), g.Attr("fill", "currentColor")),
	)
}
