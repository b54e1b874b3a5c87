package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/folio/carousel"
	"github.com/eringen/folio/site"
)

// StageStyle carries the exit duration to the stylesheet so the incoming
// testimonial starts entering once the outgoing one has left.
var StageStyle = fmt.Sprintf("--testimonial-exit:%dms", carousel.ExitDuration.Milliseconds())

// Testimonial renders the stage content for the testimonial at index: the
// card and the previous/next controls. The home page renders it visible.
func Testimonial(p Page, index int, phase carousel.Phase) g.Node {
	items := p.Data.Testimonials
	if len(items) == 0 {
		return nil
	}
	if index < 0 || index >= len(items) {
		index = 0
	}
	return g.Group{
		testimonialCard(items[index], phase),
		testimonialControls(p, index),
	}
}

// TestimonialStage renders every mounted entry of a step: exiting cards
// first, then the incoming card, then the controls for index. The browser
// drops each exiting card when its exit animation ends.
func TestimonialStage(p Page, entries []*carousel.Presence, index int) g.Node {
	items := p.Data.Testimonials
	if len(items) == 0 {
		return nil
	}
	if index < 0 || index >= len(items) {
		index = 0
	}
	var cards g.Group
	for _, e := range entries {
		for _, t := range items {
			if t.Name == e.Key {
				cards = append(cards, testimonialCard(t, e.Phase()))
				break
			}
		}
	}
	return g.Group{cards, testimonialControls(p, index)}
}

func testimonialCard(t site.Testimonial, phase carousel.Phase) g.Node {
	return h.Div(h.Class("testimonial grid md:grid-cols-5 md:gap-8 lg:gap-16 md:items-center"),
		g.Attr("data-key", t.Name),
		g.Attr("data-phase", phase.String()),
		g.If(phase == carousel.Exiting, h.Aria("hidden", "true")),
		h.Div(h.Class("aspect-square md:aspect-[9/16] md:col-span-2 overflow-hidden"),
			h.Img(h.Class("size-full object-cover"),
				h.Src(t.Image), h.Alt(t.Name),
				g.Attr("style", fmt.Sprintf("object-position: 50%% %s%%", strconv.FormatFloat(t.ImagePositionY*100, 'f', -1, 64))),
			),
		),
		g.El("blockquote", h.Class("md:col-span-3"),
			h.Div(h.Class("text-3xl md:text-5xl lg:text-6xl mt-8 md:mt-0"),
				h.Span(g.Text("“")),
				h.Span(g.Text(t.Quote)),
				h.Span(g.Text("”")),
			),
			g.El("cite", h.Class("mt-4 md:mt-8 not-italic block md:text-lg lg:text-xl"),
				g.Textf("%s, %s at %s", t.Name, t.Role, t.Company),
			),
		),
	)
}

func testimonialControls(p Page, index int) g.Node {
	return h.Div(h.Class("mt-6 lg:mt-10 flex gap-4"),
		testimonialControl(p, index, "prev", p.T("Previous testimonial"), pathArrowLeft),
		testimonialControl(p, index, "next", p.T("Next testimonial"), pathArrowRight),
		h.Span(h.Class("sr-only"), g.Attr("aria-live", "polite"),
			g.Textf("%d / %d", index+1, len(p.Data.Testimonials))),
	)
}

// testimonialControl steps the carousel. Without script it is a plain link
// that reloads the home page on the target testimonial.
func testimonialControl(p Page, from int, step, label, iconPath string) g.Node {
	c, err := carousel.New(len(p.Data.Testimonials))
	if err != nil {
		return nil
	}
	c.Seek(from)
	target := c.Step(step)
	return h.A(
		h.Href(p.Href("/")+"?t="+strconv.Itoa(target)+"#testimonials"),
		hx.Get(testimonialURL(p, from, step)),
		hx.Target("#testimonial-stage"),
		hx.Swap("innerHTML"),
		h.Aria("label", label),
		h.Class("border border-stone-400 hover:bg-red-orange-500 hover:text-white hover:border-red-orange-500 transition-all duration-300 size-11 inline-flex items-center justify-center rounded-full"),
		icon("size-6", iconPath),
	)
}

// testimonialURL is the fragment that steps the carousel from index.
func testimonialURL(p Page, from int, step string) string {
	return p.Fragment("/testimonials?from=" + strconv.Itoa(from) + "&step=" + step)
}
