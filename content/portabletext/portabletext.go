// Package portabletext renders Portable Text, the structured rich-text
// format stored by the content backend, into HTML.
package portabletext

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// Block is one top-level Portable Text node: a text block or an image.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
	Asset    *AssetRef `json:"asset,omitempty"`
	Alt      string    `json:"alt,omitempty"`
}

// Span is a run of text with decorators and annotation keys.
type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef defines an annotation referenced from Span.Marks by key.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// AssetRef points at an uploaded asset, e.g. "image-abc-1200x800-jpg".
type AssetRef struct {
	Ref string `json:"_ref"`
	URL string `json:"url,omitempty"`
}

// Options controls rendering.
type Options struct {
	// ImageURL resolves an asset reference to a URL. Image blocks are
	// skipped when it is nil or returns "".
	ImageURL func(ref string) string
	// Classes maps a block style or list kind to a class attribute.
	Classes map[string]string
}

// DefaultClasses styles blocks for the blog post page.
var DefaultClasses = map[string]string{
	"normal":     "mb-8 text-xl leading-relaxed text-stone-800",
	"h1":         "mt-16 mb-8 text-5xl font-light text-stone-900 leading-tight",
	"h2":         "mt-12 mb-6 text-4xl font-light text-stone-900",
	"h3":         "mt-10 mb-4 text-3xl font-light text-stone-900",
	"h4":         "mt-8 mb-4 text-2xl font-medium text-stone-900",
	"blockquote": "border-l-4 border-red-orange-500 bg-stone-100 px-6 py-4 my-8 rounded-r-lg italic text-stone-800",
	"bullet":     "list-disc pl-6 my-8 space-y-2 text-xl text-stone-800",
	"number":     "list-decimal pl-6 my-8 space-y-2 text-xl text-stone-800",
	"image":      "relative w-full my-8",
}

var decorators = map[string]string{
	"strong":         "strong",
	"em":             "em",
	"code":           "code",
	"underline":      "u",
	"strike-through": "s",
}

// Component returns a templ.Component that renders blocks.
func Component(blocks []Block, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		Render(&buf, blocks, opts)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Render writes the HTML form of blocks to buf.
func Render(buf *bytes.Buffer, blocks []Block, opts Options) {
	var lists []string // open list kinds, one per nesting level

	closeLists := func(depth int) {
		for len(lists) > depth {
			buf.WriteString("</" + listTag(lists[len(lists)-1]) + ">")
			lists = lists[:len(lists)-1]
		}
	}

	for _, b := range blocks {
		switch b.Type {
		case "block":
			if b.ListItem != "" {
				level := b.Level
				if level < 1 {
					level = 1
				}
				closeLists(level)
				if len(lists) == level && lists[level-1] != b.ListItem {
					closeLists(level - 1)
				}
				for len(lists) < level {
					buf.WriteString("<" + listTag(b.ListItem) + classAttr(opts, b.ListItem) + ">")
					lists = append(lists, b.ListItem)
				}
				buf.WriteString("<li>")
				writeSpans(buf, b)
				buf.WriteString("</li>")
				continue
			}
			closeLists(0)
			tag, style := blockTag(b.Style)
			buf.WriteString("<" + tag + classAttr(opts, style) + ">")
			writeSpans(buf, b)
			buf.WriteString("</" + tag + ">")
		case "image":
			closeLists(0)
			if b.Asset == nil || b.Asset.Ref == "" || opts.ImageURL == nil {
				continue
			}
			src := SafeURL(opts.ImageURL(b.Asset.Ref))
			if src == "" {
				continue
			}
			alt := b.Alt
			if alt == "" {
				alt = " "
			}
			buf.WriteString("<figure" + classAttr(opts, "image") + ">")
			buf.WriteString(`<img src="` + src + `" alt="` + html.EscapeString(alt) + `" loading="lazy" decoding="async" class="w-full object-cover rounded-lg"/>`)
			buf.WriteString("</figure>")
		default:
			// unknown custom types have no renderer
			closeLists(0)
		}
	}
	closeLists(0)
}

// PlainText joins the text of all text blocks, one block per line.
func PlainText(blocks []Block) string {
	var lines []string
	for _, b := range blocks {
		if b.Type != "block" {
			continue
		}
		var sb strings.Builder
		for _, s := range b.Children {
			sb.WriteString(s.Text)
		}
		if line := strings.TrimSpace(sb.String()); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func writeSpans(buf *bytes.Buffer, b Block) {
	defs := make(map[string]MarkDef, len(b.MarkDefs))
	for _, d := range b.MarkDefs {
		defs[d.Key] = d
	}
	for _, s := range b.Children {
		if s.Type != "" && s.Type != "span" {
			continue
		}
		var closers []string
		for _, m := range s.Marks {
			if tag, ok := decorators[m]; ok {
				buf.WriteString("<" + tag + ">")
				closers = append(closers, "</"+tag+">")
				continue
			}
			def, ok := defs[m]
			if !ok || def.Type != "link" {
				continue
			}
			href := SafeURL(def.Href)
			if href == "" {
				continue
			}
			attrs := `href="` + href + `" class="underline decoration-2 underline-offset-4"`
			if strings.HasPrefix(def.Href, "http") {
				attrs += ` target="_blank" rel="noopener noreferrer"`
			}
			buf.WriteString("<a " + attrs + ">")
			closers = append(closers, "</a>")
		}
		text := html.EscapeString(s.Text)
		buf.WriteString(strings.ReplaceAll(text, "\n", "<br/>"))
		for i := len(closers) - 1; i >= 0; i-- {
			buf.WriteString(closers[i])
		}
	}
}

func blockTag(style string) (tag, key string) {
	switch style {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return style, style
	case "blockquote":
		return "blockquote", style
	}
	return "p", "normal"
}

func listTag(kind string) string {
	if kind == "number" {
		return "ol"
	}
	return "ul"
}

func classAttr(opts Options, key string) string {
	classes := opts.Classes
	if classes == nil {
		return ""
	}
	if c := classes[key]; c != "" {
		return ` class="` + html.EscapeString(c) + `"`
	}
	return ""
}

// SafeURL validates and sanitizes a URL for use in HTML attributes.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
