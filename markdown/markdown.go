// Package markdown renders the light inline markup used in the site's
// authored copy: strong and emphasised text, inline code and links.
// Block structure comes from the data layout, so there are no headings,
// lists or tables here.
package markdown

import (
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`_([^_]+)_`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// LinkClass styles links in rendered copy.
const LinkClass = "underline decoration-2 underline-offset-4 hover:text-red-orange-500 transition-colors"

// Inline returns s as HTML with its inline markup applied. Everything else
// is escaped.
func Inline(s string) string {
	escaped := html.EscapeString(s)
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `class="` + LinkClass + `"`
		if isExternal(href) {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `" ` + attrs + `>` + match[1] + `</a>`
	})
	// Code spans are swapped for placeholders so emphasis never applies
	// inside them.
	var code []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		code = append(code, "<code>"+match[1]+"</code>")
		return "\x00IC" + strconv.Itoa(len(code)-1) + "\x00"
	})
	escaped = applyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})
	for i, c := range code {
		escaped = strings.Replace(escaped, "\x00IC"+strconv.Itoa(i)+"\x00", c, 1)
	}
	return escaped
}

// Node renders s as a gomponents node.
func Node(s string) g.Node {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return g.Raw(Inline(s))
}

// Paragraph renders s as one <p> with class, or nothing when s is blank.
func Paragraph(class, s string) g.Node {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return h.P(g.If(class != "", h.Class(class)), Node(s))
}

// applyOutsideTags applies fn only to text outside HTML tags, so the
// emphasis patterns never touch attribute values such as hrefs.
func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// SafeURL validates a link target from authored copy and returns it escaped
// for an attribute, or "" when the scheme is not allowed.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
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
	}
	return ""
}
