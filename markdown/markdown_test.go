package markdown

import (
	"strings"
	"testing"
)

func TestInlineEmphasis(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"**a** and *b*", "<strong>a</strong> and <em>b</em>"},
		{"plain text", "plain text"},
	}
	for _, tt := range tests {
		got := Inline(tt.input)
		if got != tt.expected {
			t.Errorf("Inline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestInlineCodeKeepsMarkup(t *testing.T) {
	got := Inline("run `go_test **now**` today")
	want := "run <code>go_test **now**</code> today"
	if got != want {
		t.Errorf("Inline = %q, want %q", got, want)
	}
}

func TestInlineEscapesHTML(t *testing.T) {
	got := Inline(`<script>alert("x")</script> & more`)
	if strings.Contains(got, "<script>") {
		t.Errorf("Inline did not escape tags: %q", got)
	}
	if !strings.Contains(got, "&amp; more") {
		t.Errorf("Inline did not escape ampersand: %q", got)
	}
}

func TestInlineLinks(t *testing.T) {
	tests := []struct {
		input    string
		contains []string
		absent   []string
	}{
		{
			"see [my work](https://example.com/a_b_c)",
			[]string{`href="https://example.com/a_b_c"`, `target="_blank"`, `rel="noopener noreferrer"`, ">my work</a>"},
			[]string{"<em>"},
		},
		{
			"read [about me](/about)",
			[]string{`href="/about"`, ">about me</a>"},
			[]string{"target="},
		},
		{
			"[mail](mailto:hi@example.com)",
			[]string{`href="mailto:hi@example.com"`},
			nil,
		},
		{
			"[x](javascript:void)",
			[]string{"x"},
			[]string{"<a", "javascript"},
		},
	}
	for _, tt := range tests {
		got := Inline(tt.input)
		for _, s := range tt.contains {
			if !strings.Contains(got, s) {
				t.Errorf("Inline(%q) = %q, missing %q", tt.input, got, s)
			}
		}
		for _, s := range tt.absent {
			if strings.Contains(got, s) {
				t.Errorf("Inline(%q) = %q, should not contain %q", tt.input, got, s)
			}
		}
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"/blog?a=1&b=2", "/blog?a=1&amp;b=2"},
		{"#faqs", "#faqs"},
		{"tel:+123", "tel:+123"},
		{"javascript:alert(1)", ""},
		{"data:text/html,x", ""},
		{"example.com", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		got := SafeURL(tt.input)
		if got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParagraph(t *testing.T) {
	if Paragraph("lead", "   ") != nil {
		t.Error("Paragraph of blank copy should render nothing")
	}
	var b strings.Builder
	if err := Paragraph("lead", "I build **fast** sites.").Render(&b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<p class="lead">I build <strong>fast</strong> sites.</p>`
	if b.String() != want {
		t.Errorf("Paragraph = %q, want %q", b.String(), want)
	}
}
