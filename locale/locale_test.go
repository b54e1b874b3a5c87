package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"ru-RU,ru;q=0.9,en;q=0.8", "ru"},
		{"en-US,en;q=0.9", "en"},
		{"de-DE", "en"},
		{"de;q=0.9,ru;q=0.5", "ru"},
		{"garbage;;q", "en"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(tt.header), tt.header)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path, loc, rest string
	}{
		{"/ru/blog", "ru", "/blog"},
		{"/ru", "ru", "/"},
		{"/en/", "en", "/"},
		{"/blog/x", "", "/blog/x"},
		{"/russia", "", "/russia"},
		{"/", "", "/"},
		{"about", "", "/about"},
	}
	for _, tt := range tests {
		loc, rest := Split(tt.path)
		assert.Equal(t, tt.loc, loc, tt.path)
		assert.Equal(t, tt.rest, rest, tt.path)
	}
}

func TestSwitchPath(t *testing.T) {
	tests := []struct {
		path, locale, want string
	}{
		{"/en/about", "ru", "/ru/about"},
		{"/about", "ru", "/ru/about"},
		{"/", "ru", "/ru"},
		{"/ru", "en", "/en"},
		{"/ru/blog/hello", "en", "/en/blog/hello"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SwitchPath(tt.path, tt.locale), tt.path)
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "", Prefix("en"))
	assert.Equal(t, "", Prefix(""))
	assert.Equal(t, "/ru", Prefix("ru"))
}

func TestPrinter(t *testing.T) {
	assert.Equal(t, "Блог", Printer("ru").Sprintf("Blog"))
	assert.Equal(t, "Blog", Printer("en").Sprintf("Blog"))
	assert.Equal(t, "Blog", Printer("xx").Sprintf("Blog"))
	assert.Equal(t, "Untranslated", Printer("ru").Sprintf("Untranslated"))
}
