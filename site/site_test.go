package site

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	require.Len(t, d.Testimonials, 3)
	assert.Equal(t, "Ryan Pratama", d.Testimonials[0].Name)
	assert.Equal(t, "Craft Coffee Co.", d.Testimonials[1].Company)
	assert.InDelta(t, 0.55, d.Testimonials[2].ImagePositionY, 1e-9)

	require.Len(t, d.Projects, 3)
	assert.Equal(t, "craft-coffee-website", d.Projects[0].Slug)
	assert.Len(t, d.Projects[0].DetailImages, 2)

	assert.Equal(t, "en", d.Languages[0].Code)
	assert.NotEmpty(t, d.FAQs)
	assert.NotEmpty(t, d.Nav)
}

func TestProjectLookup(t *testing.T) {
	d := MustLoad()

	p, ok := d.Project("pixel-perfect-design-system")
	require.True(t, ok)
	assert.Equal(t, "Pixel Perfect", p.Client)

	_, ok = d.Project("nope")
	assert.False(t, ok)
}

func TestRelatedProjects(t *testing.T) {
	d := MustLoad()

	related := d.RelatedProjects("craft-coffee-website", 2)
	require.Len(t, related, 2)
	for _, p := range related {
		assert.NotEqual(t, "craft-coffee-website", p.Slug)
	}

	assert.Len(t, d.RelatedProjects("unknown", 2), 2)
	assert.Empty(t, d.RelatedProjects("craft-coffee-website", 0))
}

func TestLanguageFallback(t *testing.T) {
	d := MustLoad()
	assert.Equal(t, "Russian", d.Language("ru").Name)
	assert.Equal(t, "English", d.Language("xx").Name)
}

const minimal = `
owner: {name: A, email: a@example.com}
hero: {title: T, image: /x.png}
intro: hi
languages: [{code: en, name: English}]
testimonials:
  - {name: N, company: C, role: R, quote: Q, image: /t.png, imagePositionY: %s}
projects:
  - {id: 1, title: P, slug: %s, description: D, image: /p.png}
`

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		posY    string
		slug    string
		wantErr bool
	}{
		{"valid", "0.5", "my-project", false},
		{"focal point above range", "1.5", "my-project", true},
		{"negative focal point", "-0.1", "my-project", true},
		{"bad slug", "0.5", "My Project", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(fmt.Sprintf(minimal, tt.posY, tt.slug))
			_, err := Parse(src)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseRejectsDuplicateSlugs(t *testing.T) {
	src := `
owner: {name: A, email: a@example.com}
hero: {title: T, image: /x.png}
intro: hi
languages: [{code: en, name: English}]
testimonials:
  - {name: N, company: C, role: R, quote: Q, image: /t.png}
projects:
  - {id: 1, title: P, slug: same, description: D, image: /p.png}
  - {id: 2, title: Q, slug: same, description: D, image: /q.png}
`
	_, err := Parse([]byte(src))
	assert.Error(t, err)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("owner: {name: A, email: a@example.com}\nbogus: 1\n"))
	assert.Error(t, err)
}
