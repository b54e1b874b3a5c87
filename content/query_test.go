package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryGROQ(t *testing.T) {
	q := NewQuery("post").
		Where("defined(slug.current)").
		OrderBy("publishedAt desc").
		Slice(0, 3).
		Project("_id", "title")
	assert.Equal(t, `*[_type == "post" && defined(slug.current)] | order(publishedAt desc)[0...3]{_id, title}`, q.GROQ())
}

func TestQueryFirstOverridesSlice(t *testing.T) {
	q := NewQuery("post").Slice(0, 10).First()
	assert.Equal(t, `*[_type == "post"][0]`, q.GROQ())
}

func TestQueryKeyIncludesParams(t *testing.T) {
	a := PostQueryBySlug("one")
	b := PostQueryBySlug("two")
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), PostQueryBySlug("one").Key())
	assert.Contains(t, a.Key(), `$slug="one"`)
}

func TestPostsQueryNoLimit(t *testing.T) {
	q := PostsQuery(PostQuery{})
	assert.NotContains(t, q.GROQ(), "...")
	assert.NotContains(t, q.GROQ(), "$lang")
	assert.Empty(t, q.Params())
}

func TestDetailQueryProjectsBody(t *testing.T) {
	groq := PostQueryBySlug("x").GROQ()
	assert.Contains(t, groq, "slug.current == $slug")
	assert.Contains(t, groq, "body")
	assert.Contains(t, groq, "bio")
	assert.Contains(t, groq, "[0]{")
}
