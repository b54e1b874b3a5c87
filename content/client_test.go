package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{ProjectID: "proj", Dataset: "production", BaseURL: srv.URL, Token: "secret", HTTPClient: srv.Client()})
}

func TestClientPosts(t *testing.T) {
	var gotPath, gotQuery, gotLang, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotLang = r.URL.Query().Get("$lang")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ms":3,"result":[
			{"_id":"a","title":"First","slug":"first","publishedAt":"2024-03-05T10:00:00Z",
			 "mainImage":{"url":"https://cdn.example.com/a.jpg","alt":"A"},
			 "categories":[{"_id":"c1","title":"Design"}],"author":{"name":"Jane"}},
			{"_id":"b","title":"Second"}
		]}`))
	})

	posts, err := c.Posts(context.Background(), PostQuery{Limit: 3, Locale: "en"})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "/v2023-05-03/data/query/production", gotPath)
	assert.Contains(t, gotQuery, `*[_type == "post" && (!defined(language) || language == $lang)]`)
	assert.Contains(t, gotQuery, "| order(publishedAt desc)[0...3]")
	assert.Equal(t, `"en"`, gotLang)
	assert.Equal(t, "Bearer secret", gotAuth)

	assert.Equal(t, "First", posts[0].Title)
	assert.Equal(t, "https://cdn.example.com/a.jpg", posts[0].MainImage.URL)
	assert.Equal(t, "Design", posts[0].Categories[0].Title)
	assert.Equal(t, "Jane", posts[0].Author.Name)
	assert.Nil(t, posts[1].MainImage)
	assert.Nil(t, posts[1].Author)
}

func TestClientPostsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}`))
	})
	posts, err := c.Posts(context.Background(), PostQuery{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestClientPostBySlug(t *testing.T) {
	var gotSlug string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSlug = r.URL.Query().Get("$slug")
		w.Write([]byte(`{"result":{"_id":"a","title":"Hello","slug":"hello",
			"body":[{"_type":"block","children":[{"_type":"span","text":"Hi"}]}]}}`))
	})
	post, err := c.Post(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, gotSlug)
	assert.Equal(t, "Hello", post.Title)
	require.Len(t, post.Body, 1)
	assert.Equal(t, "Hi", post.Body[0].Children[0].Text)
}

func TestClientPostNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	})
	_, err := c.Post(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"unexpected token","type":"queryParseError"}}`))
	})
	_, err := c.Posts(context.Background(), PostQuery{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "queryParseError", apiErr.Type)
	assert.Contains(t, err.Error(), "unexpected token")
}

func TestClientPlainTextError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	_, err := c.Posts(context.Background(), PostQuery{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream down", apiErr.Description)
}

func TestClientMalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	_, err := c.Posts(context.Background(), PostQuery{})
	assert.Error(t, err)
}

func TestClientContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Posts(ctx, PostQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEndpointHosts(t *testing.T) {
	c := NewClient(Config{ProjectID: "p1", UseCDN: true})
	assert.Equal(t, "https://p1.apicdn.sanity.io/v2023-05-03/data/query/production", c.endpoint())

	c = NewClient(Config{ProjectID: "p1", UseCDN: true, Token: "t", APIVersion: "v2021-10-21", Dataset: "staging"})
	assert.Equal(t, "https://p1.api.sanity.io/v2021-10-21/data/query/staging", c.endpoint())
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		ref   string
		width int
		want  string
	}{
		{"image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg", 0, "https://cdn.sanity.io/images/p1/production/Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000.jpg"},
		{"image-abc-10x10-png", 600, "https://cdn.sanity.io/images/p1/production/abc-10x10.png?w=600&auto=format"},
		{"file-abc-pdf", 0, ""},
		{"image-", 0, ""},
		{"image-abc-", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ImageURL("p1", "production", tt.ref, tt.width), tt.ref)
	}
}
