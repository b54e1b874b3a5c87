// Package content reads blog content from a Sanity-style headless content
// store and maps fetch outcomes onto the states a page renders.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultAPIVersion is the dated API version used when none is configured.
const DefaultAPIVersion = "2023-05-03"

// Config identifies a content store project.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	// BaseURL overrides the project host, e.g. for a proxy or tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries the content store over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// APIError is a non-2xx response from the content store.
type APIError struct {
	Status      int
	Type        string
	Description string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("content: query failed (%d %s): %s", e.Status, e.Type, e.Description)
	}
	return fmt.Sprintf("content: query failed (%d): %s", e.Status, e.Description)
}

// NewClient creates a Client for cfg.
func NewClient(cfg Config) *Client {
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{cfg: cfg, http: hc}
}

func (c *Client) endpoint() string {
	base := c.cfg.BaseURL
	if base == "" {
		host := "api"
		if c.cfg.UseCDN && c.cfg.Token == "" {
			host = "apicdn"
		}
		base = fmt.Sprintf("https://%s.%s.sanity.io", c.cfg.ProjectID, host)
	}
	v := strings.TrimPrefix(c.cfg.APIVersion, "v")
	return strings.TrimSuffix(base, "/") + "/v" + v + "/data/query/" + url.PathEscape(c.cfg.Dataset)
}

// Fetch runs q and decodes its result into out.
func (c *Client) Fetch(ctx context.Context, q *Query, out any) error {
	params := url.Values{}
	params.Set("query", q.GROQ())
	for name, v := range q.Params() {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("content: encode param %s: %w", name, err)
		}
		params.Set("$"+name, string(b))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint()+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := &APIError{Status: resp.StatusCode, Description: strings.TrimSpace(string(body))}
		var payload struct {
			Error struct {
				Type        string `json:"type"`
				Description string `json:"description"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error.Description != "" {
			apiErr.Type = payload.Error.Type
			apiErr.Description = payload.Error.Description
		}
		return apiErr
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("content: decode response: %w", err)
	}
	if len(envelope.Result) == 0 {
		envelope.Result = json.RawMessage("null")
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("content: decode result: %w", err)
	}
	return nil
}

// Posts returns posts matching q, newest first.
func (c *Client) Posts(ctx context.Context, q PostQuery) ([]Post, error) {
	var posts []Post
	if err := c.Fetch(ctx, PostsQuery(q), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Post returns the post with slug, or ErrNotFound.
func (c *Client) Post(ctx context.Context, slug string) (Post, error) {
	var post *Post
	if err := c.Fetch(ctx, PostQueryBySlug(slug), &post); err != nil {
		return Post{}, err
	}
	if post == nil {
		return Post{}, ErrNotFound
	}
	return *post, nil
}

// ImageURL turns "image-<id>-<w>x<h>-<ext>" into a CDN URL, optionally
// scaled to width. It returns "" for anything that is not an image ref.
func ImageURL(projectID, dataset, ref string, width int) string {
	rest, ok := strings.CutPrefix(ref, "image-")
	if !ok || projectID == "" {
		return ""
	}
	i := strings.LastIndex(rest, "-")
	if i <= 0 || i == len(rest)-1 {
		return ""
	}
	u := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s.%s", projectID, dataset, rest[:i], rest[i+1:])
	if width > 0 {
		u += fmt.Sprintf("?w=%d&auto=format", width)
	}
	return u
}
