package content

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Query builds a GROQ query: a document filter, an ordering, an optional
// slice and a projection.
type Query struct {
	docType string
	where   []string
	order   []string
	from    int
	to      int
	sliced  bool
	first   bool
	fields  []string
	params  map[string]any
}

// NewQuery starts a query over documents of docType.
func NewQuery(docType string) *Query {
	return &Query{docType: docType, params: map[string]any{}}
}

// Where adds a filter condition, ANDed with the others.
func (q *Query) Where(cond string) *Query {
	q.where = append(q.where, cond)
	return q
}

// Param binds $name to v.
func (q *Query) Param(name string, v any) *Query {
	q.params[name] = v
	return q
}

// OrderBy appends an ordering expression such as "publishedAt desc".
func (q *Query) OrderBy(expr string) *Query {
	q.order = append(q.order, expr)
	return q
}

// Slice keeps results in [from, to).
func (q *Query) Slice(from, to int) *Query {
	q.from, q.to, q.sliced, q.first = from, to, true, false
	return q
}

// First selects a single document; the result is null when nothing matches.
func (q *Query) First() *Query {
	q.first, q.sliced = true, false
	return q
}

// Project sets the projected fields.
func (q *Query) Project(fields ...string) *Query {
	q.fields = append(q.fields, fields...)
	return q
}

// Params returns the bound parameters.
func (q *Query) Params() map[string]any { return q.params }

// GROQ renders the query text.
func (q *Query) GROQ() string {
	var b strings.Builder
	b.WriteString(`*[_type == ` + strconv.Quote(q.docType))
	for _, w := range q.where {
		b.WriteString(" && " + w)
	}
	b.WriteString("]")
	if len(q.order) > 0 {
		b.WriteString(" | order(" + strings.Join(q.order, ", ") + ")")
	}
	switch {
	case q.first:
		b.WriteString("[0]")
	case q.sliced:
		b.WriteString("[" + strconv.Itoa(q.from) + "..." + strconv.Itoa(q.to) + "]")
	}
	if len(q.fields) > 0 {
		b.WriteString("{" + strings.Join(q.fields, ", ") + "}")
	}
	return b.String()
}

// Key identifies the query and its parameters, for caching.
func (q *Query) Key() string {
	names := make([]string, 0, len(q.params))
	for n := range q.params {
		names = append(names, n)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(q.GROQ())
	for _, n := range names {
		v, _ := json.Marshal(q.params[n])
		b.WriteString(" $" + n + "=" + string(v))
	}
	return b.String()
}

var (
	summaryFields = []string{
		"_id",
		"title",
		`"slug": slug.current`,
		"publishedAt",
		"excerpt",
		`"mainImage": mainImage{"url": asset->url, alt}`,
		`"categories": categories[]->{_id, title}`,
		`"author": author->{name, "image": image.asset->url}`,
	}
	detailFields = append(append([]string{}, summaryFields[:len(summaryFields)-1]...),
		"body",
		`"author": author->{name, "image": image.asset->url, bio}`,
	)
)

// PostsQuery builds the listing query for q.
func PostsQuery(q PostQuery) *Query {
	query := NewQuery("post").OrderBy("publishedAt desc").Project(summaryFields...)
	if q.Locale != "" {
		query.Where("(!defined(language) || language == $lang)").Param("lang", q.Locale)
	}
	if q.Limit > 0 {
		query.Slice(0, q.Limit)
	}
	return query
}

// PostQueryBySlug builds the detail query for one post.
func PostQueryBySlug(slug string) *Query {
	return NewQuery("post").
		Where("slug.current == $slug").
		Param("slug", slug).
		First().
		Project(detailFields...)
}
