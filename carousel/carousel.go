// Package carousel holds the index state of a cyclic slideshow and the
// presence phases of the entries it displays.
package carousel

import "errors"

// ErrEmpty is returned when a carousel is created over zero entries.
var ErrEmpty = errors.New("carousel: no entries")

// Carousel tracks which single entry of a fixed list is current.
// The index always stays in [0, Len()).
type Carousel struct {
	n     int
	index int
}

// New creates a Carousel over n entries, starting at index 0.
func New(n int) (*Carousel, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	return &Carousel{n: n}, nil
}

// Len returns the number of entries.
func (c *Carousel) Len() int { return c.n }

// Index returns the current index.
func (c *Carousel) Index() int { return c.index }

// Advance moves to the next entry, wrapping from the last to the first.
func (c *Carousel) Advance() int {
	c.index = (c.index + 1) % c.n
	return c.index
}

// Retreat moves to the previous entry, wrapping from the first to the last.
func (c *Carousel) Retreat() int {
	c.index = (c.index - 1 + c.n) % c.n
	return c.index
}

// Seek sets the index from an arbitrary integer, reduced modulo Len.
// Negative values count back from the end.
func (c *Carousel) Seek(i int) int {
	c.index = ((i % c.n) + c.n) % c.n
	return c.index
}

// Reset returns to the first entry.
func (c *Carousel) Reset() { c.index = 0 }

// Step applies a named transition: "next" advances, "prev" retreats and
// anything else leaves the index unchanged.
func (c *Carousel) Step(dir string) int {
	switch dir {
	case "next":
		return c.Advance()
	case "prev":
		return c.Retreat()
	}
	return c.index
}

// Current returns the entry of items at the carousel's index.
// items must have exactly c.Len() entries.
func Current[T any](c *Carousel, items []T) T {
	return items[c.index]
}
