package content

import "errors"

// State is what a content section shows.
type State int

const (
	Loading State = iota
	Ready
	Empty
	Failed
	NotFound
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	case NotFound:
		return "not-found"
	}
	return "unknown"
}

// Load is the settled outcome of a content fetch.
type Load struct {
	State State
	Posts []Post
	Post  Post
	Err   error
}

// Settle maps a list fetch onto a state. An empty list is Empty, never
// Failed.
func Settle(posts []Post, err error) Load {
	switch {
	case err != nil:
		return Load{State: Failed, Err: err}
	case len(posts) == 0:
		return Load{State: Empty}
	}
	return Load{State: Ready, Posts: posts}
}

// SettleOne maps a single-item fetch onto a state.
func SettleOne(post Post, err error) Load {
	switch {
	case errors.Is(err, ErrNotFound):
		return Load{State: NotFound, Err: err}
	case err != nil:
		return Load{State: Failed, Err: err}
	}
	return Load{State: Ready, Post: post}
}
