package carousel

import (
	"errors"
	"fmt"
	"time"
)

// ExitDuration is how long an entry keeps its exit transition before it may
// be removed from the display list.
const ExitDuration = 500 * time.Millisecond

// ErrTransition is returned for a presence change that is not allowed from
// the current phase.
var ErrTransition = errors.New("carousel: invalid presence transition")

// Phase is the display phase of one mounted entry.
type Phase int

const (
	Entering Phase = iota
	Visible
	Exiting
	Removed
)

func (p Phase) String() string {
	switch p {
	case Entering:
		return "entering"
	case Visible:
		return "visible"
	case Exiting:
		return "exiting"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Presence follows one entry through entering, visible, exiting and removed.
type Presence struct {
	Key   string
	phase Phase
}

// Mount starts a Presence in the Entering phase.
func Mount(key string) *Presence {
	return &Presence{Key: key, phase: Entering}
}

// Phase returns the current phase.
func (p *Presence) Phase() Phase { return p.phase }

// Entered marks the entrance transition as finished.
func (p *Presence) Entered() error {
	if p.phase != Entering {
		return fmt.Errorf("%w: entered from %s", ErrTransition, p.phase)
	}
	p.phase = Visible
	return nil
}

// Leave starts the exit transition. An entry may leave while still entering.
func (p *Presence) Leave() error {
	if p.phase != Entering && p.phase != Visible {
		return fmt.Errorf("%w: leave from %s", ErrTransition, p.phase)
	}
	p.phase = Exiting
	return nil
}

// SafeToRemove reports the exit transition as complete.
func (p *Presence) SafeToRemove() error {
	if p.phase != Exiting {
		return fmt.Errorf("%w: remove from %s", ErrTransition, p.phase)
	}
	p.phase = Removed
	return nil
}

// Stage is the display list of a carousel: one current entry plus any
// entries still running their exit transition.
type Stage struct {
	current *Presence
	exiting []*Presence
}

// Show makes key the current entry. The previous current entry starts
// exiting. Showing the current key again is a no-op.
func (s *Stage) Show(key string) *Presence {
	if s.current != nil {
		if s.current.Key == key {
			return s.current
		}
		// Leave cannot fail for a current entry: it is Entering or Visible.
		_ = s.current.Leave()
		s.exiting = append(s.exiting, s.current)
	}
	s.current = Mount(key)
	return s.current
}

// Complete removes an exiting entry once its exit transition has finished.
func (s *Stage) Complete(key string) error {
	for i, p := range s.exiting {
		if p.Key != key {
			continue
		}
		if err := p.SafeToRemove(); err != nil {
			return err
		}
		s.exiting = append(s.exiting[:i], s.exiting[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: %q is not exiting", ErrTransition, key)
}

// Current returns the current entry, or nil before the first Show.
func (s *Stage) Current() *Presence { return s.current }

// Entries returns the display list, exiting entries first and the current
// entry last.
func (s *Stage) Entries() []*Presence {
	entries := make([]*Presence, 0, len(s.exiting)+1)
	entries = append(entries, s.exiting...)
	if s.current != nil {
		entries = append(entries, s.current)
	}
	return entries
}

// Mounted returns the keys still in the display list, exiting entries first.
func (s *Stage) Mounted() []string {
	entries := s.Entries()
	keys := make([]string, len(entries))
	for i, p := range entries {
		keys[i] = p.Key
	}
	return keys
}
