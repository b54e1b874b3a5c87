package carousel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = New(-3)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestThreeEntryWraparound(t *testing.T) {
	c, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Index())

	assert.Equal(t, 2, c.Retreat(), "retreat from 0 wraps to last")

	c.Reset()
	c.Advance()
	c.Advance()
	assert.Equal(t, 0, c.Advance(), "three advances return to start")
}

func TestAdvanceNTimesIsIdentity(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			c, err := New(n)
			require.NoError(t, err)
			c.Seek(start)
			for i := 0; i < n; i++ {
				c.Advance()
			}
			assert.Equal(t, start, c.Index(), "n=%d start=%d", n, start)
		}
	}
}

func TestRetreatInvertsAdvance(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			c, _ := New(n)
			c.Seek(start)
			c.Advance()
			c.Retreat()
			assert.Equal(t, start, c.Index())

			c.Retreat()
			c.Advance()
			assert.Equal(t, start, c.Index())
		}
	}
}

func TestSeekNormalizes(t *testing.T) {
	c, _ := New(3)
	tests := []struct {
		in, want int
	}{
		{0, 0}, {2, 2}, {3, 0}, {7, 1}, {-1, 2}, {-4, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Seek(tt.in), "Seek(%d)", tt.in)
	}
}

func TestStep(t *testing.T) {
	c, _ := New(3)
	assert.Equal(t, 1, c.Step("next"))
	assert.Equal(t, 0, c.Step("prev"))
	assert.Equal(t, 0, c.Step("sideways"))
}

func TestCurrentMatchesIndex(t *testing.T) {
	names := []string{"Ryan", "Alvin", "Fakhrul"}
	c, _ := New(len(names))
	for i := 0; i < 2*len(names); i++ {
		assert.Equal(t, names[c.Index()], Current(c, names))
		c.Advance()
	}
}

func TestPresenceLifecycle(t *testing.T) {
	p := Mount("a")
	assert.Equal(t, Entering, p.Phase())
	require.NoError(t, p.Entered())
	assert.Equal(t, Visible, p.Phase())
	require.NoError(t, p.Leave())
	assert.Equal(t, Exiting, p.Phase())
	require.NoError(t, p.SafeToRemove())
	assert.Equal(t, Removed, p.Phase())

	assert.True(t, errors.Is(p.Leave(), ErrTransition))
	assert.True(t, errors.Is(p.Entered(), ErrTransition))
}

func TestPresenceRemoveRequiresExit(t *testing.T) {
	p := Mount("a")
	assert.ErrorIs(t, p.SafeToRemove(), ErrTransition)
}

func TestStageKeepsOneCurrent(t *testing.T) {
	var s Stage
	assert.Nil(t, s.Current())

	s.Show("ryan")
	s.Show("alvin")
	assert.Equal(t, "alvin", s.Current().Key)
	assert.Equal(t, []string{"ryan", "alvin"}, s.Mounted())

	require.NoError(t, s.Complete("ryan"))
	assert.Equal(t, []string{"alvin"}, s.Mounted())

	assert.ErrorIs(t, s.Complete("ryan"), ErrTransition)
}

func TestStageShowSameKeyIsNoop(t *testing.T) {
	var s Stage
	first := s.Show("ryan")
	again := s.Show("ryan")
	assert.Same(t, first, again)
	assert.Equal(t, []string{"ryan"}, s.Mounted())
}

func TestStageEntriesCarryPhases(t *testing.T) {
	var s Stage
	out := s.Show("ryan")
	require.NoError(t, out.Entered())
	s.Show("alvin")

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "ryan", entries[0].Key)
	assert.Equal(t, Exiting, entries[0].Phase())
	assert.Equal(t, "alvin", entries[1].Key)
	assert.Equal(t, Entering, entries[1].Phase())
}
