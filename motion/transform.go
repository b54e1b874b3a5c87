// Package motion maps scroll progress and scroll velocity onto display
// offsets: piecewise-linear transforms, a spring follower and a velocity
// tracker. It is purely presentational and has no failure mode at runtime;
// errors only come from building an invalid transform.
package motion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrRange is returned when a transform's input and output ranges do not
// line up.
var ErrRange = errors.New("motion: invalid transform range")

// Length is a CSS length such as "3.5%" or "12px". A zero Unit means a bare
// number.
type Length struct {
	Value float64
	Unit  string
}

// ParseLength parses "7%", "-3.5%", "240px" or "0".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		i--
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Length{}, fmt.Errorf("motion: parse length %q: %w", s, err)
	}
	return Length{Value: v, Unit: s[i:]}, nil
}

// MustLength is ParseLength for package-level presets.
func MustLength(s string) Length {
	l, err := ParseLength(s)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Length) String() string {
	v := l.Value
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + l.Unit
}

func (l Length) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Length) UnmarshalText(b []byte) error {
	parsed, err := ParseLength(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Transform is a piecewise-linear map from an increasing input range onto
// an output range of lengths. Inputs outside the range clamp to its ends.
type Transform struct {
	Input  []float64 `json:"input"`
	Output []Length  `json:"output"`
}

// NewTransform builds a Transform from input stops and output lengths.
func NewTransform(input []float64, output ...string) (Transform, error) {
	if len(input) < 2 || len(input) != len(output) {
		return Transform{}, fmt.Errorf("%w: %d inputs, %d outputs", ErrRange, len(input), len(output))
	}
	t := Transform{Input: append([]float64(nil), input...), Output: make([]Length, len(output))}
	for i, s := range output {
		l, err := ParseLength(s)
		if err != nil {
			return Transform{}, err
		}
		t.Output[i] = l
	}
	for i := 1; i < len(t.Input); i++ {
		if !(t.Input[i] > t.Input[i-1]) {
			return Transform{}, fmt.Errorf("%w: input not strictly increasing at %d", ErrRange, i)
		}
	}
	unit := t.Output[0].Unit
	for _, l := range t.Output[1:] {
		if l.Unit != unit {
			return Transform{}, fmt.Errorf("%w: mixed units %q and %q", ErrRange, unit, l.Unit)
		}
	}
	return t, nil
}

// MustTransform is NewTransform for package-level presets.
func MustTransform(input []float64, output ...string) Transform {
	t, err := NewTransform(input, output...)
	if err != nil {
		panic(err)
	}
	return t
}

// At evaluates the transform at v.
func (t Transform) At(v float64) Length {
	last := len(t.Input) - 1
	unit := t.Output[0].Unit
	switch {
	case math.IsNaN(v) || v <= t.Input[0]:
		return t.Output[0]
	case v >= t.Input[last]:
		return t.Output[last]
	}
	for i := 0; i < last; i++ {
		lo, hi := t.Input[i], t.Input[i+1]
		if v == lo {
			return t.Output[i]
		}
		if v < hi {
			frac := (v - lo) / (hi - lo)
			a, b := t.Output[i].Value, t.Output[i+1].Value
			return Length{Value: round(a+(b-a)*frac), Unit: unit}
		}
	}
	return t.Output[last]
}

// round trims float noise so offsets render as "3.5%" rather than
// "3.5000000000000004%".
func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
