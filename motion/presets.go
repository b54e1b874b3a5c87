package motion

// VelocityStops is the velocity domain of the title bands.
var VelocityStops = []float64{-1, -0.5, 0, 0.5, 1}

var (
	// DefaultSpring smooths scroll velocity for the title bands.
	DefaultSpring = SpringConfig{Stiffness: 100, Damping: 30, Mass: 1, RestDelta: 0.001, RestSpeed: 0.01}

	// TitleBandTop moves against the scroll direction.
	TitleBandTop = MustTransform(VelocityStops, "7%", "3.5%", "0%", "-3.5%", "-7%")

	// TitleBandBottom mirrors TitleBandTop.
	TitleBandBottom = MustTransform(VelocityStops, "-7%", "-3.5%", "0%", "3.5%", "7%")

	// PortraitParallax shifts the about portrait down as its section scrolls by.
	PortraitParallax = MustTransform([]float64{0, 1}, "0%", "20%")

	// HeroPortraitWidth widens the hero portrait while the hero scrolls out.
	HeroPortraitWidth = MustTransform([]float64{0, 1}, "100%", "240%")
)

// Binding is the client-side description of one scroll-driven style
// property, serialised into a data attribute.
type Binding struct {
	// Source is "velocity" (smoothed by Spring) or "progress".
	Source    string        `json:"source"`
	Property  string        `json:"property"`
	Transform Transform     `json:"transform"`
	Spring    *SpringConfig `json:"spring,omitempty"`
	// Offset matches the scroll range: "start end" to "end start" etc.
	Offset [2]string `json:"offset"`
}

// TitleBand returns the velocity binding for the top or bottom band.
func TitleBand(bottom bool) Binding {
	t := TitleBandTop
	if bottom {
		t = TitleBandBottom
	}
	spring := DefaultSpring
	return Binding{
		Source:    "velocity",
		Property:  "translateX",
		Transform: t,
		Spring:    &spring,
		Offset:    [2]string{"start end", "end start"},
	}
}

// Parallax returns the progress binding for the about portrait.
func Parallax() Binding {
	return Binding{
		Source:    "progress",
		Property:  "translateY",
		Transform: PortraitParallax,
		Offset:    [2]string{"start end", "end start"},
	}
}

// HeroWidth returns the progress binding for the hero portrait.
func HeroWidth() Binding {
	return Binding{
		Source:    "progress",
		Property:  "width",
		Transform: HeroPortraitWidth,
		Offset:    [2]string{"start end", "end end"},
	}
}
