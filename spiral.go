package stepspiral

import "math"

// rippleLength is how many of the most recently filled dots pulse while
// the goal is being changed.
const rippleLength = 10

// Dot is one mark on the spiral, positioned relative to the spiral center.
type Dot struct {
	Index    int
	Position Point
	Angle    float64 // radians, continuous across turns
	Radius   float64
	Layer    int
	Filled   bool
	Color    RGBA
}

// SpiralState is the complete derived geometry for one goal value.
// It is recomputed from scratch on every goal change: the number of dots
// depends on how many layers are visible, so a previous state cannot be patched.
type SpiralState struct {
	Goal          float64
	CurrentLayer  int
	LayerProgress float64
	VisibleLayers int

	// FillFraction is the share of the rendered spiral, across all visible
	// layers, that the goal covers.
	FillFraction float64

	TotalDots  int
	FilledDots int
	Dots       []Dot

	// OuterRadius is the extent the zoom was fitted against.
	OuterRadius float64
	ZoomScale   float64

	// ProgressColor is the color at the tip of the filled spiral.
	ProgressColor RGBA
}

// Model derives spiral states from goal values. A Model has no mutable
// state and is safe for concurrent use.
type Model struct {
	cfg     Config
	palette Palette
}

// NewModel validates cfg and returns a Model.
func NewModel(cfg Config, opts ...ModelOption) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultModelOptions(cfg)
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.palette) == 0 {
		o.palette = DefaultPalette()
	}

	return &Model{cfg: cfg, palette: o.palette}, nil
}

// Config returns the constants the model was built with.
func (m *Model) Config() Config {
	return m.cfg
}

// Palette returns a copy of the model's color palette.
func (m *Model) Palette() Palette {
	return append(Palette(nil), m.palette...)
}

// ColorAt returns the spiral color at a position within a layer.
func (m *Model) ColorAt(layer int, progress float64) RGBA {
	return m.palette.At(layer, progress)
}

// Layer returns the active layer index and progress within it for goal.
func (m *Model) Layer(goal float64) (layer int, progress float64) {
	goal = clamp(goal, m.cfg.MinGoal, m.cfg.MaxGoal)
	t := m.cfg.LayerThreshold

	layer = clampInt(int(math.Floor(goal/t)), 0, m.cfg.MaxLayers-1)
	progress = clamp((goal-float64(layer)*t)/t, 0, 1)
	return layer, progress
}

// DeriveState computes the full spiral for goal. Goals outside
// [MinGoal, MaxGoal] are clamped first.
func (m *Model) DeriveState(goal float64) SpiralState {
	c := m.cfg
	goal = clamp(goal, c.MinGoal, c.MaxGoal)

	layer, progress := m.Layer(goal)
	visible := min(layer+1, c.MaxLayers)
	fill := clamp((float64(layer)+progress)/float64(visible), 0, 1)

	total := m.dotCount(visible)
	filled := min(int(math.Round(float64(total)*fill)), total)

	outer := c.BaseRadius + float64(visible)*c.LayerSpacing + c.ZoomMargin
	zoom := math.Min(1, c.MaxVisibleRadius/outer)

	s := SpiralState{
		Goal:          goal,
		CurrentLayer:  layer,
		LayerProgress: progress,
		VisibleLayers: visible,
		FillFraction:  fill,
		TotalDots:     total,
		FilledDots:    filled,
		Dots:          make([]Dot, total),
		OuterRadius:   outer,
		ZoomScale:     zoom,
		ProgressColor: m.palette.At(layer, progress),
	}

	turns := float64(visible) * c.SpiralTurns
	for i := range s.Dots {
		s.Dots[i] = m.dotAt(i, float64(i)/float64(total)*turns, filled)
	}
	return s
}

// dotCount estimates how many dots fit along the visible spiral at the
// configured spacing, using the mean radius of the visible band.
func (m *Model) dotCount(visible int) int {
	c := m.cfg
	avgRadius := c.BaseRadius + float64(visible)*c.LayerSpacing/2
	length := 2 * math.Pi * avgRadius * float64(visible) * c.SpiralTurns
	return max(1, int(length/c.DotSpacing))
}

// dotAt places dot i, which sits turnProgress revolutions along the spiral.
func (m *Model) dotAt(i int, turnProgress float64, filled int) Dot {
	c := m.cfg
	layerPos := turnProgress / c.SpiralTurns
	layer := int(math.Floor(layerPos))
	within := layerPos - float64(layer)

	radius := c.BaseRadius + float64(layer)*c.LayerSpacing + within*c.LayerSpacing
	angle := turnProgress * 2 * math.Pi

	return Dot{
		Index:    i,
		Position: Polar(radius, angle),
		Angle:    angle,
		Radius:   radius,
		Layer:    layer,
		Filled:   i < filled,
		Color:    m.palette.At(layer, within),
	}
}

// Label is the goal as shown in the center of the spiral.
func (s SpiralState) Label() int {
	return int(math.Round(s.Goal))
}

// Emphasized reports whether the goal overshoots the first layer, which
// the watch face shows with a larger, heavier label.
func (s SpiralState) Emphasized() bool {
	return s.CurrentLayer > 0
}

// RippleScale returns the size multiplier for dot i. While input is active
// the last filled dots pulse, largest at the tip of the spiral.
func (s SpiralState) RippleScale(i int, active bool) float64 {
	if !active || i < 0 || i >= s.FilledDots {
		return 1
	}
	fromEnd := s.FilledDots - 1 - i
	if fromEnd >= rippleLength {
		return 1
	}
	return 2 - float64(fromEnd)*0.1
}

// Transform maps spiral coordinates to a viewport centered on center,
// where one point spans unit output units.
func (s SpiralState) Transform(center Point, unit float64) Matrix {
	k := s.ZoomScale * unit
	return Translate(center.X, center.Y).Multiply(Scale(k, k))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
