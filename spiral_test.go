package stepspiral

import (
	"math"
	"reflect"
	"testing"
)

func newTestModel(t *testing.T, mutate func(*Config)) *Model {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := NewModel(cfg)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func TestNewModel_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LayerThreshold = 0
	if _, err := NewModel(cfg); err == nil {
		t.Fatal("NewModel() with zero threshold should fail")
	}
}

func TestDeriveState_Decomposition(t *testing.T) {
	m := newTestModel(t, nil)

	tests := []struct {
		name         string
		goal         float64
		wantGoal     float64
		wantLayer    int
		wantProgress float64
		wantVisible  int
		wantTotal    int
		wantFilled   int
	}{
		{"minimum", 200, 200, 0, 0.02, 1, 113, 2},
		{"below minimum clamps", -500, 200, 0, 0.02, 1, 113, 2},
		{"just under first threshold", 9800, 9800, 0, 0.98, 1, 113, 111},
		{"first threshold", 10000, 10000, 1, 0, 2, 248, 124},
		{"second layer", 12000, 12000, 1, 0.2, 2, 248, 149},
		{"third layer", 26000, 26000, 2, 0.6, 3, 405, 351},
		{"maximum", 40000, 40000, 3, 1, 4, 584, 584},
		{"above maximum clamps", 1e9, 40000, 3, 1, 4, 584, 584},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := m.DeriveState(tt.goal)
			if s.Goal != tt.wantGoal {
				t.Errorf("Goal = %v, want %v", s.Goal, tt.wantGoal)
			}
			if s.CurrentLayer != tt.wantLayer {
				t.Errorf("CurrentLayer = %d, want %d", s.CurrentLayer, tt.wantLayer)
			}
			if math.Abs(s.LayerProgress-tt.wantProgress) > 1e-9 {
				t.Errorf("LayerProgress = %v, want %v", s.LayerProgress, tt.wantProgress)
			}
			if s.VisibleLayers != tt.wantVisible {
				t.Errorf("VisibleLayers = %d, want %d", s.VisibleLayers, tt.wantVisible)
			}
			if s.TotalDots != tt.wantTotal {
				t.Errorf("TotalDots = %d, want %d", s.TotalDots, tt.wantTotal)
			}
			if s.FilledDots != tt.wantFilled {
				t.Errorf("FilledDots = %d, want %d", s.FilledDots, tt.wantFilled)
			}
		})
	}
}

func TestDeriveState_NaNGoal(t *testing.T) {
	m := newTestModel(t, nil)
	s := m.DeriveState(math.NaN())
	if s.Goal != 200 || s.CurrentLayer != 0 {
		t.Errorf("DeriveState(NaN) = goal %v layer %d, want goal 200 layer 0", s.Goal, s.CurrentLayer)
	}
}

func TestDeriveState_Invariants(t *testing.T) {
	m := newTestModel(t, nil)
	cfg := m.Config()

	for goal := cfg.MinGoal; goal <= cfg.MaxGoal; goal += cfg.StepSize {
		s := m.DeriveState(goal)

		if s.CurrentLayer < 0 || s.CurrentLayer > cfg.MaxLayers-1 {
			t.Fatalf("goal %v: CurrentLayer %d out of range", goal, s.CurrentLayer)
		}
		if s.LayerProgress < 0 || s.LayerProgress > 1 {
			t.Fatalf("goal %v: LayerProgress %v out of [0,1]", goal, s.LayerProgress)
		}
		if s.FillFraction < 0 || s.FillFraction > 1 {
			t.Fatalf("goal %v: FillFraction %v out of [0,1]", goal, s.FillFraction)
		}
		if s.TotalDots < 1 || len(s.Dots) != s.TotalDots {
			t.Fatalf("goal %v: TotalDots %d, len(Dots) %d", goal, s.TotalDots, len(s.Dots))
		}
		if s.FilledDots > s.TotalDots {
			t.Fatalf("goal %v: FilledDots %d > TotalDots %d", goal, s.FilledDots, s.TotalDots)
		}
		if s.ZoomScale <= 0 || s.ZoomScale > 1 {
			t.Fatalf("goal %v: ZoomScale %v out of (0,1]", goal, s.ZoomScale)
		}

		filled := 0
		maxRadius := cfg.BaseRadius + float64(s.VisibleLayers)*cfg.LayerSpacing
		for i, d := range s.Dots {
			if d.Index != i {
				t.Fatalf("goal %v: dot %d has Index %d", goal, i, d.Index)
			}
			if d.Filled {
				filled++
			}
			if d.Layer < 0 || d.Layer >= s.VisibleLayers {
				t.Fatalf("goal %v: dot %d on layer %d of %d", goal, i, d.Layer, s.VisibleLayers)
			}
			if d.Radius < cfg.BaseRadius || d.Radius >= maxRadius {
				t.Fatalf("goal %v: dot %d radius %v outside [%v, %v)", goal, i, d.Radius, cfg.BaseRadius, maxRadius)
			}
			if math.Abs(d.Position.Length()-d.Radius) > 1e-9 {
				t.Fatalf("goal %v: dot %d at distance %v, want %v", goal, i, d.Position.Length(), d.Radius)
			}
		}
		if filled != s.FilledDots {
			t.Fatalf("goal %v: %d dots marked filled, want %d", goal, filled, s.FilledDots)
		}
	}
}

func TestDeriveState_Monotonic(t *testing.T) {
	m := newTestModel(t, nil)
	cfg := m.Config()

	prev := m.DeriveState(cfg.MinGoal)
	for goal := cfg.MinGoal + cfg.StepSize; goal <= cfg.MaxGoal; goal += cfg.StepSize {
		s := m.DeriveState(goal)
		if s.FilledDots < prev.FilledDots {
			t.Errorf("FilledDots decreased from %d to %d between goals %v and %v",
				prev.FilledDots, s.FilledDots, prev.Goal, goal)
		}
		if s.CurrentLayer < prev.CurrentLayer {
			t.Errorf("CurrentLayer decreased from %d to %d between goals %v and %v",
				prev.CurrentLayer, s.CurrentLayer, prev.Goal, goal)
		}
		prev = s
	}
}

func TestDeriveState_Idempotent(t *testing.T) {
	m := newTestModel(t, nil)
	for _, goal := range []float64{200, 12000, 33400, 40000} {
		a := m.DeriveState(goal)
		b := m.DeriveState(goal)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("DeriveState(%v) is not idempotent", goal)
		}
	}
}

func TestDeriveState_DotPlacement(t *testing.T) {
	m := newTestModel(t, nil)
	s := m.DeriveState(10000)

	first := s.Dots[0]
	if !first.Position.Approx(Pt(65, 0), 1e-9) || first.Layer != 0 || first.Color != Red {
		t.Errorf("first dot = %+v, want (65,0) on layer 0 in red", first)
	}

	// Halfway through a two-layer spiral is the start of the second layer.
	mid := s.Dots[124]
	if mid.Layer != 1 || math.Abs(mid.Radius-79) > 1e-9 || !mid.Position.Approx(Pt(79, 0), 1e-9) {
		t.Errorf("dot 124 = %+v, want layer 1 at (79,0)", mid)
	}
	if !mid.Color.Approx(Yellow, 1e-9) {
		t.Errorf("dot 124 color = %v, want %v", mid.Color, Yellow)
	}
	if mid.Filled != (124 < s.FilledDots) {
		t.Errorf("dot 124 Filled = %v with %d filled dots", mid.Filled, s.FilledDots)
	}
}

func TestDeriveState_ZoomScale(t *testing.T) {
	tests := []struct {
		name   string
		margin float64
		goal   float64
		want   float64
	}{
		{"one layer fits", 0, 5000, 1},
		{"three layers fit", 0, 25000, 1},
		{"four layers shrink", 0, 35000, 120.0 / 121.0},
		{"four layers with margin", 14, 35000, 120.0 / 135.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, func(c *Config) { c.ZoomMargin = tt.margin })
			s := m.DeriveState(tt.goal)
			if math.Abs(s.ZoomScale-tt.want) > 1e-9 {
				t.Errorf("ZoomScale = %v, want %v", s.ZoomScale, tt.want)
			}
		})
	}

	m := newTestModel(t, func(c *Config) { c.ZoomMargin = 14 })
	if got := m.DeriveState(35000).ZoomScale; math.Abs(got-0.889) > 1e-3 {
		t.Errorf("ZoomScale = %v, want about 0.889", got)
	}
}

func TestDeriveState_LayerCeiling(t *testing.T) {
	m := newTestModel(t, func(c *Config) { c.MaxGoal = 60000 })

	s := m.DeriveState(55000)
	if s.CurrentLayer != 3 || s.LayerProgress != 1 || s.VisibleLayers != 4 {
		t.Errorf("DeriveState(55000) = layer %d progress %v visible %d, want 3, 1, 4",
			s.CurrentLayer, s.LayerProgress, s.VisibleLayers)
	}
	if s.FilledDots != s.TotalDots {
		t.Errorf("saturated spiral FilledDots = %d, want %d", s.FilledDots, s.TotalDots)
	}
}

func TestDeriveState_MinimumOneDot(t *testing.T) {
	m := newTestModel(t, func(c *Config) {
		c.BaseRadius = 0.1
		c.LayerSpacing = 0.1
		c.DotSpacing = 1000
	})
	s := m.DeriveState(40000)
	if s.TotalDots != 1 || len(s.Dots) != 1 {
		t.Fatalf("TotalDots = %d, want floor of 1", s.TotalDots)
	}
	if s.FilledDots != 1 {
		t.Errorf("FilledDots = %d, want 1", s.FilledDots)
	}
}

func TestDeriveState_ProgressColor(t *testing.T) {
	m := newTestModel(t, nil)
	s := m.DeriveState(12000)
	want := Yellow.Lerp(Green, 0.4)
	if !s.ProgressColor.Approx(want, 1e-9) {
		t.Errorf("ProgressColor = %v, want %v", s.ProgressColor, want)
	}
}

func TestModel_ColorContinuity(t *testing.T) {
	m := newTestModel(t, nil)
	for layer := 1; layer < 4; layer++ {
		if a, b := m.ColorAt(layer, 0), m.ColorAt(layer-1, 1); !a.Approx(b, 1e-12) {
			t.Errorf("ColorAt(%d, 0) = %v, ColorAt(%d, 1) = %v", layer, a, layer-1, b)
		}
	}
}

func TestModel_WithPalette(t *testing.T) {
	m, err := NewModel(DefaultConfig(), WithPalette(Palette{Green, Blue}))
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	if got := m.ColorAt(0, 0.5); !got.Approx(Green.Lerp(Blue, 1), 1e-9) {
		t.Errorf("ColorAt(0, 0.5) = %v, want %v", got, Blue)
	}
	if got := len(m.Palette()); got != 2 {
		t.Errorf("len(Palette()) = %d, want 2", got)
	}
}

func TestSpiralState_RippleScale(t *testing.T) {
	s := SpiralState{FilledDots: 149, TotalDots: 248}

	tests := []struct {
		name   string
		i      int
		active bool
		want   float64
	}{
		{"tip while active", 148, true, 2},
		{"ninth from tip", 139, true, 1.1},
		{"outside ripple", 138, true, 1},
		{"tip while idle", 148, false, 1},
		{"unfilled", 149, true, 1},
		{"negative index", -1, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.RippleScale(tt.i, tt.active); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RippleScale(%d, %v) = %v, want %v", tt.i, tt.active, got, tt.want)
			}
		})
	}
}

func TestSpiralState_Label(t *testing.T) {
	m := newTestModel(t, nil)

	s := m.DeriveState(12000)
	if s.Label() != 12000 || !s.Emphasized() {
		t.Errorf("12000: Label() = %d, Emphasized() = %v", s.Label(), s.Emphasized())
	}
	s = m.DeriveState(9800)
	if s.Label() != 9800 || s.Emphasized() {
		t.Errorf("9800: Label() = %d, Emphasized() = %v", s.Label(), s.Emphasized())
	}
}

func TestSpiralState_Transform(t *testing.T) {
	m := newTestModel(t, nil)

	s := m.DeriveState(5000)
	got := s.Transform(Pt(100, 100), 1).TransformPoint(s.Dots[0].Position)
	if !got.Approx(Pt(165, 100), 1e-9) {
		t.Errorf("first dot maps to %v, want (165, 100)", got)
	}

	s = m.DeriveState(40000)
	k := s.ZoomScale * 2
	got = s.Transform(Pt(0, 0), 2).TransformPoint(Pt(121, 0))
	if !got.Approx(Pt(121*k, 0), 1e-9) {
		t.Errorf("outer edge maps to %v, want (%v, 0)", got, 121*k)
	}
}
