package tui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	stepspiral "github.com/gogpu/stepspiral"
	"github.com/gogpu/stepspiral/render"
)

// Layout in points. The face shows viewRadius points around its center.
const (
	viewRadius  = 128
	ringRadius  = 70
	ringMarks   = 72
	cellsAspect = 2 // a terminal cell is about twice as tall as it is wide
)

var (
	trackColor     = stepspiral.White.WithAlpha(0.2)
	ringTrackColor = stepspiral.White.WithAlpha(0.3)
	hintColor      = stepspiral.White.WithAlpha(0.5)
)

const (
	goalHint     = "wheel or ↑/↓ adjust · drag down or Enter continue · q quit"
	trackingHint = "r refresh · q quit"
	continueText = "[ Continue ]"
)

// Draw renders the current screen.
func (a *App) Draw(s Screen) {
	s.Clear()
	w, h := s.Size()
	if w > 0 && h > 1 {
		if a.mode == modeTracking {
			a.drawRing(s, w, h-1)
			drawCentered(s, w/2, h-1, trackingHint, style(hintColor))
		} else {
			a.drawSpiral(s, w, h-1)
			if a.input.ContinueVisible() {
				drawCentered(s, w/2, h-1, continueText, style(stepspiral.White).Reverse(true))
			} else {
				drawCentered(s, w/2, h-1, goalHint, style(hintColor))
			}
		}
	}
	s.Show()
}

// faceTransform maps points to cells for a face of w by h cells.
func faceTransform(w, h int) stepspiral.Matrix {
	u := math.Min(float64(w), float64(h)*cellsAspect) / (2 * viewRadius)
	return stepspiral.Translate(float64(w)/2, float64(h)/2).
		Multiply(stepspiral.Scale(u, u/cellsAspect))
}

func (a *App) drawSpiral(s Screen, w, h int) {
	st := a.state
	z := st.ZoomScale
	m := faceTransform(w, h).Multiply(stepspiral.Scale(z, z))
	active := a.input.Active()

	filled := min(st.FilledDots, len(st.Dots))
	for _, d := range st.Dots[filled:] {
		setCell(s, m.TransformPoint(d.Position), '·', style(trackColor), w, h)
	}
	for i, d := range st.Dots[:filled] {
		mark := '•'
		if st.RippleScale(i, active) > 1.5 {
			mark = '●'
		}
		setCell(s, m.TransformPoint(d.Position), mark, style(d.Color), w, h)
	}

	label := style(st.ProgressColor).Bold(st.Emphasized())
	drawCentered(s, w/2, h/2, strconv.Itoa(st.Label()), label)
}

func (a *App) drawRing(s Screen, w, h int) {
	r := a.tracker.Ring()
	m := faceTransform(w, h)
	reached := int(math.Round(r.Fraction * ringMarks))

	for i := 0; i < ringMarks; i++ {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/ringMarks
		at := m.TransformPoint(stepspiral.Polar(ringRadius, angle))
		if i < reached {
			setCell(s, at, '●', style(stepspiral.White), w, h)
		} else {
			setCell(s, at, '·', style(ringTrackColor), w, h)
		}
	}

	cx, cy := w/2, h/2
	drawCentered(s, cx, cy-1, render.FormatCount(a.opts.Locale, r.Steps), style(stepspiral.White).Bold(true))
	drawCentered(s, cx, cy+1, "of "+render.FormatCount(a.opts.Locale, r.Goal), style(hintColor))

	below := m.TransformPoint(stepspiral.Pt(0, ringRadius+14))
	py := min(int(math.Ceil(below.Y)), h-1)
	drawCentered(s, cx, py, fmt.Sprintf("%d%% of goal", r.Percent), style(stepspiral.White.WithAlpha(0.8)))
}

// style returns a foreground style for c composited over a black terminal.
func style(c stepspiral.RGBA) tcell.Style {
	n := stepspiral.RGB(c.R*c.A, c.G*c.A, c.B*c.A).NRGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B)))
}

func setCell(s Screen, p stepspiral.Point, r rune, st tcell.Style, w, h int) {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.SetContent(x, y, r, nil, st)
}

// drawCentered writes text on row y centered on column cx, clipped to the screen.
func drawCentered(s Screen, cx, y int, text string, st tcell.Style) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	runes := []rune(text)
	x := cx - len(runes)/2
	for i, r := range runes {
		if x+i >= 0 && x+i < w {
			s.SetContent(x+i, y, r, nil, st)
		}
	}
}
