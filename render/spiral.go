// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"strconv"

	stepspiral "github.com/gogpu/stepspiral"
)

// track is the color of dots the goal has not reached.
var track = stepspiral.White.WithAlpha(0.2)

// Label sizes in points; an emphasized goal (past the first layer) is larger and bolder.
const (
	goalLabelSize           = 24
	goalLabelEmphasizedSize = 28
)

// Spiral renders the goal-setting screen for s.
//
// Unreached dots are drawn first as a faint track, then reached dots in
// their palette color on top. The figure is scaled by s.ZoomScale around
// the image center, and the goal is printed in the middle in s.ProgressColor.
func Spiral(s stepspiral.SpiralState, opts ...Option) *image.RGBA {
	o := buildOptions(opts)
	img := image.NewRGBA(image.Rect(0, 0, o.size, o.size))
	p := newPainter(img)
	p.fill(o.background)

	half := float64(o.size) / 2
	center := stepspiral.Pt(half, half)
	m := s.Transform(center, o.unit())
	dotRadius := o.dotSize / 2 * m.ScaleFactor()

	for _, d := range s.Dots[min(s.FilledDots, len(s.Dots)):] {
		at := m.TransformPoint(d.Position)
		p.circle(at.X, at.Y, dotRadius, track)
	}
	for i, d := range s.Dots[:min(s.FilledDots, len(s.Dots))] {
		at := m.TransformPoint(d.Position)
		p.circle(at.X, at.Y, dotRadius*s.RippleScale(i, o.active), d.Color)
	}

	size, weight := float64(goalLabelSize), Regular
	if s.Emphasized() {
		size, weight = goalLabelEmphasizedSize, Bold
	}
	size *= m.ScaleFactor()
	drawLabel(img, strconv.Itoa(s.Label()), weight, size, half, half, s.ProgressColor.NRGBA())

	return img
}
