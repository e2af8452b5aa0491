// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"math"

	stepspiral "github.com/gogpu/stepspiral"
)

// Ring layout in points, relative to the ring center.
const (
	ringRadius    = 70
	ringWidth     = 8
	countSize     = 37
	ofGoalSize    = 14
	percentSize   = 16
	percentOffset = ringRadius + ringWidth/2 + 20 + percentSize/2
	ringLift      = 14
)

var (
	ringTrack   = stepspiral.White.WithAlpha(0.3)
	ofGoalColor = stepspiral.White.WithAlpha(0.7)
	percentTint = stepspiral.White.WithAlpha(0.8)
)

// Ring renders the tracking screen: a progress ring starting at twelve
// o'clock, the step count inside it, and the share of the goal below.
func Ring(r stepspiral.RingState, opts ...Option) *image.RGBA {
	o := buildOptions(opts)
	img := image.NewRGBA(image.Rect(0, 0, o.size, o.size))
	p := newPainter(img)
	p.fill(o.background)

	u := o.unit()
	cx := float64(o.size) / 2
	cy := float64(o.size)/2 - ringLift*u
	r0 := (ringRadius - ringWidth/2) * u
	r1 := (ringRadius + ringWidth/2) * u

	top := -math.Pi / 2
	p.band(cx, cy, r0, r1, top, top+2*math.Pi, ringTrack)
	if r.Fraction > 0 {
		p.band(cx, cy, r0, r1, top, top+2*math.Pi*r.Fraction, stepspiral.White)
	}

	drawLabel(img, FormatCount(o.locale, r.Steps), Regular, countSize*u, cx, cy-6*u, stepspiral.White.NRGBA())
	drawLabel(img, "of "+FormatCount(o.locale, r.Goal), Regular, ofGoalSize*u, cx, cy+22*u, ofGoalColor.NRGBA())
	drawLabel(img, fmt.Sprintf("%d%% of goal", r.Percent), Regular, percentSize*u, cx, cy+percentOffset*u, percentTint.NRGBA())

	return img
}
