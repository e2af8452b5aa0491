// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	stepspiral "github.com/gogpu/stepspiral"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498307936

// painter fills antialiased shapes into an RGBA image. It reuses one
// rasterizer sized to each shape's bounding box.
type painter struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func newPainter(dst *image.RGBA) *painter {
	z := vector.NewRasterizer(1, 1)
	z.DrawOp = draw.Over
	return &painter{dst: dst, z: z}
}

// fill clears dst to c.
func (p *painter) fill(c stepspiral.RGBA) {
	draw.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// box returns the pixel rectangle covering [x0,x1]x[y0,y1], or false if it
// does not lie entirely inside the image.
func (p *painter) box(x0, y0, x1, y1 float64) (image.Rectangle, bool) {
	r := image.Rect(
		int(math.Floor(x0))-1, int(math.Floor(y0))-1,
		int(math.Ceil(x1))+1, int(math.Ceil(y1))+1,
	)
	if r.Empty() || !r.In(p.dst.Bounds()) {
		return r, false
	}
	return r, true
}

// circle fills a circle of radius r centered on (cx, cy), in pixels.
func (p *painter) circle(cx, cy, r float64, c stepspiral.RGBA) {
	if r <= 0 || c.A <= 0 {
		return
	}
	b, ok := p.box(cx-r, cy-r, cx+r, cy+r)
	if !ok {
		return
	}

	p.z.Reset(b.Dx(), b.Dy())
	x := float32(cx - float64(b.Min.X))
	y := float32(cy - float64(b.Min.Y))
	rr := float32(r)
	k := float32(kappa * r)

	p.z.MoveTo(x+rr, y)
	p.z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	p.z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	p.z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	p.z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	p.z.ClosePath()
	p.z.Draw(p.dst, b, image.NewUniform(c.NRGBA()), image.Point{})
}

// band fills the part of the annulus between radii r0 < r1 around (cx, cy)
// swept from angle a0 to a1 (radians, 0 is right, increasing clockwise on screen).
func (p *painter) band(cx, cy, r0, r1, a0, a1 float64, c stepspiral.RGBA) {
	if r1 <= r0 || a1 <= a0 || c.A <= 0 {
		return
	}
	b, ok := p.box(cx-r1, cy-r1, cx+r1, cy+r1)
	if !ok {
		return
	}

	p.z.Reset(b.Dx(), b.Dy())
	ox, oy := cx-float64(b.Min.X), cy-float64(b.Min.Y)
	at := func(r, a float64) (float32, float32) {
		return float32(ox + r*math.Cos(a)), float32(oy + r*math.Sin(a))
	}

	segments := max(2, int(math.Ceil((a1-a0)/(math.Pi/90))))
	step := (a1 - a0) / float64(segments)

	p.z.MoveTo(at(r1, a0))
	for i := 1; i <= segments; i++ {
		p.z.LineTo(at(r1, a0+float64(i)*step))
	}
	for i := segments; i >= 0; i-- {
		p.z.LineTo(at(r0, a0+float64(i)*step))
	}
	p.z.ClosePath()
	p.z.Draw(p.dst, b, image.NewUniform(c.NRGBA()), image.Point{})
}
