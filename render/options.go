// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	stepspiral "github.com/gogpu/stepspiral"
	"golang.org/x/text/language"
)

// Option configures a render.
//
// Example:
//
//	img := render.Spiral(state, render.WithSize(396), render.WithActive(true))
type Option func(*options)

// options holds optional configuration for a render.
type options struct {
	size       int
	viewRadius float64
	dotSize    float64
	active     bool
	locale     language.Tag
	background stepspiral.RGBA
}

// defaultOptions returns the default render options: a 396px square
// (a 45mm watch at 2x) showing 128pt around the center.
func defaultOptions() options {
	return options{
		size:       396,
		viewRadius: 128,
		dotSize:    4,
		locale:     language.English,
		background: stepspiral.Black,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// unit returns pixels per point.
func (o options) unit() float64 {
	return float64(o.size) / (2 * o.viewRadius)
}

// WithSize sets the output width and height in pixels.
// Non-positive sizes are ignored.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithViewRadius sets how many points from the center fit in half the image.
func WithViewRadius(pt float64) Option {
	return func(o *options) {
		if pt > 0 {
			o.viewRadius = pt
		}
	}
}

// WithDotSize sets the dot diameter in points before zoom.
func WithDotSize(pt float64) Option {
	return func(o *options) {
		if pt > 0 {
			o.dotSize = pt
		}
	}
}

// WithActive renders the ripple on the most recently filled dots.
func WithActive(active bool) Option {
	return func(o *options) {
		o.active = active
	}
}

// WithLocale sets the locale used to group digits in labels.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithBackground sets the fill color behind the face.
func WithBackground(c stepspiral.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}
