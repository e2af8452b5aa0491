// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render rasterizes watch face states into images.
//
// The geometry lives in package stepspiral; this package only turns a
// [stepspiral.SpiralState] or [stepspiral.RingState] into pixels. It never
// computes layout of its own beyond mapping points to pixels, so renders are
// as deterministic as the states they are given.
//
// # Key Principle
//
// Lengths in states are points. A render picks a pixel size for the watch
// screen and derives the point-to-pixel unit from the view radius:
//
//	unit = size / (2 * viewRadius)
//
// # Output
//
//   - Spiral: goal-setting screen with dots, ripple, and centered goal label
//   - Ring: tracking screen with progress ring, count, and percent labels
//   - EncodePNG / SavePNG: PNG output
//
// Labels use the Go fonts from golang.org/x/image, centered with advances
// shaped by go-text/typesetting, and numbers are grouped for the configured
// locale with golang.org/x/text.
package render
