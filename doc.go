// Package stepspiral computes the goal spiral of a step-tracking watch face.
//
// # Overview
//
// The watch face shows a daily step goal as a spiral of dots. Every
// LayerThreshold steps add one more layer to the spiral, drawn outside the
// previous ones, and the figure shrinks to fit once the outermost layer no
// longer fits the screen. Colors sweep a rainbow palette, two reference
// colors per layer, continuing seamlessly from one layer to the next.
//
// # Quick Start
//
//	m, err := stepspiral.NewModel(stepspiral.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := m.DeriveState(12000)
//	for _, d := range s.Dots {
//	    // draw a small circle at d.Position scaled by s.ZoomScale
//	}
//
// # Architecture
//
// The package is organized into:
//   - Geometry: Model, SpiralState, Dot, Palette
//   - Input: GoalInput maps rotary detents and drags to a confirmed goal
//   - Tracking: Tracker keeps today's count in sync with a StepSource
//   - Presentation: the render sub-package rasterizes states to images
//
// Model is a pure function of its Config: DeriveState never mutates the
// model, holds no locks and may be called from any goroutine.
//
// # Coordinate System
//
// Dot positions are offsets in points from the spiral center:
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing toward +Y
package stepspiral

// Version is the current version of the library.
const Version = "0.1.0"
