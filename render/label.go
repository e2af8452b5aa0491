// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	stepspiral "github.com/gogpu/stepspiral"
)

// Weight selects one of the bundled label fonts.
type Weight int

const (
	// Regular is the Go Regular face.
	Regular Weight = iota
	// Bold is the Go Bold face.
	Bold
)

// typeface is a parsed font in both the rasterizing and shaping libraries.
type typeface struct {
	ot *opentype.Font
	gt *gotext.Font
}

var (
	typefacesOnce sync.Once
	typefaces     [2]*typeface
)

// loadTypefaces parses the bundled fonts once. Parse failures leave the
// slot nil and the label is skipped.
func loadTypefaces() {
	typefacesOnce.Do(func() {
		for w, data := range [][]byte{goregular.TTF, gobold.TTF} {
			tf, err := parseTypeface(data)
			if err != nil {
				stepspiral.Logger().Warn("render: parse font failed", "weight", w, "error", err)
				continue
			}
			typefaces[w] = tf
		}
	})
}

func parseTypeface(data []byte) (*typeface, error) {
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &typeface{ot: ot, gt: face.Font}, nil
}

// shapedAdvance returns the horizontal advance of text in pixels at size,
// including kerning applied by the HarfBuzz shaper.
func (tf *typeface) shapedAdvance(text string, size float64) float64 {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(tf.gt),
		Size:      fixed.Int26_6(size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	var s shaping.HarfbuzzShaper
	out := s.Shape(input)
	return float64(out.Advance) / 64
}

// drawLabel draws text horizontally centered on cx with its cap height
// vertically centered on cy. size is in pixels.
func drawLabel(dst draw.Image, text string, w Weight, size, cx, cy float64, c color.Color) {
	if text == "" || size <= 0 {
		return
	}
	loadTypefaces()
	tf := typefaces[w]
	if tf == nil {
		return
	}

	face, err := opentype.NewFace(tf.ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		stepspiral.Logger().Warn("render: create face failed", "error", err)
		return
	}
	defer func() {
		_ = face.Close()
	}()

	width := tf.shapedAdvance(text, size)
	if width <= 0 {
		width = float64(font.MeasureString(face, text)) / 64
	}

	m := face.Metrics()
	capHeight := float64(m.CapHeight) / 64
	if capHeight <= 0 {
		capHeight = float64(m.Ascent) / 64 * 0.7
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6((cx - width/2) * 64),
			Y: fixed.Int26_6((cy + capHeight/2) * 64),
		},
	}
	d.DrawString(text)
}
