// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/overlay"
)

// Canvas is the drawing capability the compositor renders against. The
// compositing walk is written once against this interface; the execution
// contexts differ only in which implementation they supply (raster image,
// serialized command stream, SVG accumulator).
//
// Canvases are NOT thread-safe. A canvas belongs to a single compositing
// walk at a time; Push/Pop calls must nest strictly.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)

	// Push opens a new drawing scope. The scope's transform composes onto
	// the current one and its opacity multiplies into the accumulated
	// product; the blend mode applies to this scope only and is restored
	// by Pop.
	Push(s State)

	// Pop closes the innermost scope, restoring the previous transform,
	// opacity, and blend mode. Popping with no open scope is a no-op.
	Pop()

	// FillPath fills the path with a solid color under the current scope.
	FillPath(p *Path, c overlay.RGBA)

	// StrokePath strokes the path outline under the current scope.
	StrokePath(p *Path, s Stroke)

	// DrawText draws one run of text under the current scope.
	DrawText(r TextRun)

	// DrawImage blits a pixmap with its top-left corner at (x, y) under
	// the current scope.
	DrawImage(img *overlay.Pixmap, x, y float64)
}

// State describes one drawing scope.
type State struct {
	Transform overlay.Matrix
	Opacity   float64
	Blend     overlay.BlendMode
}

// PixelReadWriter is an optional interface for canvases with direct pixel
// access. Filters require it; canvases without it cannot run the pixel
// pipeline and filter layers degrade to a recorded command or a silent
// skip.
//
// Regions are addressed in device coordinates and ignore the current
// scope transform, mirroring how raster pixel access behaves on every
// execution context.
type PixelReadWriter interface {
	Canvas

	// ReadRegion copies the pixels inside r (clamped to the canvas) into
	// a new pixmap, or nil when the clamped region is empty.
	ReadRegion(r image.Rectangle) *overlay.Pixmap

	// WriteRegion writes px back with its top-left corner at (x, y).
	WriteRegion(x, y int, px *overlay.Pixmap)
}

// FilterSink is an optional interface for canvases that forward filter
// applications instead of executing them, such as the serialized command
// stream for a sandboxed renderer.
type FilterSink interface {
	Canvas

	// ApplyFilter records or forwards one filter application over the
	// given bounds.
	ApplyFilter(name string, params overlay.Properties, bounds overlay.Rect)
}

// Stroke defines how a path outline is drawn.
type Stroke struct {
	Color overlay.RGBA
	Width float64

	// Dash is the dash/gap pattern in user units; nil or empty strokes a
	// solid line.
	Dash []float64
}

// TextRun is one positioned run of text. Origin is the baseline origin.
//
// Mask, when present, is the pre-rasterized coverage of the run (alpha
// channel only is honored) with its top-left corner at (MaskX, MaskY);
// raster canvases blit it tinted with Color. Vector canvases use the
// string form and ignore the mask.
type TextRun struct {
	Text   string
	X, Y   float64
	Size   float64
	Family string
	Color  overlay.RGBA

	Mask         *overlay.Pixmap
	MaskX, MaskY float64
}
