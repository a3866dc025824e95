package builtin

import (
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/composite"
	"github.com/gogpu/overlay/surface"
	"golang.org/x/image/font/gofont/goregular"
)

// Text properties: "text" (the string), "fontSize" (default 16),
// "fontFamily" (resolved through the render resources, default face when
// absent), "color" (default black).
//
// The run is shaped and rasterized here so the canvas needs no font
// machinery: raster canvases blit the tinted coverage mask, vector
// canvases emit the string form and ignore the mask.
func renderText(ctx *composite.RenderContext) {
	text := ctx.Props.String("text", "")
	if text == "" {
		return
	}
	size := ctx.Props.Float("fontSize", 16)
	if size <= 0 {
		size = 16
	}
	family := ctx.Props.String("fontFamily", "")

	data := ctx.Resources.Font(family)
	if data == nil {
		data = goregular.TTF
	}

	run := surface.TextRun{
		Text:   text,
		X:      ctx.Bounds.X,
		Y:      ctx.Bounds.Y + size, // provisional baseline, refined below
		Size:   size,
		Family: family,
		Color:  ctx.Props.Color("color", overlay.RGBA{A: 1}),
	}

	shaped, err := shapeRun(data, text, size)
	if err != nil {
		overlay.Logger().Warn("text shaping failed, drawing unmasked", "err", err)
		ctx.Canvas.DrawText(run)
		return
	}
	mask, ascent, err := rasterizeRun(data, shaped, size)
	if err != nil {
		overlay.Logger().Warn("text rasterization failed, drawing unmasked", "err", err)
		ctx.Canvas.DrawText(run)
		return
	}

	run.Y = ctx.Bounds.Y + ascent
	run.Mask = mask
	run.MaskX = ctx.Bounds.X - maskPad
	run.MaskY = ctx.Bounds.Y - maskPad
	ctx.Canvas.DrawText(run)
}
