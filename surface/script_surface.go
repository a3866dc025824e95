// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/filter"
)

// ScriptSurface is the sandboxed-context canvas: instead of producing
// pixels it records every drawing command in a serializable log. The host
// composites against it, ships the encoded log into the isolated
// renderer, and the renderer replays the log onto its own raster canvas.
//
// Filter applications are recorded as commands (ScriptSurface implements
// FilterSink) and execute on the replay target, which is where the pixels
// live.
type ScriptSurface struct {
	width  int
	height int
	cmds   []command
}

// command is one serialized drawing operation.
type command struct {
	Op string `json:"op"`

	State  *stateRec  `json:"state,omitempty"`
	Path   *pathRec   `json:"path,omitempty"`
	Fill   *colorRec  `json:"fill,omitempty"`
	Stroke *strokeRec `json:"stroke,omitempty"`
	Text   *textRec   `json:"text,omitempty"`
	Image  *imageRec  `json:"image,omitempty"`
	Filter *filterRec `json:"filter,omitempty"`
}

// Command op names.
const (
	opPush      = "push"
	opPop       = "pop"
	opFillPath  = "fillPath"
	opStroke    = "strokePath"
	opDrawText  = "drawText"
	opDrawImage = "drawImage"
	opFilter    = "filter"
)

type stateRec struct {
	Matrix  [6]float64 `json:"matrix"`
	Opacity float64    `json:"opacity"`
	Blend   string     `json:"blend"`
}

type pathRec struct {
	Kind   PathKind       `json:"kind"`
	Rect   *rectRec       `json:"rect,omitempty"`
	Points []pointRec     `json:"points,omitempty"`
	Closed bool           `json:"closed,omitempty"`
}

type rectRec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type pointRec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type colorRec struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type strokeRec struct {
	Color colorRec  `json:"color"`
	Width float64   `json:"width"`
	Dash  []float64 `json:"dash,omitempty"`
}

type textRec struct {
	Text   string   `json:"text"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Size   float64  `json:"size"`
	Family string   `json:"family,omitempty"`
	Color  colorRec `json:"color"`

	Mask  string  `json:"mask,omitempty"` // base64 PNG
	MaskX float64 `json:"maskX,omitempty"`
	MaskY float64 `json:"maskY,omitempty"`
}

type imageRec struct {
	Data string  `json:"data"` // base64 PNG
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type filterRec struct {
	Name   string             `json:"name"`
	Params overlay.Properties `json:"params,omitempty"`
	Bounds rectRec            `json:"bounds"`
}

// NewScriptSurface creates a command-recording canvas with the given
// nominal size.
func NewScriptSurface(width, height int) *ScriptSurface {
	return &ScriptSurface{width: width, height: height}
}

// Size returns the nominal canvas dimensions.
func (s *ScriptSurface) Size() (int, int) {
	return s.width, s.height
}

// Len returns the number of recorded commands.
func (s *ScriptSurface) Len() int {
	return len(s.cmds)
}

// Push records a scope open.
func (s *ScriptSurface) Push(st State) {
	m := st.Transform
	s.cmds = append(s.cmds, command{Op: opPush, State: &stateRec{
		Matrix:  [6]float64{m.A, m.B, m.C, m.D, m.E, m.F},
		Opacity: st.Opacity,
		Blend:   st.Blend.String(),
	}})
}

// Pop records a scope close.
func (s *ScriptSurface) Pop() {
	s.cmds = append(s.cmds, command{Op: opPop})
}

// FillPath records a fill.
func (s *ScriptSurface) FillPath(p *Path, c overlay.RGBA) {
	s.cmds = append(s.cmds, command{
		Op:   opFillPath,
		Path: encodePath(p),
		Fill: &colorRec{R: c.R, G: c.G, B: c.B, A: c.A},
	})
}

// StrokePath records a stroke.
func (s *ScriptSurface) StrokePath(p *Path, st Stroke) {
	s.cmds = append(s.cmds, command{
		Op:   opStroke,
		Path: encodePath(p),
		Stroke: &strokeRec{
			Color: colorRec{R: st.Color.R, G: st.Color.G, B: st.Color.B, A: st.Color.A},
			Width: st.Width,
			Dash:  st.Dash,
		},
	})
}

// DrawText records a text run, including its rasterized mask so the
// replay side needs no font machinery.
func (s *ScriptSurface) DrawText(r TextRun) {
	rec := &textRec{
		Text:   r.Text,
		X:      r.X,
		Y:      r.Y,
		Size:   r.Size,
		Family: r.Family,
		Color:  colorRec{R: r.Color.R, G: r.Color.G, B: r.Color.B, A: r.Color.A},
		MaskX:  r.MaskX,
		MaskY:  r.MaskY,
	}
	if r.Mask != nil {
		rec.Mask = encodePixmap(r.Mask)
	}
	s.cmds = append(s.cmds, command{Op: opDrawText, Text: rec})
}

// DrawImage records a pixmap blit.
func (s *ScriptSurface) DrawImage(img *overlay.Pixmap, x, y float64) {
	if img == nil {
		return
	}
	s.cmds = append(s.cmds, command{Op: opDrawImage, Image: &imageRec{
		Data: encodePixmap(img),
		X:    x,
		Y:    y,
	}})
}

// ApplyFilter implements FilterSink by recording the application.
func (s *ScriptSurface) ApplyFilter(name string, params overlay.Properties, bounds overlay.Rect) {
	s.cmds = append(s.cmds, command{Op: opFilter, Filter: &filterRec{
		Name:   name,
		Params: params,
		Bounds: rectRec{X: bounds.X, Y: bounds.Y, W: bounds.W, H: bounds.H},
	}})
}

// Encode serializes the command log as JSON.
func (s *ScriptSurface) Encode() ([]byte, error) {
	return json.Marshal(s.cmds)
}

// Decode parses a command log produced by Encode into a replayable
// surface.
func Decode(data []byte) (*ScriptSurface, error) {
	var cmds []command
	if err := json.Unmarshal(data, &cmds); err != nil {
		return nil, fmt.Errorf("script surface: decode: %w", err)
	}
	return &ScriptSurface{cmds: cmds}, nil
}

// Replay executes the recorded commands against a target canvas. Filter
// commands run on targets with pixel access, are forwarded to targets
// that are themselves sinks, and are dropped otherwise.
func (s *ScriptSurface) Replay(target Canvas) error {
	for _, cmd := range s.cmds {
		switch cmd.Op {
		case opPush:
			if cmd.State == nil {
				return fmt.Errorf("script surface: push without state")
			}
			m := cmd.State.Matrix
			target.Push(State{
				Transform: overlay.Matrix{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]},
				Opacity:   cmd.State.Opacity,
				Blend:     overlay.ParseBlendMode(cmd.State.Blend),
			})
		case opPop:
			target.Pop()
		case opFillPath:
			if cmd.Path == nil || cmd.Fill == nil {
				continue
			}
			target.FillPath(decodePath(cmd.Path), overlay.RGBA{R: cmd.Fill.R, G: cmd.Fill.G, B: cmd.Fill.B, A: cmd.Fill.A})
		case opStroke:
			if cmd.Path == nil || cmd.Stroke == nil {
				continue
			}
			st := cmd.Stroke
			target.StrokePath(decodePath(cmd.Path), Stroke{
				Color: overlay.RGBA{R: st.Color.R, G: st.Color.G, B: st.Color.B, A: st.Color.A},
				Width: st.Width,
				Dash:  st.Dash,
			})
		case opDrawText:
			if cmd.Text == nil {
				continue
			}
			t := cmd.Text
			run := TextRun{
				Text:   t.Text,
				X:      t.X,
				Y:      t.Y,
				Size:   t.Size,
				Family: t.Family,
				Color:  overlay.RGBA{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: t.Color.A},
				MaskX:  t.MaskX,
				MaskY:  t.MaskY,
			}
			if t.Mask != "" {
				mask, err := decodePixmap(t.Mask)
				if err != nil {
					return fmt.Errorf("script surface: text mask: %w", err)
				}
				run.Mask = mask
			}
			target.DrawText(run)
		case opDrawImage:
			if cmd.Image == nil {
				continue
			}
			img, err := decodePixmap(cmd.Image.Data)
			if err != nil {
				return fmt.Errorf("script surface: image: %w", err)
			}
			target.DrawImage(img, cmd.Image.X, cmd.Image.Y)
		case opFilter:
			if cmd.Filter == nil {
				continue
			}
			f := cmd.Filter
			bounds := overlay.Rect{X: f.Bounds.X, Y: f.Bounds.Y, W: f.Bounds.W, H: f.Bounds.H}
			switch t := target.(type) {
			case PixelReadWriter:
				filter.ApplyTo(t, f.Name, f.Params, bounds)
			case FilterSink:
				t.ApplyFilter(f.Name, f.Params, bounds)
			default:
				overlay.Logger().Debug("replay: filter dropped, target has no pixel access", "name", f.Name)
			}
		default:
			overlay.Logger().Debug("replay: unknown command skipped", "op", cmd.Op)
		}
	}
	return nil
}

// encodePath serializes a path's construction form.
func encodePath(p *Path) *pathRec {
	rec := &pathRec{Kind: p.Kind(), Closed: p.Closed()}
	switch p.Kind() {
	case KindRect, KindEllipse:
		r := p.Rect()
		rec.Rect = &rectRec{X: r.X, Y: r.Y, W: r.W, H: r.H}
	default:
		rec.Points = make([]pointRec, len(p.Points()))
		for i, pt := range p.Points() {
			rec.Points[i] = pointRec{X: pt.X, Y: pt.Y}
		}
	}
	return rec
}

// decodePath rebuilds a path from its serialized form.
func decodePath(rec *pathRec) *Path {
	var r overlay.Rect
	if rec.Rect != nil {
		r = overlay.Rect{X: rec.Rect.X, Y: rec.Rect.Y, W: rec.Rect.W, H: rec.Rect.H}
	}
	pts := make([]overlay.Point, len(rec.Points))
	for i, pt := range rec.Points {
		pts[i] = overlay.Point{X: pt.X, Y: pt.Y}
	}
	return rebuildPath(rec.Kind, r, pts, rec.Closed)
}

// encodePixmap serializes a pixmap as base64 PNG.
func encodePixmap(pm *overlay.Pixmap) string {
	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		overlay.Logger().Warn("script surface: pixmap encode failed", "err", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// decodePixmap parses a base64 PNG pixmap.
func decodePixmap(data string) (*overlay.Pixmap, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, err
	}
	return overlay.DecodePNG(bytes.NewReader(raw))
}
