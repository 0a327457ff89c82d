/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package drawing holds the drawing-surface model: committed strokes, the single
// in-flight gesture, and the render query that reproduces the picture on every
// repaint.
//
// A Model is owned by one event-handling goroutine. RenderList may be called from
// a rendering pass only between event-handling steps; callers with a concurrent
// rasterizer must serialize access themselves.
package drawing

import (
	"errors"
	"fmt"

	"paintbrush/internal/history"
	"paintbrush/internal/vector"
)

// ErrInvalidState is returned when an operation needs a gesture phase the model
// is not in, e.g. extending a freehand stroke while idle.
var ErrInvalidState = errors.New("invalid gesture state")

// Phase is the state of the gesture state machine.
type Phase int

const (
	Idle Phase = iota
	AccumulatingFreehand
	PreviewingShape
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AccumulatingFreehand:
		return "accumulating-freehand"
	case PreviewingShape:
		return "previewing-shape"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Default canvas size and background.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Options configures a new Model. Zero values fall back to the defaults.
type Options struct {
	Width      int
	Height     int
	Background vector.Color
	Initial    ToolConfig
}

// RenderItem is one entry of the paint list. Preview marks the shape preview;
// Pending marks segments of the freehand stroke still being drawn, which are
// painted solid until the stroke is committed.
type RenderItem struct {
	Primitive vector.StyledPrimitive
	Preview   bool
	Pending   bool
}

// Model is the drawing surface state.
type Model struct {
	width, height int
	bg            vector.Color
	cfg           ToolConfig
	hist          *history.History

	// gesture state
	phase    Phase
	anchor   vector.Pt
	last     vector.Pt
	kind     vector.Kind
	erasing  bool
	segments []vector.StyledPrimitive
	preview  vector.StyledPrimitive
	hasPrev  bool
}

func New(opts Options) *Model {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Background.A == 0 {
		opts.Background = vector.White
	}
	cfg, def := opts.Initial, DefaultToolConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Color.A == 0 {
		cfg.Color = def.Color
	}
	return &Model{
		width:  opts.Width,
		height: opts.Height,
		bg:     opts.Background,
		cfg:    cfg,
		hist:   history.New(),
	}
}

// Size returns the fixed canvas size in pixels.
func (m *Model) Size() (w, h int) { return m.width, m.height }

// Background returns the canvas background color (also the eraser color).
func (m *Model) Background() vector.Color { return m.bg }

func (m *Model) Config() ToolConfig     { return m.cfg }
func (m *Model) SetConfig(c ToolConfig) { m.cfg = c }

// Color returns the current tool color, used to seed a color picker.
func (m *Model) Color() vector.Color { return m.cfg.Color }

func (m *Model) Phase() Phase { return m.phase }

// Gesture returns the current phase with the gesture anchor and last sampled point.
// Anchor and last are meaningless while Idle.
func (m *Model) Gesture() (phase Phase, anchor, last vector.Pt) {
	return m.phase, m.anchor, m.last
}

// StrokeCount returns the number of committed strokes.
func (m *Model) StrokeCount() int { return m.hist.Len() }

// History exposes the committed strokes for diagnostics.
func (m *Model) History() *history.History { return m.hist }

// BeginGesture starts a gesture at p. The active tool decides whether the
// gesture accumulates a freehand stroke or previews a single shape.
func (m *Model) BeginGesture(p vector.Pt) error {
	if m.phase != Idle {
		return fmt.Errorf("%w: begin while %s", ErrInvalidState, m.phase)
	}
	m.anchor = p
	m.last = p
	m.hasPrev = false
	if m.cfg.Tool.Accumulates() {
		m.phase = AccumulatingFreehand
		m.erasing = m.cfg.Tool == Eraser
		m.segments = m.segments[:0]
		return nil
	}
	m.phase = PreviewingShape
	m.kind = m.cfg.Tool.shapeKind()
	return nil
}

// ExtendFreehand appends one line segment from the previous sample to p.
func (m *Model) ExtendFreehand(p vector.Pt) error {
	if m.phase != AccumulatingFreehand {
		return fmt.Errorf("%w: extend freehand while %s", ErrInvalidState, m.phase)
	}
	col := m.cfg.Color
	if m.erasing {
		col = m.bg
	}
	m.segments = append(m.segments, vector.StyledPrimitive{
		Geometry: vector.LineGeom(m.anchor, p),
		Color:    col,
		Width:    m.cfg.Width,
		Dashed:   m.cfg.Dashed,
	})
	m.anchor = p
	m.last = p
	return nil
}

// UpdatePreview replaces the shape preview with one spanning anchor to p.
func (m *Model) UpdatePreview(p vector.Pt) error {
	if m.phase != PreviewingShape {
		return fmt.Errorf("%w: update preview while %s", ErrInvalidState, m.phase)
	}
	m.preview = m.shapeTo(p)
	m.hasPrev = true
	m.last = p
	return nil
}

// CommitGesture resolves the in-flight gesture at p and returns to Idle. It
// reports whether a stroke was added: a freehand gesture without any drag
// samples records nothing, while a shape is always recorded, even if degenerate.
func (m *Model) CommitGesture(p vector.Pt) (bool, error) {
	var committed bool
	switch m.phase {
	case AccumulatingFreehand:
		if len(m.segments) > 0 {
			committed = m.hist.Push(history.NewStroke(m.segments))
		}
	case PreviewingShape:
		committed = m.hist.Push(history.NewStroke([]vector.StyledPrimitive{m.shapeTo(p)}))
	default:
		return false, fmt.Errorf("%w: commit while %s", ErrInvalidState, m.phase)
	}
	m.reset()
	return committed, nil
}

// CancelGesture drops the in-flight gesture without recording anything.
func (m *Model) CancelGesture() {
	m.reset()
}

// Undo removes the last committed stroke. It reports false on an empty history.
// An in-flight gesture is left untouched.
func (m *Model) Undo() bool {
	_, ok := m.UndoStroke()
	return ok
}

// UndoStroke is Undo returning the removed stroke.
func (m *Model) UndoStroke() (history.Stroke, bool) {
	return m.hist.Pop()
}

// LastStroke returns the most recently committed stroke.
func (m *Model) LastStroke() (history.Stroke, bool) {
	return m.hist.Last()
}

// Clear empties the committed history and returns the number of strokes removed.
// Tool configuration and any in-flight gesture are left untouched.
func (m *Model) Clear() int {
	return m.hist.Clear()
}

// RenderList returns everything to paint, in order: committed strokes, then the
// in-progress freehand segments, then the shape preview. The returned slice is
// freshly allocated.
func (m *Model) RenderList() []RenderItem {
	prims := m.hist.AppendPrimitives(nil)
	out := make([]RenderItem, 0, len(prims)+len(m.segments)+1)
	for _, p := range prims {
		out = append(out, RenderItem{Primitive: p})
	}
	if m.phase == AccumulatingFreehand {
		for _, p := range m.segments {
			out = append(out, RenderItem{Primitive: p, Pending: true})
		}
	}
	if m.phase == PreviewingShape && m.hasPrev {
		out = append(out, RenderItem{Primitive: m.preview, Preview: true})
	}
	return out
}

func (m *Model) shapeTo(p vector.Pt) vector.StyledPrimitive {
	return vector.StyledPrimitive{
		Geometry: vector.BuildShape(m.kind, m.anchor, p),
		Color:    m.cfg.Color,
		Width:    m.cfg.Width,
		Filled:   m.cfg.Filled,
		Dashed:   m.cfg.Dashed,
	}
}

func (m *Model) reset() {
	m.phase = Idle
	m.segments = m.segments[:0]
	m.preview = vector.StyledPrimitive{}
	m.hasPrev = false
	m.erasing = false
}
