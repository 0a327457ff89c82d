/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package interact translates pointer events and toolbar actions into
// drawing model operations.
package interact

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"sync"
	"time"

	"paintbrush/internal/drawing"
	applog "paintbrush/internal/log"
	"paintbrush/internal/vector"
)

// ErrInvalidPoint is returned for pointer events with NaN or infinite coordinates.
var ErrInvalidPoint = errors.New("invalid pointer coordinates")

// Controller owns a drawing model and serializes access to it. UI callbacks and
// the painter may call it from different goroutines.
type Controller struct {
	mu  sync.Mutex
	m   *drawing.Model
	log *slog.Logger
}

func New(m *drawing.Model) *Controller {
	return &Controller{m: m, log: applog.WithComponent("interact")}
}

// PointerDown starts a gesture with the current tool.
func (c *Controller) PointerDown(p vector.Pt) error {
	if err := c.checkPoint("down", p); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.m.BeginGesture(p); err != nil {
		c.log.Warn("pointer down rejected", "err", err)
		return err
	}
	c.log.Debug("pointer down", "x", p.X, "y", p.Y, "tool", c.m.Config().Tool.String())
	return nil
}

// PointerMove extends the freehand stroke or updates the shape preview,
// depending on the gesture started at press. Moves without a gesture are hover
// and are ignored.
func (c *Controller) PointerMove(p vector.Pt) error {
	if err := c.checkPoint("move", p); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.m.Phase() {
	case drawing.AccumulatingFreehand:
		return c.m.ExtendFreehand(p)
	case drawing.PreviewingShape:
		return c.m.UpdatePreview(p)
	default:
		return nil
	}
}

// PointerUp commits the gesture at p.
func (c *Controller) PointerUp(p vector.Pt) error {
	if err := c.checkPoint("up", p); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.m.Phase()
	committed, err := c.m.CommitGesture(p)
	if err != nil {
		c.log.Warn("pointer up rejected", "err", err)
		return err
	}
	if committed {
		st, _ := c.m.LastStroke()
		c.log.Info("stroke committed", "stroke", st.ID, "gesture", phase.String(),
			"primitives", len(st.Primitives), "strokes", c.m.StrokeCount())
	} else {
		c.log.Debug("gesture ended without stroke", "gesture", phase.String())
	}
	return nil
}

// Cancel abandons the in-flight gesture, if any.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m.Phase() != drawing.Idle {
		c.log.Debug("gesture cancelled", "gesture", c.m.Phase().String())
	}
	c.m.CancelGesture()
}

func (c *Controller) SetTool(t drawing.Tool) {
	c.update(func(cfg *drawing.ToolConfig) { cfg.Tool = t })
}

// SetColor sets the stroke color. Alpha is discarded.
func (c *Controller) SetColor(col color.Color) {
	v := vector.FromColor(col)
	c.update(func(cfg *drawing.ToolConfig) { cfg.Color = v })
}

// SetStrokeWidth sets the stroke width, clamped to [MinStrokeWidth, MaxStrokeWidth].
func (c *Controller) SetStrokeWidth(w int) {
	w = min(max(w, drawing.MinStrokeWidth), drawing.MaxStrokeWidth)
	c.update(func(cfg *drawing.ToolConfig) { cfg.Width = w })
}

// SetFilled toggles fill. Enabling it turns dashed off.
func (c *Controller) SetFilled(on bool) {
	c.update(func(cfg *drawing.ToolConfig) {
		cfg.Filled = on
		if on {
			cfg.Dashed = false
		}
	})
}

// SetDotted toggles the dashed outline. Enabling it turns fill off.
func (c *Controller) SetDotted(on bool) {
	c.update(func(cfg *drawing.ToolConfig) {
		cfg.Dashed = on
		if on {
			cfg.Filled = false
		}
	})
}

// Undo removes the most recent committed stroke. It reports false when there was nothing to undo.
func (c *Controller) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.m.UndoStroke()
	if ok {
		c.log.Info("undo", "stroke", st.ID, "age", time.Since(st.TS).Round(time.Millisecond),
			"strokes", c.m.StrokeCount())
	} else {
		c.log.Debug("undo on empty history")
	}
	return ok
}

// Clear removes every committed stroke.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.m.Clear()
	c.log.Info("clear", "removed", n)
}

// Color returns the current stroke color, used to seed the color chooser.
func (c *Controller) Color() vector.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.Color()
}

// Config returns a copy of the current tool configuration.
func (c *Controller) Config() drawing.ToolConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.Config()
}

// RenderList returns the model's render list under the controller lock.
func (c *Controller) RenderList() []drawing.RenderItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.RenderList()
}

// Stats reports the committed stroke and primitive counts.
func (c *Controller) Stats() (strokes, primitives int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.History().Stats()
}

func (c *Controller) update(fn func(*drawing.ToolConfig)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.m.Config()
	fn(&cfg)
	c.m.SetConfig(cfg)
	c.log.Debug("tool config", "tool", cfg.Tool.String(), "color", cfg.Color.Hex(),
		"width", cfg.Width, "filled", cfg.Filled, "dashed", cfg.Dashed)
}

func (c *Controller) checkPoint(event string, p vector.Pt) error {
	if p.Finite() {
		return nil
	}
	c.log.Warn("pointer event rejected", "event", event, "x", p.X, "y", p.Y)
	return fmt.Errorf("%w: %s at (%v, %v)", ErrInvalidPoint, event, p.X, p.Y)
}
