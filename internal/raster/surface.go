/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package raster paints a drawing render list onto a fixed-size RGBA surface.
package raster

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"

	"paintbrush/internal/drawing"
	applog "paintbrush/internal/log"
	"paintbrush/internal/vector"
)

// Surface is a reusable paint target. It is not safe for concurrent use.
type Surface struct {
	w, h int
	bg   vector.Color
	dc   *gg.Context
	log  *slog.Logger
}

// New returns a w x h surface cleared to bg on every paint.
func New(w, h int, bg vector.Color) *Surface {
	w, h = max(w, 1), max(h, 1)
	return &Surface{w: w, h: h, bg: bg, dc: gg.NewContext(w, h), log: applog.WithComponent("raster")}
}

func (s *Surface) Size() (w, h int) { return s.w, s.h }

// Paint clears the surface and draws items in order, later over earlier. It
// always returns the painted image; err collects per-item failures.
func (s *Surface) Paint(items []drawing.RenderItem) (image.Image, error) {
	s.dc.ClearWithColor(gg.FromColor(s.bg))
	var errs []error
	for i, it := range items {
		if err := s.draw(it.Primitive, it.Pending); err != nil {
			errs = append(errs, fmt.Errorf("item %d (%s): %w", i, it.Primitive.Geometry.Kind, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		s.log.Warn("paint incomplete", "items", len(items), "failed", len(errs))
		return s.dc.Image(), err
	}
	return s.dc.Image(), nil
}

// Close releases the drawing context.
func (s *Surface) Close() error { return s.dc.Close() }

// draw paints one primitive. Pending freehand segments are painted solid.
func (s *Surface) draw(p vector.StyledPrimitive, pending bool) error {
	g := p.Geometry
	if !g.Finite() {
		return errors.New("non-finite geometry")
	}
	dc := s.dc
	dc.SetColor(p.Color)
	dc.SetLineWidth(float64(max(p.Width, 1)))
	if p.Dashed && !p.Fills() && !pending {
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.SetDash(float64(vector.DashPattern[0]), float64(vector.DashPattern[1]))
	} else {
		dc.SetLineCap(gg.LineCapSquare)
		dc.SetLineJoin(gg.LineJoinMiter)
		dc.ClearDash()
	}

	switch g.Kind {
	case vector.KindLine:
		dc.DrawLine(float64(g.P1.X), float64(g.P1.Y), float64(g.P2.X), float64(g.P2.Y))
		return dc.Stroke()
	case vector.KindRectangle:
		if g.Rect.Empty() {
			return nil
		}
		r := g.Rect
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	case vector.KindEllipse:
		if g.Rect.Empty() {
			return nil
		}
		c := g.Rect.Center()
		dc.DrawEllipse(float64(c.X), float64(c.Y), float64(g.Rect.W)/2, float64(g.Rect.H)/2)
	default:
		return fmt.Errorf("unknown geometry kind %d", g.Kind)
	}
	if p.Fills() {
		return dc.Fill()
	}
	return dc.Stroke()
}
