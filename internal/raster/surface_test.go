/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package raster

import (
	"image"
	"image/color"
	"testing"

	"paintbrush/internal/drawing"
	"paintbrush/internal/vector"
)

var (
	red  = vector.RGB(255, 0, 0)
	blue = vector.RGB(0, 0, 255)
)

func at(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func near(c color.RGBA, want vector.Color) bool {
	d := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	return d(c.R, want.R) < 16 && d(c.G, want.G) < 16 && d(c.B, want.B) < 16
}

func item(p vector.StyledPrimitive) drawing.RenderItem { return drawing.RenderItem{Primitive: p} }

func paint(t *testing.T, items ...drawing.RenderItem) image.Image {
	t.Helper()
	s := New(100, 100, vector.White)
	defer s.Close()
	img, err := s.Paint(items)
	if err != nil {
		t.Fatalf("Paint error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("unexpected bounds %v", b)
	}
	return img
}

func TestPaintEmptyListIsBackground(t *testing.T) {
	img := paint(t)
	if !near(at(img, 50, 50), vector.White) {
		t.Fatalf("expected white background, got %+v", at(img, 50, 50))
	}
}

func TestFilledRectangleAndOutline(t *testing.T) {
	img := paint(t,
		item(vector.StyledPrimitive{Geometry: vector.RectGeom(vector.R(10, 10, 30, 30)), Color: red, Width: 2, Filled: true}),
		item(vector.StyledPrimitive{Geometry: vector.RectGeom(vector.R(50, 50, 40, 40)), Color: blue, Width: 4}),
	)
	if !near(at(img, 25, 25), red) {
		t.Fatalf("filled rect interior = %+v", at(img, 25, 25))
	}
	if !near(at(img, 70, 70), vector.White) {
		t.Fatalf("outlined rect interior should stay white, got %+v", at(img, 70, 70))
	}
	if !near(at(img, 50, 70), blue) {
		t.Fatalf("outline edge = %+v", at(img, 50, 70))
	}
}

func TestFilledEllipseCenter(t *testing.T) {
	img := paint(t, item(vector.StyledPrimitive{
		Geometry: vector.EllipseGeom(vector.R(20, 20, 60, 60)), Color: blue, Width: 1, Filled: true,
	}))
	if !near(at(img, 50, 50), blue) {
		t.Fatalf("ellipse center = %+v", at(img, 50, 50))
	}
	if !near(at(img, 22, 22), vector.White) {
		t.Fatalf("bounding box corner should be outside the circle, got %+v", at(img, 22, 22))
	}
}

func TestLaterItemsPaintOver(t *testing.T) {
	r := vector.RectGeom(vector.R(0, 0, 100, 100))
	img := paint(t,
		item(vector.StyledPrimitive{Geometry: r, Color: red, Width: 1, Filled: true}),
		item(vector.StyledPrimitive{Geometry: r, Color: blue, Width: 1, Filled: true}),
	)
	if !near(at(img, 50, 50), blue) {
		t.Fatalf("expected last item on top, got %+v", at(img, 50, 50))
	}
}

func TestFilledLineIsStroked(t *testing.T) {
	img := paint(t, item(vector.StyledPrimitive{
		Geometry: vector.LineGeom(vector.P(10, 50), vector.P(90, 50)), Color: vector.Black, Width: 6, Filled: true,
	}))
	if !near(at(img, 50, 50), vector.Black) {
		t.Fatalf("line pixel = %+v", at(img, 50, 50))
	}
	if !near(at(img, 50, 20), vector.White) {
		t.Fatalf("pixel away from the line = %+v", at(img, 50, 20))
	}
}

func TestDashedLineHasGaps(t *testing.T) {
	img := paint(t, item(vector.StyledPrimitive{
		Geometry: vector.LineGeom(vector.P(0, 10), vector.P(100, 10)), Color: vector.Black, Width: 2, Dashed: true,
	}))
	var ink, gap bool
	for x := 2; x < 98; x++ {
		c := at(img, x, 10)
		if c.R < 60 {
			ink = true
		}
		if c.R > 200 {
			gap = true
		}
	}
	if !ink || !gap {
		t.Fatalf("dashed line should alternate ink and gaps (ink=%v gap=%v)", ink, gap)
	}
}

func TestPendingDashedSegmentIsSolid(t *testing.T) {
	it := item(vector.StyledPrimitive{
		Geometry: vector.LineGeom(vector.P(0, 10), vector.P(100, 10)), Color: vector.Black, Width: 2, Dashed: true,
	})
	it.Pending = true
	img := paint(t, it)
	for x := 2; x < 98; x++ {
		if c := at(img, x, 10); c.R > 100 {
			t.Fatalf("pending segment has a gap at x=%d: %+v", x, c)
		}
	}
}

func TestSolidLineHasSquareCaps(t *testing.T) {
	img := paint(t, item(vector.StyledPrimitive{
		Geometry: vector.LineGeom(vector.P(20, 50), vector.P(80, 50)), Color: vector.Black, Width: 10,
	}))
	// a square cap extends half the width past the endpoint, corners included
	if !near(at(img, 15, 45), vector.Black) {
		t.Fatalf("square cap corner = %+v", at(img, 15, 45))
	}
	if !near(at(img, 90, 50), vector.White) {
		t.Fatalf("pixel past the cap = %+v", at(img, 90, 50))
	}
}

func TestDashedLineHasRoundCaps(t *testing.T) {
	img := paint(t, item(vector.StyledPrimitive{
		Geometry: vector.LineGeom(vector.P(20, 50), vector.P(22, 50)), Color: vector.Black, Width: 10, Dashed: true,
	}))
	// a round cap leaves the bounding corner of the cap unpainted
	if !near(at(img, 15, 45), vector.White) {
		t.Fatalf("round cap corner = %+v", at(img, 15, 45))
	}
	if !near(at(img, 16, 50), vector.Black) {
		t.Fatalf("round cap tip = %+v", at(img, 16, 50))
	}
}

func TestDegenerateShapesAreSkipped(t *testing.T) {
	img := paint(t,
		item(vector.StyledPrimitive{Geometry: vector.RectGeom(vector.R(50, 50, 0, 20)), Color: red, Width: 4}),
		item(vector.StyledPrimitive{Geometry: vector.EllipseGeom(vector.R(50, 50, 0, 0)), Color: red, Width: 4, Filled: true}),
	)
	if !near(at(img, 50, 55), vector.White) {
		t.Fatalf("degenerate shape painted: %+v", at(img, 50, 55))
	}
}

func TestPaintModelRenderList(t *testing.T) {
	m := drawing.New(drawing.Options{Width: 100, Height: 100})
	cfg := m.Config()
	cfg.Tool = drawing.Rectangle
	cfg.Color = red
	cfg.Filled = true
	m.SetConfig(cfg)
	_ = m.BeginGesture(vector.P(10, 10))
	_, _ = m.CommitGesture(vector.P(60, 60))

	cfg.Tool = drawing.Eraser
	cfg.Width = 10
	m.SetConfig(cfg)
	_ = m.BeginGesture(vector.P(0, 35))
	_ = m.ExtendFreehand(vector.P(100, 35))
	_, _ = m.CommitGesture(vector.P(100, 35))

	w, h := m.Size()
	s := New(w, h, m.Background())
	defer s.Close()
	img, err := s.Paint(m.RenderList())
	if err != nil {
		t.Fatalf("Paint error: %v", err)
	}
	if !near(at(img, 20, 20), red) {
		t.Fatalf("rect pixel = %+v", at(img, 20, 20))
	}
	if !near(at(img, 30, 35), vector.White) {
		t.Fatalf("erased pixel = %+v", at(img, 30, 35))
	}
}
