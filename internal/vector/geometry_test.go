/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package vector

import (
	"image/color"
	"math"
	"testing"
)

func TestRectCenterAndEmpty(t *testing.T) {
	r := R(10, 20, 100, 50)
	if r.Empty() || !R(10, 20, 0, 50).Empty() {
		t.Fatalf("Empty misreports area")
	}
	if c := r.Center(); c.X != 60 || c.Y != 45 {
		t.Fatalf("unexpected center: %+v", c)
	}
}

func TestBuildShapeRectangleNormalizes(t *testing.T) {
	g := BuildShape(KindRectangle, P(30, 40), P(10, 5))
	if g.Kind != KindRectangle {
		t.Fatalf("kind = %v", g.Kind)
	}
	if g.Rect != R(10, 5, 20, 35) {
		t.Fatalf("unexpected rect: %+v", g.Rect)
	}
}

func TestBuildShapeEllipseIsSquareBounded(t *testing.T) {
	g := BuildShape(KindEllipse, P(0, 0), P(10, 4))
	if g.Rect != R(0, 0, 10, 10) {
		t.Fatalf("expected 10x10 circle bounds, got %+v", g.Rect)
	}
	// anchored at the top-left of the delta box, not centered on the gesture
	g = BuildShape(KindEllipse, P(20, 20), P(16, 8))
	if g.Rect != R(16, 8, 12, 12) {
		t.Fatalf("unexpected ellipse rect: %+v", g.Rect)
	}
}

func TestBuildShapeLineKeepsEndpoints(t *testing.T) {
	g := BuildShape(KindLine, P(50, 60), P(10, 70))
	if g.P1 != P(50, 60) || g.P2 != P(10, 70) {
		t.Fatalf("line endpoints changed: %+v", g)
	}
}

func TestDegenerateAndFinite(t *testing.T) {
	if !BuildShape(KindRectangle, P(3, 3), P(3, 9)).Degenerate() {
		t.Fatalf("zero-width rectangle should be degenerate")
	}
	if BuildShape(KindLine, P(3, 3), P(3, 9)).Degenerate() {
		t.Fatalf("vertical line is not degenerate")
	}
	nan := float32(math.NaN())
	if LineGeom(P(0, 0), P(nan, 1)).Finite() {
		t.Fatalf("NaN coordinate reported as finite")
	}
	if !RectGeom(R(1, 2, 3, 4)).Finite() {
		t.Fatalf("plain rect should be finite")
	}
}

func TestFromColorDropsAlpha(t *testing.T) {
	c := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	if c != (Color{10, 20, 30, 255}) {
		t.Fatalf("unexpected color: %+v", c)
	}
	if FromColor(nil) != Black {
		t.Fatalf("nil color should map to black")
	}
	if White.Hex() != "#ffffff" {
		t.Fatalf("hex = %s", White.Hex())
	}
}

func TestFillsIgnoredForLines(t *testing.T) {
	line := StyledPrimitive{Geometry: LineGeom(P(0, 0), P(1, 1)), Filled: true}
	if line.Fills() {
		t.Fatalf("lines must never fill")
	}
	rect := StyledPrimitive{Geometry: RectGeom(R(0, 0, 1, 1)), Filled: true}
	if !rect.Fills() {
		t.Fatalf("filled rectangle should fill")
	}
}
