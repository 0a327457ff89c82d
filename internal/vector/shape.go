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

// Kind tags the variant held by a Geometry.
type Kind uint8

const (
	KindLine Kind = iota
	KindRectangle
	KindEllipse
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Geometry is a tagged union: a Line uses P1/P2, a Rectangle or Ellipse uses Rect
// (the ellipse is inscribed in it). Unused fields are zero.
type Geometry struct {
	Kind Kind
	P1   Pt
	P2   Pt
	Rect Rect
}

func LineGeom(p1, p2 Pt) Geometry { return Geometry{Kind: KindLine, P1: p1, P2: p2} }
func RectGeom(r Rect) Geometry    { return Geometry{Kind: KindRectangle, Rect: r} }
func EllipseGeom(r Rect) Geometry { return Geometry{Kind: KindEllipse, Rect: r} }

// Degenerate reports whether the geometry paints nothing on its own
// (zero-length line, zero-area rectangle or ellipse).
func (g Geometry) Degenerate() bool {
	if g.Kind == KindLine {
		return g.P1 == g.P2
	}
	return g.Rect.Empty()
}

// Finite reports whether every coordinate is a finite number.
func (g Geometry) Finite() bool {
	if g.Kind == KindLine {
		return g.P1.Finite() && g.P2.Finite()
	}
	return finite(g.Rect.X) && finite(g.Rect.Y) && finite(g.Rect.W) && finite(g.Rect.H)
}

// BuildShape derives a parametric shape from the gesture anchor and the current
// pointer position. It is the single construction rule for both preview and
// commit, so the two always agree.
//
//   - Rectangle: top-left at the component-wise minimum, size |dx| x |dy|.
//   - Ellipse: same top-left, forced circular with diameter max(|dx|, |dy|).
//   - Line: exactly anchor to current.
func BuildShape(kind Kind, anchor, current Pt) Geometry {
	x := min(anchor.X, current.X)
	y := min(anchor.Y, current.Y)
	w := absf(current.X - anchor.X)
	h := absf(current.Y - anchor.Y)
	switch kind {
	case KindRectangle:
		return RectGeom(Rect{X: x, Y: y, W: w, H: h})
	case KindEllipse:
		d := max(w, h)
		return EllipseGeom(Rect{X: x, Y: y, W: d, H: d})
	default:
		return LineGeom(anchor, current)
	}
}
