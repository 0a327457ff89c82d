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
	"fmt"
	"image/color"
)

// Styles and paint definitions.

type Color struct{ R, G, B, A uint8 }

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// FromColor converts any color.Color to an opaque Color. Alpha is dropped:
// tool colors are RGB only.
func FromColor(c color.Color) Color {
	if c == nil {
		return Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: 255}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Dash pattern used for dashed primitives, in pixels (on, off).
var DashPattern = [2]float32{5, 5}

// StyledPrimitive is one drawable item: geometry plus the style it was drawn with.
// Values are never mutated once produced; copy to change.
type StyledPrimitive struct {
	Geometry Geometry
	Color    Color
	Width    int
	Filled   bool
	Dashed   bool
}

// Fills reports whether the primitive should be filled rather than outlined.
// Lines are never filled.
func (s StyledPrimitive) Fills() bool {
	return s.Filled && s.Geometry.Kind != KindLine
}
