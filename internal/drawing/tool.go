/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package drawing

import (
	"fmt"
	"strings"

	"paintbrush/internal/vector"
)

// Tool is the active drawing tool.
type Tool int

const (
	Freehand Tool = iota
	Rectangle
	Ellipse
	Line
	Eraser
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{Freehand, Rectangle, Ellipse, Line, Eraser}

func (t Tool) String() string {
	switch t {
	case Freehand:
		return "freehand"
	case Rectangle:
		return "rectangle"
	case Ellipse:
		return "ellipse"
	case Line:
		return "line"
	case Eraser:
		return "eraser"
	default:
		return fmt.Sprintf("tool(%d)", int(t))
	}
}

// ParseTool accepts the names produced by String; "circle" and "pen" are accepted as aliases.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "freehand", "pen":
		return Freehand, nil
	case "rectangle", "rect":
		return Rectangle, nil
	case "ellipse", "circle":
		return Ellipse, nil
	case "line":
		return Line, nil
	case "eraser":
		return Eraser, nil
	}
	return Freehand, fmt.Errorf("unknown tool %q", s)
}

// Accumulates reports whether the tool records a freehand polyline rather than a
// single parametric shape.
func (t Tool) Accumulates() bool { return t == Freehand || t == Eraser }

// shapeKind maps a parametric tool to the geometry it builds.
func (t Tool) shapeKind() vector.Kind {
	switch t {
	case Rectangle:
		return vector.KindRectangle
	case Ellipse:
		return vector.KindEllipse
	default:
		return vector.KindLine
	}
}

// Stroke width bounds enforced at the controller boundary.
const (
	MinStrokeWidth     = 1
	MaxStrokeWidth     = 20
	DefaultStrokeWidth = 4
)

// ToolConfig is the current drawing style. Filled and Dashed are kept mutually
// exclusive by the controller; the model takes whatever it is given.
type ToolConfig struct {
	Tool   Tool
	Color  vector.Color
	Width  int
	Filled bool
	Dashed bool
}

// DefaultToolConfig returns black freehand at the default width.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{Tool: Freehand, Color: vector.Black, Width: DefaultStrokeWidth}
}
