/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package history keeps the committed drawing: an ordered list of strokes that is
// append-only except for undo (pop last) and clear (empty).
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"paintbrush/internal/vector"
)

// Stroke is the output of one press-drag-release gesture. It always holds at
// least one primitive. ID is informational (logs, crash reports) and plays no
// part in rendering.
type Stroke struct {
	ID         string
	Primitives []vector.StyledPrimitive
	TS         time.Time
}

// NewStroke wraps prims into a stroke with a fresh ID. The slice is copied so
// later appends by the caller cannot leak into committed history.
func NewStroke(prims []vector.StyledPrimitive) Stroke {
	cp := make([]vector.StyledPrimitive, len(prims))
	copy(cp, prims)
	return Stroke{ID: uuid.NewString(), Primitives: cp, TS: time.Now()}
}

// History is the ordered sequence of committed strokes. Insertion order is
// paint order. It is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	strokes []Stroke
	// accounting
	totalPrims int
}

func New() *History {
	return &History{}
}

// Push appends a stroke. Empty strokes are refused and reported as false.
func (h *History) Push(s Stroke) bool {
	if len(s.Primitives) == 0 {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.strokes = append(h.strokes, s)
	h.totalPrims += len(s.Primitives)
	return true
}

// Pop removes and returns the most recent stroke.
func (h *History) Pop() (Stroke, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.strokes)
	if n == 0 {
		return Stroke{}, false
	}
	s := h.strokes[n-1]
	h.strokes[n-1] = Stroke{}
	h.strokes = h.strokes[:n-1]
	h.totalPrims -= len(s.Primitives)
	return s, true
}

// Clear drops every stroke and returns how many were removed.
func (h *History) Clear() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.strokes)
	h.strokes = nil
	h.totalPrims = 0
	return n
}

// Len returns the number of committed strokes.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.strokes)
}

// Last returns the most recent stroke without removing it.
func (h *History) Last() (Stroke, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.strokes) == 0 {
		return Stroke{}, false
	}
	return h.strokes[len(h.strokes)-1], true
}

// AppendPrimitives appends every committed primitive, in paint order, to dst.
func (h *History) AppendPrimitives(dst []vector.StyledPrimitive) []vector.StyledPrimitive {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.strokes {
		dst = append(dst, s.Primitives...)
	}
	return dst
}

// Stats returns current sizes for diagnostics.
func (h *History) Stats() (strokes int, primitives int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.strokes), h.totalPrims
}
