/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package history

import (
	"testing"

	"paintbrush/internal/vector"
)

func line(x float32) vector.StyledPrimitive {
	return vector.StyledPrimitive{
		Geometry: vector.LineGeom(vector.P(x, 0), vector.P(x+1, 1)),
		Color:    vector.Black,
		Width:    1,
	}
}

func TestPushPopOrder(t *testing.T) {
	h := New()
	a := NewStroke([]vector.StyledPrimitive{line(1)})
	b := NewStroke([]vector.StyledPrimitive{line(2), line(3)})
	if !h.Push(a) || !h.Push(b) {
		t.Fatalf("push refused a non-empty stroke")
	}
	if strokes, prims := h.Stats(); strokes != 2 || prims != 3 {
		t.Fatalf("unexpected stats: strokes=%d prims=%d", strokes, prims)
	}
	got, ok := h.Pop()
	if !ok || got.ID != b.ID {
		t.Fatalf("pop expected last stroke %s, got ok=%v id=%s", b.ID, ok, got.ID)
	}
	if strokes, prims := h.Stats(); strokes != 1 || prims != 1 {
		t.Fatalf("unexpected stats after pop: strokes=%d prims=%d", strokes, prims)
	}
}

func TestPopEmptyIsNoop(t *testing.T) {
	h := New()
	if _, ok := h.Pop(); ok {
		t.Fatalf("pop on empty history should report false")
	}
	if h.Len() != 0 {
		t.Fatalf("len = %d", h.Len())
	}
}

func TestPushRejectsEmptyStroke(t *testing.T) {
	h := New()
	if h.Push(NewStroke(nil)) {
		t.Fatalf("empty stroke must not be recorded")
	}
	if h.Len() != 0 {
		t.Fatalf("history should stay empty")
	}
}

func TestClearIdempotent(t *testing.T) {
	h := New()
	h.Push(NewStroke([]vector.StyledPrimitive{line(1)}))
	if n := h.Clear(); n != 1 {
		t.Fatalf("first clear removed %d strokes, want 1", n)
	}
	if n := h.Clear(); n != 0 {
		t.Fatalf("second clear removed %d strokes, want 0", n)
	}
	if got := h.AppendPrimitives(nil); len(got) != 0 {
		t.Fatalf("expected no primitives, got %d", len(got))
	}
}

func TestNewStrokeCopiesInput(t *testing.T) {
	prims := []vector.StyledPrimitive{line(1), line(2)}
	s := NewStroke(prims)
	prims[0] = line(99)
	if s.Primitives[0] != line(1) {
		t.Fatalf("stroke shares backing array with caller")
	}
	if s.ID == "" {
		t.Fatalf("stroke id not assigned")
	}
}

func TestAppendPrimitivesPaintOrder(t *testing.T) {
	h := New()
	h.Push(NewStroke([]vector.StyledPrimitive{line(1), line(2)}))
	h.Push(NewStroke([]vector.StyledPrimitive{line(3)}))
	got := h.AppendPrimitives(nil)
	want := []vector.StyledPrimitive{line(1), line(2), line(3)}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("primitive %d out of order: %+v", i, got[i])
		}
	}
}

func TestLastPeeksWithoutRemoving(t *testing.T) {
	h := New()
	if _, ok := h.Last(); ok {
		t.Fatalf("Last on empty history should report false")
	}
	a := NewStroke([]vector.StyledPrimitive{line(1)})
	b := NewStroke([]vector.StyledPrimitive{line(2)})
	h.Push(a)
	h.Push(b)
	got, ok := h.Last()
	if !ok || got.ID != b.ID {
		t.Fatalf("Last = %s (ok=%v), want %s", got.ID, ok, b.ID)
	}
	if h.Len() != 2 {
		t.Fatalf("Last must not remove, len=%d", h.Len())
	}
	if a.ID == b.ID || a.ID == "" {
		t.Fatalf("stroke IDs must be unique and non-empty: %q %q", a.ID, b.ID)
	}
}
