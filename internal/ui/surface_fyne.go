//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"paintbrush/internal/interact"
	applog "paintbrush/internal/log"
	"paintbrush/internal/raster"
	"paintbrush/internal/vector"
)

// DrawSurface is the fixed-size drawing area. Mouse press, drag and release
// are forwarded to the controller and the render list is repainted through a
// canvas.Raster backed by a raster.Surface.
type DrawSurface struct {
	widget.BaseWidget

	ctl  *interact.Controller
	w, h int
	log  *slog.Logger

	mu     sync.Mutex // guards surf
	surf   *raster.Surface
	img    *canvas.Raster
	active bool
	last   vector.Pt

	// OnChange is called after every committed gesture, undo or clear.
	OnChange func()
}

var (
	_ desktop.Mouseable = (*DrawSurface)(nil)
	_ fyne.Draggable    = (*DrawSurface)(nil)
)

func NewDrawSurface(ctl *interact.Controller, w, h int, bg vector.Color) *DrawSurface {
	s := &DrawSurface{
		ctl:  ctl,
		w:    w,
		h:    h,
		surf: raster.New(w, h, bg),
		log:  applog.WithComponent("ui.surface"),
	}
	s.img = canvas.NewRaster(s.generate)
	s.ExtendBaseWidget(s)
	return s
}

func (s *DrawSurface) generate(_, _ int) image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, err := s.surf.Paint(s.ctl.RenderList())
	if err != nil {
		s.log.Warn("repaint", slog.Any("err", err))
	}
	return img
}

// MinSize keeps the widget at the canvas size so pointer positions map 1:1.
func (s *DrawSurface) MinSize() fyne.Size { return fyne.NewSize(float32(s.w), float32(s.h)) }

func (s *DrawSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.img)
}

// toCanvas maps a widget position to canvas pixels.
func (s *DrawSurface) toCanvas(pos fyne.Position) vector.Pt {
	sz := s.Size()
	if sz.Width <= 0 || sz.Height <= 0 {
		return vector.P(pos.X, pos.Y)
	}
	return vector.P(pos.X*float32(s.w)/sz.Width, pos.Y*float32(s.h)/sz.Height)
}

func (s *DrawSurface) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || s.active {
		return
	}
	p := s.toCanvas(e.Position)
	if err := s.ctl.PointerDown(p); err != nil {
		s.log.Debug("press ignored", slog.Any("err", err))
		return
	}
	s.active = true
	s.last = p
}

func (s *DrawSurface) Dragged(e *fyne.DragEvent) {
	if !s.active {
		return
	}
	p := s.toCanvas(e.Position)
	if err := s.ctl.PointerMove(p); err != nil {
		s.log.Debug("drag ignored", slog.Any("err", err))
		return
	}
	s.last = p
	s.img.Refresh()
}

func (s *DrawSurface) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.release(s.toCanvas(e.Position))
}

// DragEnd commits at the last drag position when the release happened outside the widget.
func (s *DrawSurface) DragEnd() { s.release(s.last) }

func (s *DrawSurface) release(p vector.Pt) {
	if !s.active {
		return
	}
	s.active = false
	if err := s.ctl.PointerUp(p); err != nil {
		s.log.Warn("release failed", slog.Any("err", err))
	}
	s.changed()
}

// Cancel drops the in-flight gesture.
func (s *DrawSurface) Cancel() {
	if !s.active {
		return
	}
	s.active = false
	s.ctl.Cancel()
	s.img.Refresh()
}

func (s *DrawSurface) Undo() {
	s.ctl.Undo()
	s.changed()
}

func (s *DrawSurface) Clear() {
	s.ctl.Clear()
	s.changed()
}

func (s *DrawSurface) changed() {
	s.img.Refresh()
	if s.OnChange != nil {
		s.OnChange()
	}
}

// Close releases the paint surface.
func (s *DrawSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surf.Close()
}
