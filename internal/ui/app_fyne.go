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
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"paintbrush/internal/config"
	"paintbrush/internal/crash"
	"paintbrush/internal/drawing"
	"paintbrush/internal/interact"
	applog "paintbrush/internal/log"
	"paintbrush/internal/version"
)

// Run starts the Fyne-based desktop drawing window and blocks until it is closed.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	gg.SetLogger(applog.WithComponent("gg"))

	opts, err := cfg.DrawingOptions()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	model := drawing.New(opts)
	ctl := interact.New(model)
	w0, h0 := model.Size()
	defer crash.Recover(&crash.Info{Width: w0, Height: h0, Stats: ctl.Stats})

	l.Info("starting UI", "width", w0, "height", h0)
	fyneApp := app.NewWithID("paintbrush")
	w := fyneApp.NewWindow("Paint Brush")
	prefs := fyneApp.Preferences()
	winW := max(prefs.IntWithFallback("window.width", w0+40), 640)
	winH := max(prefs.IntWithFallback("window.height", h0+140), 480)
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	surface := NewDrawSurface(ctl, w0, h0, model.Background())
	status := widget.NewLabel("")
	updateStatus := func() {
		strokes, prims := ctl.Stats()
		status.SetText(fmt.Sprintf("%s  |  %d strokes, %d segments", ctl.Config().Tool, strokes, prims))
	}
	surface.OnChange = updateStatus

	toolbar := newToolbar(ctl, surface, w, updateStatus)

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			surface.Cancel()
		}
	})

	undoItem := fyne.NewMenuItem("Undo", surface.Undo)
	undoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	clearItem := fyne.NewMenuItem("Clear", surface.Clear)
	editMenu := fyne.NewMenu("Edit", undoItem, clearItem)
	w.Canvas().AddShortcut(undoItem.Shortcut, func(fyne.Shortcut) { surface.Undo() })

	aboutItem := fyne.NewMenuItem("About Paint Brush", func() {
		exe, _ := os.Executable()
		info := fmt.Sprintf("Paint Brush\nVersion: %s\nOS: %s\nArch: %s\nGo: %s\nExecutable: %s\nCanvas: %dx%d",
			version.String(), runtime.GOOS, runtime.GOARCH, runtime.Version(), exe, w0, h0)
		dialog.ShowInformation("About", info, w)
	})
	copyrightItem := fyne.NewMenuItem("Copyright…", func() {
		msg := fmt.Sprintf("Paint Brush\nCopyright © 2025-%d Alexander Drost\n\nLicensed under the Apache License, Version 2.0.", time.Now().Year())
		dialog.ShowInformation("Copyright", msg, w)
	})
	w.SetMainMenu(fyne.NewMainMenu(editMenu, fyne.NewMenu("About", aboutItem, copyrightItem)))

	updateStatus()
	w.SetContent(container.NewBorder(toolbar, status, nil, nil, container.NewCenter(surface)))

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		if err := surface.Close(); err != nil {
			l.Warn("close surface", slog.Any("err", err))
		}
		w.Close()
	})

	w.ShowAndRun()
	l.Info("UI closed")
	return nil
}

// newToolbar builds tool selection, color, width, fill/dash toggles, undo and clear.
func newToolbar(ctl *interact.Controller, surface *DrawSurface, w fyne.Window, onChange func()) fyne.CanvasObject {
	cfg := ctl.Config()

	names := make([]string, 0, len(drawing.Tools))
	for _, t := range drawing.Tools {
		names = append(names, t.String())
	}
	tools := widget.NewRadioGroup(names, func(sel string) {
		if t, err := drawing.ParseTool(sel); err == nil {
			ctl.SetTool(t)
			onChange()
		}
	})
	tools.Horizontal = true
	tools.Required = true
	tools.SetSelected(cfg.Tool.String())

	swatch := canvas.NewRectangle(ctl.Color())
	swatch.SetMinSize(fyne.NewSize(24, 24))
	swatch.StrokeColor = color.Gray{Y: 90}
	swatch.StrokeWidth = 1
	colorBtn := widget.NewButton("Color…", func() {
		picker := dialog.NewColorPicker("Stroke color", "Choose the drawing color", func(c color.Color) {
			ctl.SetColor(c)
			swatch.FillColor = ctl.Color()
			swatch.Refresh()
		}, w)
		picker.Advanced = true
		picker.SetColor(ctl.Color())
		picker.Show()
	})

	widthLabel := widget.NewLabel(fmt.Sprintf("%2d px", cfg.Width))
	slider := widget.NewSlider(drawing.MinStrokeWidth, drawing.MaxStrokeWidth)
	slider.Step = 1
	slider.SetValue(float64(cfg.Width))
	slider.OnChanged = func(v float64) {
		ctl.SetStrokeWidth(int(v))
		widthLabel.SetText(fmt.Sprintf("%2d px", ctl.Config().Width))
	}

	var filled, dotted *widget.Check
	syncToggles := func() {
		c := ctl.Config()
		filled.SetChecked(c.Filled)
		dotted.SetChecked(c.Dashed)
	}
	filled = widget.NewCheck("Filled", func(on bool) { ctl.SetFilled(on); syncToggles() })
	dotted = widget.NewCheck("Dotted", func(on bool) { ctl.SetDotted(on); syncToggles() })
	filled.SetChecked(cfg.Filled)
	dotted.SetChecked(cfg.Dashed)

	undo := widget.NewButton("Undo", surface.Undo)
	clearBtn := widget.NewButton("Clear", surface.Clear)

	return container.NewVBox(
		tools,
		container.NewHBox(swatch, colorBtn, widget.NewSeparator(),
			widget.NewLabel("Width"), container.NewGridWrap(fyne.NewSize(160, 36), slider), widthLabel,
			widget.NewSeparator(), filled, dotted, widget.NewSeparator(), undo, clearBtn),
	)
}
