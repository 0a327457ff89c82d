/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package script

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"paintbrush/internal/config"
	"paintbrush/internal/drawing"
	"paintbrush/internal/interact"
	applog "paintbrush/internal/log"
	"paintbrush/internal/vector"
)

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Load reads and validates a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML script, checks it against the embedded JSON Schema and
// resolves tool names and colors. Every problem found is reported in a
// *ValidationError, which matches ErrInvalidScript.
func Parse(data []byte) (Script, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Script{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if raw == nil {
		return Script{}, &ValidationError{Errors: []Error{{Message: "empty document"}}}
	}
	schema, err := compiledSchema()
	if err != nil {
		return Script{}, fmt.Errorf("load schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return Script{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if !res.Valid() {
		verr := &ValidationError{}
		for _, e := range res.Errors() {
			verr.Errors = append(verr.Errors, Error{Field: e.Field(), Message: e.Description()})
		}
		return Script{}, verr
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	var errs []Error
	if s.Canvas.Background != "" {
		if _, err := config.ParseColor(s.Canvas.Background); err != nil {
			errs = append(errs, Error{Field: "canvas.background", Message: err.Error()})
		}
	}
	for i, ev := range s.Events {
		var err error
		name, _ := ev.Value.(string)
		switch ev.Op {
		case OpTool:
			_, err = drawing.ParseTool(name)
		case OpColor:
			_, err = config.ParseColor(name)
		}
		if err != nil {
			errs = append(errs, Error{Field: fmt.Sprintf("events.%d.value", i), Message: err.Error()})
		}
	}
	if len(errs) > 0 {
		return Script{}, &ValidationError{Errors: errs}
	}
	return s, nil
}

// Options applies the script's canvas overrides to base.
func (s Script) Options(base drawing.Options) (drawing.Options, error) {
	if s.Canvas.Width > 0 {
		base.Width = s.Canvas.Width
	}
	if s.Canvas.Height > 0 {
		base.Height = s.Canvas.Height
	}
	if s.Canvas.Background != "" {
		bg, err := config.ParseColor(s.Canvas.Background)
		if err != nil {
			return base, err
		}
		base.Background = bg
	}
	return base, nil
}

// Replay feeds every event to c in order. It stops at the first failing event
// or when ctx is done.
func Replay(ctx context.Context, c *interact.Controller, s Script) error {
	l := applog.WithOperation(applog.WithComponent("script"), "replay")
	for i, ev := range s.Events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := apply(c, ev); err != nil {
			l.WarnContext(ctx, "event failed", "index", i, "op", string(ev.Op), "err", err)
			return fmt.Errorf("event %d (%s): %w", i, ev.Op, err)
		}
	}
	strokes, prims := c.Stats()
	l.InfoContext(ctx, "replay finished", "events", len(s.Events), "strokes", strokes, "primitives", prims)
	return nil
}

func apply(c *interact.Controller, ev Event) error {
	p := vector.P(float32(ev.X), float32(ev.Y))
	switch ev.Op {
	case OpDown:
		return c.PointerDown(p)
	case OpMove:
		return c.PointerMove(p)
	case OpUp:
		return c.PointerUp(p)
	case OpCancel:
		c.Cancel()
	case OpTool:
		name, _ := ev.Value.(string)
		t, err := drawing.ParseTool(name)
		if err != nil {
			return err
		}
		c.SetTool(t)
	case OpColor:
		name, _ := ev.Value.(string)
		col, err := config.ParseColor(name)
		if err != nil {
			return err
		}
		c.SetColor(col)
	case OpWidth:
		n, err := intValue(ev.Value)
		if err != nil {
			return err
		}
		c.SetStrokeWidth(n)
	case OpFilled:
		on, _ := ev.Value.(bool)
		c.SetFilled(on)
	case OpDotted:
		on, _ := ev.Value.(bool)
		c.SetDotted(on)
	case OpUndo:
		c.Undo()
	case OpClear:
		c.Clear()
	default:
		return fmt.Errorf("unknown op %q", ev.Op)
	}
	return nil
}

// intValue accepts whole numbers in either YAML integer or float form.
func intValue(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("width value %v is not an integer", v)
}
