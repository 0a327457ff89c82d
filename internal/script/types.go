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
	"errors"
	"strings"
)

// Script is a headless sequence of pointer and toolbar events replayed
// against a drawing controller. Scripts are YAML documents:
//
//	canvas: {width: 200, height: 100, background: white}
//	events:
//	  - {op: tool, value: rectangle}
//	  - {op: down, x: 10, y: 10}
//	  - {op: move, x: 50, y: 40}
//	  - {op: up, x: 50, y: 40}
type Script struct {
	Canvas Canvas  `yaml:"canvas"`
	Events []Event `yaml:"events"`
}

// Canvas overrides the configured surface. Zero values keep the configured value.
type Canvas struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

// Op names an event.
type Op string

const (
	OpDown   Op = "down"
	OpMove   Op = "move"
	OpUp     Op = "up"
	OpCancel Op = "cancel"
	OpTool   Op = "tool"
	OpColor  Op = "color"
	OpWidth  Op = "width"
	OpFilled Op = "filled"
	OpDotted Op = "dotted"
	OpUndo   Op = "undo"
	OpClear  Op = "clear"
)

// Event is one scripted input. X and Y are used by pointer ops; Value by
// toolbar ops (string for tool and color, integer for width, bool for toggles).
type Event struct {
	Op    Op      `yaml:"op"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Value any     `yaml:"value"`
}

// ErrInvalidScript marks documents that fail to decode or validate.
var ErrInvalidScript = errors.New("invalid event script")

// Error is a single validation problem, located by field path.
type Error struct {
	Field   string
	Message string
}

func (e Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationError lists every problem found in a document.
type ValidationError struct {
	Errors []Error
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		parts = append(parts, e.Error())
	}
	return ErrInvalidScript.Error() + ": " + strings.Join(parts, "; ")
}

func (v *ValidationError) Unwrap() error { return ErrInvalidScript }
