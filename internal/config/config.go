/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"paintbrush/internal/drawing"
	"paintbrush/internal/log"
	"paintbrush/internal/vector"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // "#rrggbb" or an SVG color name
}

type ToolsConfig struct {
	Tool        string `yaml:"tool"`
	Color       string `yaml:"color"`
	StrokeWidth int    `yaml:"stroke_width"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Canvas        CanvasConfig  `yaml:"canvas"`
	Tools         ToolsConfig   `yaml:"tools"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Canvas:        CanvasConfig{Width: drawing.DefaultWidth, Height: drawing.DefaultHeight, Background: "white"},
		Tools:         ToolsConfig{Tool: drawing.Freehand.String(), Color: "black", StrokeWidth: drawing.DefaultStrokeWidth},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath   = "PB_CONFIG"
	EnvCanvasWidth  = "PB_CANVAS_WIDTH"
	EnvCanvasHeight = "PB_CANVAS_HEIGHT"
	EnvBackground   = "PB_BACKGROUND"
	EnvLogLevel     = "PB_LOG_LEVEL"
	EnvLogFormat    = "PB_LOG_FORMAT"
	EnvLogSource    = "PB_LOG_SOURCE"
	EnvLogFile      = "PB_LOG_FILE"
)

// ConfigPath returns the per-user config file path, or PB_CONFIG when set.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "paintbrush", "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges environment overrides.
// A missing file is not an error; a malformed one is.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	case !errors.Is(err, os.ErrNotExist):
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Canvas.Width > 0 {
		dst.Canvas.Width = src.Canvas.Width
	}
	if src.Canvas.Height > 0 {
		dst.Canvas.Height = src.Canvas.Height
	}
	if v := strings.TrimSpace(src.Canvas.Background); v != "" {
		dst.Canvas.Background = v
	}
	if v := strings.TrimSpace(src.Tools.Tool); v != "" {
		dst.Tools.Tool = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Tools.Color); v != "" {
		dst.Tools.Color = v
	}
	if src.Tools.StrokeWidth != 0 {
		dst.Tools.StrokeWidth = src.Tools.StrokeWidth
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	dst.Logging.Source = src.Logging.Source
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvCanvasWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Canvas.Width = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCanvasHeight)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Canvas.Height = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvBackground)); v != "" {
		cfg.Canvas.Background = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// LogOptions maps the logging section onto logger options.
func (c AppConfig) LogOptions() log.Options {
	return log.Options{Level: c.Logging.Level, Format: c.Logging.Format, AddSource: c.Logging.Source, File: c.Logging.File}
}

// DrawingOptions resolves colors and the tool name into model options. Stroke
// width is clamped to the slider range.
func (c AppConfig) DrawingOptions() (drawing.Options, error) {
	bg, err := ParseColor(c.Canvas.Background)
	if err != nil {
		return drawing.Options{}, fmt.Errorf("canvas.background: %w", err)
	}
	fg, err := ParseColor(c.Tools.Color)
	if err != nil {
		return drawing.Options{}, fmt.Errorf("tools.color: %w", err)
	}
	tool, err := drawing.ParseTool(c.Tools.Tool)
	if err != nil {
		return drawing.Options{}, fmt.Errorf("tools.tool: %w", err)
	}
	width := min(max(c.Tools.StrokeWidth, drawing.MinStrokeWidth), drawing.MaxStrokeWidth)
	return drawing.Options{
		Width:      c.Canvas.Width,
		Height:     c.Canvas.Height,
		Background: bg,
		Initial:    drawing.ToolConfig{Tool: tool, Color: fg, Width: width},
	}, nil
}

// ParseColor accepts "#rgb", "#rrggbb" or an SVG 1.1 color name ("white", "tomato").
func ParseColor(s string) (vector.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return vector.Color{}, errors.New("empty color")
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return vector.Color{}, fmt.Errorf("bad hex color %q", s)
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return vector.Color{}, fmt.Errorf("bad hex color %q", s)
		}
		return vector.RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
	}
	if c, ok := colornames.Map[s]; ok {
		return vector.RGB(c.R, c.G, c.B), nil
	}
	return vector.Color{}, fmt.Errorf("unknown color %q", s)
}
