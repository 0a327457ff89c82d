/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"paintbrush/internal/config"
	"paintbrush/internal/crash"
	"paintbrush/internal/drawing"
	"paintbrush/internal/interact"
	applog "paintbrush/internal/log"
	"paintbrush/internal/script"
	"paintbrush/internal/ui"
	"paintbrush/internal/vector"
	"paintbrush/internal/version"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Paint Brush — interactive drawing surface")
	fmt.Fprintf(w, "Version: %s\n", version.String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  paintbrush version|-v|--version        Show version")
	fmt.Fprintln(w, "  paintbrush replay <script.yaml>        Replay an event script and print the render list")
	fmt.Fprintln(w, "  paintbrush config [init]               Print the effective config, or write the defaults")
	fmt.Fprintln(w, "  paintbrush ui                          Launch desktop UI (build with -tags fyne for full UI)")
}

// session is filled in as soon as a drawing exists so crash reports can summarize it.
var session = &crash.Info{}

func main() {
	defer crash.Recover(session)
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	cfg, cfgErr := config.Load()
	applog.Init(cfg.LogOptions())
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Error("load config", slog.Any("err", cfgErr))
		fmt.Fprintln(stdout, "Error:", cfgErr)
		return 1
	}
	l.Debug("start", slog.Int("args", len(args)))

	if len(args) == 0 {
		usage(stdout)
		return 0
	}
	switch args[0] {
	case "version", "--version", "-v":
		fmt.Fprintln(stdout, "Paint Brush")
		fmt.Fprintln(stdout, version.String())
		return 0
	case "replay":
		if len(args) < 2 {
			fmt.Fprintln(stdout, "replay requires <script.yaml>")
			usage(stdout)
			return 2
		}
		if err := replay(ctx, cfg, args[1], stdout); err != nil {
			l.Error("replay failed", slog.String("script", args[1]), slog.Any("err", err))
			fmt.Fprintln(stdout, "Error:", err)
			if errors.Is(err, script.ErrInvalidScript) {
				return 2
			}
			return 1
		}
		return 0
	case "config":
		if len(args) >= 2 && args[1] == "init" {
			path, _ := config.ConfigPath()
			if err := config.Save(config.Defaults()); err != nil {
				fmt.Fprintln(stdout, "Error:", err)
				return 1
			}
			fmt.Fprintln(stdout, "Wrote default config to", path)
			return 0
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(stdout, "Error:", err)
			return 1
		}
		_, _ = stdout.Write(out)
		return 0
	case "ui":
		if err := ui.Run(cfg); err != nil {
			fmt.Fprintln(stdout, "Error:", err)
			return 1
		}
		return 0
	}
	usage(stdout)
	return 2
}

func replay(ctx context.Context, cfg config.AppConfig, path string, out io.Writer) error {
	ctx = applog.ContextWith(ctx, slog.String("script", path))
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	base, err := cfg.DrawingOptions()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	opts, err := s.Options(base)
	if err != nil {
		return err
	}
	model := drawing.New(opts)
	ctl := interact.New(model)
	session.Width, session.Height = model.Size()
	session.Stats = ctl.Stats

	if err := script.Replay(ctx, ctl, s); err != nil {
		return err
	}
	items := ctl.RenderList()
	strokes, prims := ctl.Stats()
	w, h := model.Size()
	fmt.Fprintf(out, "canvas %dx%d background %s\n", w, h, model.Background().Hex())
	fmt.Fprintf(out, "%d strokes, %d primitives, phase %s\n", strokes, prims, model.Phase())
	for i, it := range items {
		fmt.Fprintln(out, formatItem(i, it))
	}
	return nil
}

func formatItem(i int, it drawing.RenderItem) string {
	p := it.Primitive
	g := p.Geometry
	var geom string
	if g.Kind == vector.KindLine {
		geom = fmt.Sprintf("(%g,%g)-(%g,%g)", g.P1.X, g.P1.Y, g.P2.X, g.P2.Y)
	} else {
		geom = fmt.Sprintf("x=%g y=%g w=%g h=%g", g.Rect.X, g.Rect.Y, g.Rect.W, g.Rect.H)
	}
	var flags []string
	if p.Fills() {
		flags = append(flags, "filled")
	}
	if p.Dashed {
		flags = append(flags, "dashed")
	}
	if it.Preview {
		flags = append(flags, "preview")
	}
	line := fmt.Sprintf("%4d %-9s %s width=%-2d %s", i, g.Kind, p.Color.Hex(), p.Width, geom)
	if len(flags) > 0 {
		line += " [" + strings.Join(flags, ",") + "]"
	}
	return line
}
