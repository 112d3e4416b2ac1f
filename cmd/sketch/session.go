// seehuhn.de/go/sketch - incremental stroke geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/points"
	"seehuhn.de/go/sketch/preview"
)

// Settings is the contents of the configuration file.
type Settings struct {
	Pen      PenSettings      `yaml:"pen"`
	Geometry GeometrySettings `yaml:"geometry"`
	Arena    ArenaSettings    `yaml:"arena"`
	Output   OutputSettings   `yaml:"output"`
	Logging  LogOptions       `yaml:"logging"`
}

// PenSettings is the pen used for strokes which do not override it.
type PenSettings struct {
	Width float64 `yaml:"width"`
	Color string  `yaml:"color"` // #rrggbb or #rrggbbaa
}

// GeometrySettings holds the fields of [sketch.Config].
type GeometrySettings struct {
	MiterLimit     float64 `yaml:"miter_limit"`
	TangentEpsilon float64 `yaml:"tangent_epsilon"`
	GrowthFactor   float64 `yaml:"growth_factor"`
	DiscScale      float64 `yaml:"disc_scale"`
	MinTravel      float64 `yaml:"min_travel"`
}

// ArenaSettings bounds the memory for stroke points.
type ArenaSettings struct {
	MaxBlocks int `yaml:"max_blocks"` // 0 means unbounded
}

// OutputSettings describes the rendered image.
type OutputSettings struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	View   ViewSettings `yaml:"view"`
}

// ViewSettings selects the visible part of the world, see [preview.View].
type ViewSettings struct {
	Center   Point   `yaml:"center"`
	Width    float64 `yaml:"width"`
	Rotation float64 `yaml:"rotation"` // degrees
}

// Point is a world position written as [x, y].
type Point [2]float64

func (p Point) vec() vec.Vec2 {
	return vec.Vec2{X: p[0], Y: p[1]}
}

// DefaultSettings returns the settings used for keys missing from the
// configuration file.
func DefaultSettings() Settings {
	cfg := sketch.DefaultConfig()
	return Settings{
		Pen: PenSettings{Width: 4, Color: "#000000"},
		Geometry: GeometrySettings{
			MiterLimit:     cfg.MiterLimit,
			TangentEpsilon: cfg.TangentEpsilon,
			GrowthFactor:   cfg.GrowthFactor,
			DiscScale:      cfg.DiscScale,
			MinTravel:      cfg.MinTravel,
		},
		Arena: ArenaSettings{MaxBlocks: points.DefaultMaxBlocks},
		Output: OutputSettings{
			Width:  512,
			Height: 512,
			View:   ViewSettings{Center: Point{256, 256}, Width: 512},
		},
		Logging: LogOptions{Level: "info", Format: "text"},
	}
}

// Config returns the geometry parameters.
func (s *Settings) Config() sketch.Config {
	return sketch.Config{
		MiterLimit:     s.Geometry.MiterLimit,
		TangentEpsilon: s.Geometry.TangentEpsilon,
		GrowthFactor:   s.Geometry.GrowthFactor,
		DiscScale:      s.Geometry.DiscScale,
		MinTravel:      s.Geometry.MinTravel,
	}
}

// View returns the visible part of the world.
func (s *Settings) View() preview.View {
	v := s.Output.View
	return preview.View{
		Center:   v.Center.vec(),
		Width:    v.Width,
		Rotation: v.Rotation * math.Pi / 180,
	}
}

func (s *Settings) validate() error {
	if s.Output.Width <= 0 || s.Output.Height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", s.Output.Width, s.Output.Height)
	}
	if !(s.Pen.Width > 0) {
		return fmt.Errorf("invalid pen width %g", s.Pen.Width)
	}
	if _, err := parseColor(s.Pen.Color); err != nil {
		return err
	}
	if s.Arena.MaxBlocks < 0 {
		return fmt.Errorf("invalid arena size %d", s.Arena.MaxBlocks)
	}
	return nil
}

// Event is one step of a recorded session.  Exactly one of the fields
// Begin, Drag, End and Erase must be set, see [Event.check].
type Event struct {
	Begin *Point  `yaml:"begin,omitempty"`
	Drag  *Point  `yaml:"drag,omitempty"`
	End   bool    `yaml:"end,omitempty"`
	Erase *Eraser `yaml:"erase,omitempty"`

	// Width and Color override the pen for the stroke started by Begin.
	Width float64 `yaml:"width,omitempty"`
	Color string  `yaml:"color,omitempty"`
}

// check reports malformed events.
func (ev *Event) check() error {
	n := 0
	for _, set := range []bool{ev.Begin != nil, ev.Drag != nil, ev.End, ev.Erase != nil} {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return errors.New("empty event")
	case n > 1:
		return errors.New("event sets more than one of begin, drag, end, erase")
	case ev.Begin == nil && (ev.Width != 0 || ev.Color != ""):
		return errors.New("pen override outside begin")
	case ev.Width < 0 || math.IsNaN(ev.Width):
		return fmt.Errorf("invalid pen width %g", ev.Width)
	case ev.Erase != nil && !(ev.Erase.R >= 0):
		return fmt.Errorf("invalid eraser radius %g", ev.Erase.R)
	}
	if ev.Color != "" {
		if _, err := parseColor(ev.Color); err != nil {
			return err
		}
	}
	return nil
}

// Eraser is a circular eraser position.
type Eraser struct {
	At Point   `yaml:"at"`
	R  float64 `yaml:"r"`
}

// Session is the contents of a session file.
type Session struct {
	Events []Event `yaml:"events"`
}

// decodeYAML reads r into v, rejecting unknown keys.  An empty document
// leaves v unchanged.
func decodeYAML(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// loadSettings reads the configuration file at path on top of the
// defaults.  An empty path selects the defaults.
func loadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path != "" {
		fd, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		if err := decodeYAML(fd, &s); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// loadSession reads a session file.
func loadSession(path string) (*Session, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	s := &Session{}
	if err := decodeYAML(fd, s); err != nil {
		return nil, fmt.Errorf("session %s: %w", path, err)
	}
	return s, nil
}

// parseColor parses #rrggbb or #rrggbbaa.
func parseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	col := color.NRGBA{A: 255}
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &col.R, &col.G, &col.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &col.R, &col.G, &col.B, &col.A)
	default:
		err = errors.New("wrong length")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return col, nil
}

// Summary describes the outcome of a replay.
type Summary struct {
	Events  int // events processed
	Failed  int // events rejected by the canvas and skipped
	Strokes int // strokes left on the canvas
	Points  int // points in those strokes
	Erased  int // strokes removed by the eraser
}

// replay feeds the events to the canvas.  A malformed event stops the
// replay with an error.  Events the canvas rejects, for example when the
// point arena is exhausted, are logged and skipped; the stroke keeps its
// previous state.
func replay(c *sketch.Canvas, pen PenSettings, events []Event, log *slog.Logger) (Summary, error) {
	var sum Summary
	for i, ev := range events {
		if err := ev.check(); err != nil {
			return sum, fmt.Errorf("event %d: %w", i, err)
		}
		if err := apply(c, pen, ev, &sum); err != nil {
			log.Warn("event skipped",
				slog.Int("event", i),
				slog.Any("err", err))
			sum.Failed++
		}
		sum.Events++
	}
	c.End()

	sum.Strokes = len(c.Strokes())
	for _, s := range c.Strokes() {
		sum.Points += s.Len()
	}
	log.Info("replay done",
		slog.Int("events", sum.Events),
		slog.Int("failed", sum.Failed),
		slog.Int("strokes", sum.Strokes),
		slog.Int("points", sum.Points),
		slog.Int("erased", sum.Erased))
	return sum, nil
}

func apply(c *sketch.Canvas, pen PenSettings, ev Event, sum *Summary) error {
	switch {
	case ev.Begin != nil:
		width := pen.Width
		if ev.Width > 0 {
			width = ev.Width
		}
		colStr := pen.Color
		if ev.Color != "" {
			colStr = ev.Color
		}
		col, err := parseColor(colStr)
		if err != nil {
			return err
		}
		_, err = c.Begin(ev.Begin.vec(), col, width)
		return err
	case ev.Drag != nil:
		return c.Drag(ev.Drag.vec())
	case ev.End:
		c.End()
		return nil
	case ev.Erase != nil:
		sum.Erased += c.Erase(sketch.Circle{Center: ev.Erase.At.vec(), R: ev.Erase.R})
		return nil
	default:
		return errors.New("empty event")
	}
}
