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
	"context"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions controls the logger of the command.
type LogOptions struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // optional path, rotated, always JSON
}

// newLogger builds the logger described by opts.  The returned function
// closes the log file, if any.
func newLogger(opts LogOptions) (*slog.Logger, func() error) {
	lvl := parseLevel(opts.Level)
	hOpts := &slog.HandlerOptions{Level: lvl}

	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(os.Stderr, hOpts)
	} else {
		console = slog.NewTextHandler(os.Stderr, hOpts)
	}

	file := strings.TrimSpace(opts.File)
	if file == "" {
		return slog.New(console), func() error { return nil }
	}

	w := &lj.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
	h := fanout{console, slog.NewJSONHandler(w, hOpts)}
	return slog.New(h), w.Close
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout passes every record to all of its handlers.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make(fanout, len(f))
	for i, h := range f {
		res[i] = h.WithAttrs(attrs)
	}
	return res
}

func (f fanout) WithGroup(name string) slog.Handler {
	res := make(fanout, len(f))
	for i, h := range f {
		res[i] = h.WithGroup(name)
	}
	return res
}
