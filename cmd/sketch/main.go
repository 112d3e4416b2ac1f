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

// Command sketch replays a recorded pen session and writes the
// resulting ink as a PNG coverage mask.
//
// Usage:
//
//	sketch [-config settings.yaml] -session session.yaml -o out.png
//
// A session file lists pen and eraser events:
//
//	events:
//	  - begin: [10, 10]
//	  - drag: [40, 12]
//	  - end: true
//	  - erase: {at: [20, 10], r: 5}
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/points"
	"seehuhn.de/go/sketch/preview"
)

func main() {
	configFile := flag.String("config", "", "YAML settings file")
	sessionFile := flag.String("session", "", "YAML session file (required)")
	outFile := flag.String("o", "sketch.png", "output PNG file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "console log format (text, json)")
	logFile := flag.String("log-file", "", "additional rotated JSON log file")
	flag.Parse()

	if *sessionFile == "" {
		fmt.Fprintln(os.Stderr, "sketch: -session is required")
		flag.Usage()
		os.Exit(2)
	}

	settings, err := loadSettings(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sketch:", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		settings.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		settings.Logging.Format = *logFormat
	}
	if *logFile != "" {
		settings.Logging.File = *logFile
	}

	logger, closeLog := newLogger(settings.Logging)
	sketch.SetLogger(logger.With(slog.String("component", "geometry")))

	err = run(settings, *sessionFile, *outFile, logger)
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("sketch failed", slog.Any("err", err))
		os.Exit(1)
	}
}

// run replays the session and writes the image.
func run(settings *Settings, sessionFile, outFile string, log *slog.Logger) error {
	session, err := loadSession(sessionFile)
	if err != nil {
		return err
	}
	log.Debug("session loaded",
		slog.String("file", sessionFile),
		slog.Int("events", len(session.Events)))

	img, _, err := render(settings, session, log)
	if err != nil {
		return err
	}

	fd, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if err := img.WritePNG(fd); err != nil {
		fd.Close()
		return err
	}
	if err := fd.Close(); err != nil {
		return err
	}
	log.Info("image written", slog.String("file", outFile))
	return nil
}

// render replays the session onto a fresh canvas and returns the
// rendered image.
func render(settings *Settings, session *Session, log *slog.Logger) (*preview.Image, Summary, error) {
	var arena *points.Arena
	if settings.Arena.MaxBlocks > 0 {
		arena = &points.Arena{MaxBlocks: settings.Arena.MaxBlocks}
	}
	c := sketch.NewCanvas(settings.Config(), arena)

	out := settings.Output
	img := preview.NewImage(out.Width, out.Height, settings.View().Matrix(out.Width, out.Height))
	c.NewSink = func(*sketch.Stroke) sketch.Sink { return img }

	sum, err := replay(c, settings.Pen, session.Events, log)
	if err != nil {
		return nil, sum, err
	}

	st := c.Pool().Stats()
	log.Debug("block pool",
		slog.Int("carved", st.Carved),
		slog.Int("free", st.Free),
		slog.Int("slabs", st.Slabs))
	return img, sum, nil
}
