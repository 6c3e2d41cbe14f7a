// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx selects the user logging level and installs the
// default slog logger.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level for user-facing logging.
// It defaults to Info, Debug with the debug build tag, and
// Warn with the release build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the logging level for the given debug,
// verbose, and quiet flags. Debug wins over verbose, and verbose
// over quiet; with no flags set the level is Warn.
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default slog logger to one writing
// to stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// NewHandler returns a text handler writing to w at the given level.
// Level labels are colored when w is a terminal with color support.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(ColorLevel(out, lvl))
			return a
		},
	})
}

// ColorLevel returns the level label styled for the given output.
func ColorLevel(out *termenv.Output, lvl slog.Level) string {
	st := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		st = st.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		st = st.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		st = st.Foreground(termenv.ANSICyan)
	default:
		st = st.Foreground(termenv.ANSIBrightBlack)
	}
	return st.String()
}
