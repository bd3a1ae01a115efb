// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Highlighting modes available
const (
	Plain Highlight = iota
	Colors
	JSON
)

var (
	errUnknownHighlight = errors.New("unknown highlight")

	defaultEncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
)

// Highlight mode to apply to displayed logs
type Highlight int

// ToHighlight chooses a highlighting mode. AUTO picks Colors only when [fd]
// is a terminal.
func ToHighlight(h string, fd uintptr) (Highlight, error) {
	switch strings.ToUpper(h) {
	case "PLAIN":
		return Plain, nil
	case "COLORS":
		return Colors, nil
	case "JSON":
		return JSON, nil
	case "AUTO":
		if !term.IsTerminal(int(fd)) {
			return Plain, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownHighlight, h)
	}
}

func (h Highlight) String() string {
	switch h {
	case Plain:
		return "PLAIN"
	case Colors:
		return "COLORS"
	case JSON:
		return "JSON"
	default:
		return "UNKNOWN"
	}
}

func (h Highlight) MarshalJSON() ([]byte, error) {
	switch h {
	case Plain, Colors, JSON:
		return []byte(`"` + h.String() + `"`), nil
	default:
		return nil, errUnknownHighlight
	}
}

// ConsoleEncoder returns the encoder used for displayed logs.
func (h Highlight) ConsoleEncoder() zapcore.Encoder {
	config := defaultEncoderConfig
	config.EncodeTime = timeEncoder
	switch h {
	case Colors:
		config.EncodeLevel = colorLevelEncoder
	case JSON:
		config.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncodeLevel = jsonLevelEncoder
		return zapcore.NewJSONEncoder(config)
	default:
		config.EncodeLevel = levelEncoder
	}
	return zapcore.NewConsoleEncoder(config)
}

// FileEncoder returns the encoder used for rotated log files.
func (h Highlight) FileEncoder() zapcore.Encoder {
	config := defaultEncoderConfig
	if h == JSON {
		config.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncodeLevel = jsonLevelEncoder
		return zapcore.NewJSONEncoder(config)
	}
	config.EncodeTime = timeEncoder
	config.EncodeLevel = levelEncoder
	return zapcore.NewConsoleEncoder(config)
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("01-02|15:04:05.000") + "]")
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).AlignedString())
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	lvl := Level(l)
	enc.AppendString(lvl.Color().Wrap(lvl.AlignedString()))
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}
