// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// alignedStringLen is the width of a level name in console and file output.
const alignedStringLen = 5

type Level zapcore.Level

// A core enabled at level L writes every entry at a level >= L. Every level
// is negative so that none of them reaches zap's DPanic, Panic or Fatal
// handling, which would abort the process.
const (
	Verbo Level = iota - 9
	Debug
	Trace
	Info
	Warn
	Error
	Fatal
	Off
)

type levelInfo struct {
	name  string
	color Color
}

// levelInfos is indexed by a level's offset from Verbo.
var levelInfos = [...]levelInfo{
	{name: "VERBO", color: LightGreen},
	{name: "DEBUG", color: LightBlue},
	{name: "TRACE", color: LightPurple},
	// Info keeps the terminal's own foreground so it reads on light and dark
	// backgrounds alike.
	{name: "INFO", color: Reset},
	{name: "WARN", color: Yellow},
	{name: "ERROR", color: Orange},
	{name: "FATAL", color: Red},
	{name: "OFF", color: Reset},
}

func (l Level) info() (levelInfo, bool) {
	i := int(l) - int(Verbo)
	if i < 0 || i >= len(levelInfos) {
		return levelInfo{name: "UNKNO", color: Reset}, false
	}
	return levelInfos[i], true
}

// ToLevel parses a level name, ignoring case.
func ToLevel(l string) (Level, error) {
	for i, info := range levelInfos {
		if strings.EqualFold(l, info.name) {
			return Verbo + Level(i), nil
		}
	}
	return Off, fmt.Errorf("unknown log level: %q", l)
}

func (l Level) Color() Color {
	info, _ := l.info()
	return info.color
}

func (l Level) String() string {
	info, _ := l.info()
	return info.name
}

// AlignedString pads or truncates the level name to [alignedStringLen]
// characters.
func (l Level) AlignedString() string {
	return fmt.Sprintf("%-*.*s", alignedStringLen, alignedStringLen, l.String())
}

func (l Level) MarshalJSON() ([]byte, error) {
	if _, ok := l.info(); !ok {
		return nil, fmt.Errorf("unknown log level: %d", l)
	}
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	level, err := ToLevel(name)
	if err != nil {
		return err
	}
	*l = level
	return nil
}
