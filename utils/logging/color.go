// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// Color is an ANSI escape sequence.
type Color string

// Colors used to highlight levels
const (
	Red         Color = "\033[0;31m"
	Orange      Color = "\033[0;33m"
	Yellow      Color = "\033[1;33m"
	LightBlue   Color = "\033[1;34m"
	LightPurple Color = "\033[1;35m"
	LightGreen  Color = "\033[1;32m"

	Reset Color = "\033[0;0m"
)

func (lc Color) Wrap(text string) string {
	return string(lc) + text + string(Reset)
}
