// Package formats provides pluggable level file format parsers.
// A malformed level yields no descriptor at all: parsers validate the whole
// file before returning.
package formats

import (
	"fmt"

	"github.com/vovakirdan/lambda-mine/internal/mine"
)

// ParseError describes a malformed level file. It carries the level name
// and the offending character or line so callers can report the failure
// without re-reading the file.
type ParseError struct {
	Level  string
	Line   int  // 1-based line number within the file section, 0 if unknown
	Char   rune // Offending map character, 0 if the error is not character-level
	Reason string
}

func (e *ParseError) Error() string {
	switch {
	case e.Char != 0:
		return fmt.Sprintf("formats: level %q: line %d: unknown map character %q", e.Level, e.Line, e.Char)
	case e.Line > 0:
		return fmt.Sprintf("formats: level %q: line %d: %s", e.Level, e.Line, e.Reason)
	default:
		return fmt.Sprintf("formats: level %q: %s", e.Level, e.Reason)
	}
}

// FormatExtensions returns the supported file extensions.
func FormatExtensions() []string {
	return []string{".map", ".yaml", ".yml"}
}

// parseMap converts authored map lines into grid dimensions and cells.
// The authored line order is reversed so the last text line becomes row 1;
// short lines are padded with empty cells to the widest line.
func parseMap(levelName string, lines []string) (width, height int, cells []mine.Cell, err error) {
	if len(lines) == 0 {
		return 0, 0, nil, &ParseError{Level: levelName, Reason: "empty map"}
	}

	height = len(lines)
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if width == 0 {
		return 0, 0, nil, &ParseError{Level: levelName, Reason: "empty map"}
	}

	cells = make([]mine.Cell, width*height)
	for i, line := range lines {
		y := height - i // Last authored line is row 1
		for x, r := range []rune(line) {
			c, ok := mine.ParseRune(r)
			if !ok {
				return 0, 0, nil, &ParseError{Level: levelName, Line: i + 1, Char: r}
			}
			cells[(y-1)*width+x] = c
		}
	}

	return width, height, cells, nil
}

// finishLevel runs whole-level validation and derived-field computation
// shared by all formats.
func finishLevel(l *mine.Level) error {
	g := &mine.Grid{W: l.Width, H: l.Height, Cells: l.Cells}

	if n := g.Count(mine.KindRobot); n != 1 {
		return &ParseError{Level: l.Name, Reason: fmt.Sprintf("map must contain exactly one robot, found %d", n)}
	}
	if n := g.Count(mine.KindLiftClosed) + g.Count(mine.KindLiftOpen); n != 1 {
		return &ParseError{Level: l.Name, Reason: fmt.Sprintf("map must contain exactly one lift, found %d", n)}
	}

	l.Lambdas = g.Count(mine.KindLambda)

	if l.Growth <= 0 {
		l.Growth = mine.DefaultGrowth
	}
	if l.Waterproof <= 0 {
		l.Waterproof = mine.DefaultWaterproof
	}
	if l.Trampolines == nil {
		l.Trampolines = map[byte]byte{}
	}
	return nil
}
