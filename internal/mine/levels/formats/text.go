package formats

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/lambda-mine/internal/mine"
)

// ParseText parses the contest text format: a rectangular block of map
// lines, a blank separator line, then metadata lines of the form
//
//	Growth 15
//	Razors 2
//	Water 1
//	Flooding 5
//	Waterproof 10
//	Trampoline A targets 1
//
// All metadata is optional. The level name doubles as its ID.
func ParseText(name string, data []byte) (*mine.Level, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	// The map block runs until the first blank line.
	var mapLines []string
	rest := len(lines)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			rest = i + 1
			break
		}
		mapLines = append(mapLines, line)
	}

	w, h, cells, err := parseMap(name, mapLines)
	if err != nil {
		return nil, err
	}

	l := &mine.Level{
		ID:     name,
		Name:   name,
		Width:  w,
		Height: h,
		Cells:  cells,
	}

	for i := rest; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if err := parseMetadata(l, line, i+1); err != nil {
			return nil, err
		}
	}

	if err := finishLevel(l); err != nil {
		return nil, err
	}
	return l, nil
}

// parseMetadata applies one metadata line to the level.
func parseMetadata(l *mine.Level, line string, lineNo int) error {
	fields := strings.Fields(line)

	intValue := func() (int, error) {
		if len(fields) != 2 {
			return 0, &ParseError{Level: l.Name, Line: lineNo, Reason: "expected a single numeric value: " + line}
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, &ParseError{Level: l.Name, Line: lineNo, Reason: "unparsable value: " + line}
		}
		return n, nil
	}

	var err error
	switch fields[0] {
	case "Growth":
		l.Growth, err = intValue()
	case "Razors":
		l.Razors, err = intValue()
	case "Water":
		l.Water, err = intValue()
	case "Flooding":
		l.Flooding, err = intValue()
	case "Waterproof":
		l.Waterproof, err = intValue()
	case "Trampoline":
		// Trampoline <id> targets <id>
		if len(fields) != 4 || fields[2] != "targets" || len(fields[1]) != 1 || len(fields[3]) != 1 {
			return &ParseError{Level: l.Name, Line: lineNo, Reason: "malformed trampoline line: " + line}
		}
		if l.Trampolines == nil {
			l.Trampolines = map[byte]byte{}
		}
		l.Trampolines[fields[1][0]] = fields[3][0]
	default:
		return &ParseError{Level: l.Name, Line: lineNo, Reason: "unknown metadata keyword " + strconv.Quote(fields[0])}
	}
	return err
}
