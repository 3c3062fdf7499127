package formats

import (
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lambda-mine/internal/mine"
)

// yamlLevel is the YAML structure for a level file. The map block is the
// same character alphabet as the text format, one string per authored line.
type yamlLevel struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Map         []string          `yaml:"map"`
	Growth      int               `yaml:"growth,omitempty"`
	Razors      int               `yaml:"razors,omitempty"`
	Water       int               `yaml:"water,omitempty"`
	Flooding    int               `yaml:"flooding,omitempty"`
	Waterproof  int               `yaml:"waterproof,omitempty"`
	Trampolines map[string]string `yaml:"trampolines,omitempty"`
}

// ParseYAML parses a YAML level file. The fallback name is used when the
// document carries no id of its own (typically the file's base name).
func ParseYAML(fallbackName string, data []byte) (*mine.Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, &ParseError{Level: fallbackName, Reason: "yaml unmarshal: " + err.Error()}
	}

	id := yl.ID
	if id == "" {
		id = fallbackName
	}
	name := yl.Name
	if name == "" {
		name = id
	}

	w, h, cells, err := parseMap(name, yl.Map)
	if err != nil {
		return nil, err
	}

	l := &mine.Level{
		ID:         id,
		Name:       name,
		Width:      w,
		Height:     h,
		Cells:      cells,
		Growth:     yl.Growth,
		Razors:     yl.Razors,
		Water:      yl.Water,
		Flooding:   yl.Flooding,
		Waterproof: yl.Waterproof,
	}

	for from, to := range yl.Trampolines {
		if len(from) != 1 || len(to) != 1 {
			return nil, &ParseError{Level: name, Reason: "malformed trampoline mapping " + from + " -> " + to}
		}
		if l.Trampolines == nil {
			l.Trampolines = map[byte]byte{}
		}
		l.Trampolines[from[0]] = to[0]
	}

	if err := finishLevel(l); err != nil {
		return nil, err
	}
	return l, nil
}
