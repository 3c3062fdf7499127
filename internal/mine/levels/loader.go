// Package levels provides level loading for the lambda mine game.
// This package depends on mine but mine does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/lambda-mine/internal/mine"
	"github.com/vovakirdan/lambda-mine/internal/mine/levels/formats"
)

// Entry is one level in the catalog.
type Entry struct {
	Level    *mine.Level
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a level loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files under the root.
// Files that fail to parse are skipped so one bad file cannot hide the
// rest of the catalog. Returns entries sorted by level ID.
func (l *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		entries = append(entries, Entry{Level: lvl, FilePath: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Level.ID < entries[j].Level.ID
	})
	return entries, nil
}

// LoadFile loads a single level file, routing by extension.
func (l *Loader) LoadFile(path string) (*mine.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".map":
		return formats.ParseText(name, data)
	case ".yaml", ".yml":
		return formats.ParseYAML(name, data)
	default:
		return nil, fmt.Errorf("levels: unsupported extension %s", filepath.Ext(path))
	}
}

// LoadByID loads a specific level by its ID.
func (l *Loader) LoadByID(id string) (*mine.Level, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Level.ID == id {
			return e.Level, nil
		}
	}
	return nil, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Level.ID
	}
	return ids, nil
}

// isSupportedExtension checks if the extension has a registered parser.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
