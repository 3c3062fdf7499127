// Package tui provides the Bubble Tea integration for the lambda mine
// game. The game is turn-based: one keypress drives exactly one engine
// tick, so there is no timer loop; the model only reacts to input.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lambda-mine/internal/mine"
	"github.com/vovakirdan/lambda-mine/internal/mine/levels"
	"github.com/vovakirdan/lambda-mine/internal/replay"
	"github.com/vovakirdan/lambda-mine/internal/storage"
)

// screen identifies which view the model is showing.
type screen int

const (
	screenPicker screen = iota
	screenGame
)

// Options configures a game session.
type Options struct {
	// StartIndex selects the initial level; -1 opens the picker.
	StartIndex int

	// ShowLegend toggles the trampoline legend beside the map.
	ShowLegend bool

	// Recorder, when non-nil, receives one frame per executed tick.
	Recorder *replay.Recorder

	// Width and Height are the initial terminal dimensions.
	Width, Height int
}

// Model is the Bubble Tea model for the mine game. It owns the level
// catalog, the current snapshot, and the result store.
type Model struct {
	entries []levels.Entry
	store   *storage.Store
	opts    Options
	mapper  *KeyMapper

	screen screen
	picker pickerModel

	index int // Current catalog index
	snap  *mine.Snapshot
	saved bool // Result stored for the current terminal verdict

	quitting bool
}

// NewModel creates a model over the given catalog.
func NewModel(entries []levels.Entry, store *storage.Store, opts Options) Model {
	m := Model{
		entries: entries,
		store:   store,
		opts:    opts,
		mapper:  NewKeyMapper(),
		picker:  newPickerModel(entries, store, opts.Width, opts.Height),
	}
	if opts.StartIndex >= 0 && opts.StartIndex < len(entries) {
		m.startLevel(opts.StartIndex)
	} else {
		m.screen = screenPicker
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// startLevel loads a fresh snapshot for the catalog entry at index.
func (m *Model) startLevel(index int) {
	m.index = index
	m.snap = mine.Initialize(m.entries[index].Level)
	m.saved = false
	m.screen = screenGame
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenPicker:
		selected, quit, cmd := m.picker.update(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		if selected >= 0 {
			m.startLevel(selected)
		}
		return m, cmd

	default:
		return m.updateGame(msg)
	}
}

// updateGame handles input while a level is on screen.
func (m Model) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	action, bound, isQuit := m.mapper.MapKey(key)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if !bound {
		return m, nil
	}

	// A terminal snapshot is never stepped again; restart and skip are
	// handled by the driver, everything else is ignored.
	if m.snap.Verdict.Terminal() {
		switch action {
		case mine.ActionRestart:
			m.startLevel(m.index)
		case mine.ActionSkip:
			m.startLevel((m.index + 1) % len(m.entries))
		}
		return m, nil
	}

	next, verdict := mine.Step(m.snap, action)
	m.snap = next
	m.recordFrame(action)

	switch verdict {
	case mine.Restarted:
		m.startLevel(m.index)
	case mine.Skipped:
		m.startLevel((m.index + 1) % len(m.entries))
	case mine.Win, mine.LossCrushed, mine.LossDrowned, mine.Aborted:
		m.saveResult()
	}

	return m, nil
}

// recordFrame appends the latest tick to the journal, if recording.
func (m *Model) recordFrame(a mine.Action) {
	if m.opts.Recorder == nil {
		return
	}
	//nolint:errcheck // Best-effort recording, game continues regardless
	m.opts.Recorder.Record(a, m.snap)
}

// saveResult stores the outcome of a finished game, once per game.
func (m *Model) saveResult() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(m.snap.Level.ID, storage.Result{
		Outcome: m.snap.Verdict.String(),
		Lambdas: m.snap.Lambdas,
		Moves:   m.snap.Moves,
		Route:   m.snap.Route(),
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen == screenPicker {
		return m.picker.view()
	}
	return RenderSnapshot(m.snap, m.opts.ShowLegend)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(entries []levels.Entry, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(entries, store, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
