package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lambda-mine/internal/mine"
)

// cellStyles maps cell kinds to lipgloss styles.
var cellStyles = map[mine.Kind]lipgloss.Style{
	mine.KindEmpty:      lipgloss.NewStyle(),
	mine.KindWall:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	mine.KindEarth:      lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	mine.KindRobot:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	mine.KindRock:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	mine.KindHoRock:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	mine.KindLambda:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	mine.KindLiftClosed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	mine.KindLiftOpen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	mine.KindTrampoline: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	mine.KindTarget:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	mine.KindBeard:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	mine.KindRazor:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// submergedStyle is laid over cells at or below the water row.
var submergedStyle = lipgloss.NewStyle().Background(lipgloss.Color("17"))

var (
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lossStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// RenderSnapshot draws the full game view for one snapshot: HUD, map
// (top row first), optional trampoline legend, and a verdict line once
// the game has ended.
func RenderSnapshot(s *mine.Snapshot, showLegend bool) string {
	var sb strings.Builder

	sb.WriteString(renderHUD(s))
	sb.WriteString("\n")

	legend := legendLines(s, showLegend)
	for i, row := range mapLines(s) {
		sb.WriteString(row)
		if i < len(legend) {
			sb.WriteString("   ")
			sb.WriteString(legend[i])
		}
		sb.WriteString("\n")
	}

	sb.WriteString(renderFooter(s))
	return sb.String()
}

// renderHUD formats the status line above the map.
func renderHUD(s *mine.Snapshot) string {
	hud := fmt.Sprintf(" %s — λ %d/%d  razors %d  moves %d",
		s.Level.Name, s.Lambdas, s.Level.Lambdas, s.Razors, s.Moves)
	if s.WaterRow > 0 || s.Level.Flooding > 0 {
		hud += fmt.Sprintf("  water %d  air %d", s.WaterRow, s.Air)
	}
	return hudStyle.Render(hud) + "\n" + dimStyle.Render(strings.Repeat("─", lipgloss.Width(hud)+2))
}

// mapLines renders the grid in display order (top row first), styling each
// cell by kind and shading flooded rows.
func mapLines(s *mine.Snapshot) []string {
	lines := make([]string, 0, s.Grid.H)
	for y := s.Grid.H; y >= 1; y-- {
		var row strings.Builder
		row.WriteString(" ")
		for x := 1; x <= s.Grid.W; x++ {
			c := s.Grid.At(mine.P(x, y))
			style, ok := cellStyles[c.Kind]
			if !ok {
				style = cellStyles[mine.KindEmpty]
			}
			if y <= s.WaterRow {
				style = style.Inherit(submergedStyle)
			}
			row.WriteString(style.Render(string(c.Rune())))
		}
		lines = append(lines, row.String())
	}
	return lines
}

// legendLines builds the trampoline legend shown beside the map.
func legendLines(s *mine.Snapshot, show bool) []string {
	if !show || len(s.Level.Trampolines) == 0 {
		return nil
	}

	ids := make([]byte, 0, len(s.Level.Trampolines))
	for from := range s.Level.Trampolines {
		ids = append(ids, from)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := []string{dimStyle.Render("trampolines:")}
	for _, from := range ids {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  %c → %c", from, s.Level.Trampolines[from])))
	}
	return lines
}

// renderFooter formats the verdict or help line below the map.
func renderFooter(s *mine.Snapshot) string {
	switch s.Verdict {
	case mine.Win:
		return winStyle.Render(fmt.Sprintf(" You escaped! λ %d, %d moves", s.Lambdas, s.Moves)) +
			dimStyle.Render("  ·  r restart · n next · q quit")
	case mine.LossCrushed:
		return lossStyle.Render(" Crushed by a rock.") +
			dimStyle.Render("  ·  r restart · n next · q quit")
	case mine.LossDrowned:
		return lossStyle.Render(" Drowned.") +
			dimStyle.Render("  ·  r restart · n next · q quit")
	case mine.Aborted:
		return neutralStyle.Render(fmt.Sprintf(" Aborted with λ %d.", s.Lambdas)) +
			dimStyle.Render("  ·  r restart · n next · q quit")
	default:
		return dimStyle.Render(" arrows/hjkl move · space wait · s shave · a abort · r restart · n skip · q quit")
	}
}
