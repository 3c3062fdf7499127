package formats

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/lambda-mine/internal/mine"
)

const simpleMap = `#####
#R \#
#. L#
#####
`

func TestParseTextSimpleLevel(t *testing.T) {
	l, err := ParseText("simple", []byte(simpleMap))
	if err != nil {
		t.Fatalf("ParseText() failed: %v", err)
	}

	if l.ID != "simple" || l.Name != "simple" {
		t.Errorf("ID/Name = %q/%q, want simple/simple", l.ID, l.Name)
	}
	if l.Width != 5 || l.Height != 4 {
		t.Errorf("Size = %dx%d, want 5x4", l.Width, l.Height)
	}
	if l.Lambdas != 1 {
		t.Errorf("Lambdas = %d, want 1", l.Lambdas)
	}
	if l.Growth != mine.DefaultGrowth {
		t.Errorf("Growth = %d, want default %d", l.Growth, mine.DefaultGrowth)
	}
	if l.Waterproof != mine.DefaultWaterproof {
		t.Errorf("Waterproof = %d, want default %d", l.Waterproof, mine.DefaultWaterproof)
	}
}

func TestParseTextReversesAuthoredLines(t *testing.T) {
	l, err := ParseText("simple", []byte(simpleMap))
	if err != nil {
		t.Fatalf("ParseText() failed: %v", err)
	}
	g := l.Grid()

	// The last authored line is row 1; the robot sits on authored line 2,
	// which is row 3 counted from the bottom.
	if got := g.At(mine.P(2, 3)).Kind; got != mine.KindRobot {
		t.Errorf("Cell (2,3) = %v, want robot", got)
	}
	if got := g.At(mine.P(2, 2)).Kind; got != mine.KindEarth {
		t.Errorf("Cell (2,2) = %v, want earth", got)
	}
}

func TestParseTextPadsShortLines(t *testing.T) {
	l, err := ParseText("ragged", []byte("####\n#R\\#\n#L\n####\n"))
	if err != nil {
		t.Fatalf("ParseText() failed: %v", err)
	}
	if l.Width != 4 {
		t.Fatalf("Width = %d, want 4", l.Width)
	}
	g := l.Grid()
	if got := g.At(mine.P(4, 2)).Kind; got != mine.KindEmpty {
		t.Errorf("Padded cell (4,2) = %v, want empty", got)
	}
}

func TestParseTextMetadata(t *testing.T) {
	data := simpleMap + `
Growth 15
Razors 2
Water 1
Flooding 5
Waterproof 7
Trampoline A targets 1
`
	l, err := ParseText("meta", []byte(data))
	if err != nil {
		t.Fatalf("ParseText() failed: %v", err)
	}

	if l.Growth != 15 || l.Razors != 2 || l.Water != 1 || l.Flooding != 5 || l.Waterproof != 7 {
		t.Errorf("Metadata = growth %d razors %d water %d flooding %d waterproof %d",
			l.Growth, l.Razors, l.Water, l.Flooding, l.Waterproof)
	}
	if got := l.Trampolines['A']; got != '1' {
		t.Errorf("Trampolines[A] = %q, want '1'", got)
	}
}

func TestParseTextUnknownCharacter(t *testing.T) {
	_, err := ParseText("bad", []byte("####\n#Rx#\n#L\\#\n####\n"))
	if err == nil {
		t.Fatal("ParseText() accepted an unknown map character")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Error type = %T, want *ParseError", err)
	}
	if pe.Level != "bad" || pe.Line != 2 || pe.Char != 'x' {
		t.Errorf("ParseError = %+v, want level bad, line 2, char x", pe)
	}
	if !strings.Contains(pe.Error(), `'x'`) {
		t.Errorf("Error() = %q, want the offending character quoted", pe.Error())
	}
}

func TestParseTextUnknownKeyword(t *testing.T) {
	_, err := ParseText("bad", []byte(simpleMap+"\nBogus 3\n"))
	if err == nil {
		t.Fatal("ParseText() accepted an unknown metadata keyword")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Error type = %T, want *ParseError", err)
	}
	if !strings.Contains(pe.Reason, "Bogus") {
		t.Errorf("Reason = %q, want the keyword named", pe.Reason)
	}
}

func TestParseTextRequiresExactlyOneRobot(t *testing.T) {
	_, err := ParseText("bad", []byte("####\n#RR#\n#L\\#\n####\n"))
	if err == nil {
		t.Error("ParseText() accepted a map with two robots")
	}

	_, err = ParseText("bad", []byte("####\n#..#\n#L\\#\n####\n"))
	if err == nil {
		t.Error("ParseText() accepted a map with no robot")
	}
}

func TestParseTextRequiresExactlyOneLift(t *testing.T) {
	_, err := ParseText("bad", []byte("####\n#R\\#\n#LL#\n####\n"))
	if err == nil {
		t.Error("ParseText() accepted a map with two lifts")
	}

	// An authored open lift counts as the lift.
	l, err := ParseText("open", []byte("####\n#R\\#\n#O.#\n####\n"))
	if err != nil {
		t.Fatalf("ParseText() rejected an authored open lift: %v", err)
	}
	if got := l.Grid().At(mine.P(2, 2)).Kind; got != mine.KindLiftOpen {
		t.Errorf("Cell (2,2) = %v, want open lift", got)
	}
}

func TestParseTextEmptyMap(t *testing.T) {
	_, err := ParseText("empty", []byte("\n"))
	if err == nil {
		t.Error("ParseText() accepted an empty map")
	}
}
