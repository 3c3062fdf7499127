package mine

import (
	"reflect"
	"testing"
)

func TestParseRoute(t *testing.T) {
	got, err := ParseRoute("LRUDWSA")
	if err != nil {
		t.Fatalf("ParseRoute() failed: %v", err)
	}
	want := []Action{ActionLeft, ActionRight, ActionUp, ActionDown, ActionWait, ActionShave, ActionAbort}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRoute() = %v, want %v", got, want)
	}
}

func TestParseRouteIgnoresWhitespace(t *testing.T) {
	got, err := ParseRoute("LL RR\nUD\t")
	if err != nil {
		t.Fatalf("ParseRoute() failed: %v", err)
	}
	if len(got) != 6 {
		t.Errorf("ParseRoute() returned %d actions, want 6", len(got))
	}
}

func TestParseRouteRejectsInvalidCharacter(t *testing.T) {
	if _, err := ParseRoute("LRx"); err == nil {
		t.Error("ParseRoute() accepted an invalid character")
	}
}

func TestRouteStringRoundTrip(t *testing.T) {
	const route = "LDRRUWSA"
	actions, err := ParseRoute(route)
	if err != nil {
		t.Fatalf("ParseRoute() failed: %v", err)
	}
	if got := RouteString(actions); got != route {
		t.Errorf("RouteString() = %q, want %q", got, route)
	}
}

func TestScanOrder(t *testing.T) {
	in := []Pos{P(3, 2), P(1, 1), P(2, 2), P(5, 1)}
	got := Scan(in)
	want := []Pos{P(1, 1), P(5, 1), P(2, 2), P(3, 2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(in, []Pos{P(3, 2), P(1, 1), P(2, 2), P(5, 1)}) {
		t.Error("Scan() modified its input")
	}
}

func TestVerdictClassification(t *testing.T) {
	if Running.Terminal() {
		t.Error("Running classified as terminal")
	}
	for _, v := range []Verdict{Win, LossCrushed, LossDrowned, Aborted, Restarted, Skipped} {
		if !v.Terminal() {
			t.Errorf("%v not classified as terminal", v)
		}
	}
	for _, v := range []Verdict{LossCrushed, LossDrowned} {
		if !v.Loss() {
			t.Errorf("%v not classified as a loss", v)
		}
	}
	if Win.Loss() || Aborted.Loss() {
		t.Error("Win or Aborted classified as a loss")
	}
}
