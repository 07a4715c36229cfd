// internal/clibase/clibase_test.go
package clibase

import (
	"testing"

	"blasthits/internal/render"
)

func TestSizeFlagSet(t *testing.T) {
	var s SizeFlag
	if err := s.Set("15x8"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !s.IsSet() || s.Width != 15 || s.Height != 8 {
		t.Fatalf("got %+v", s)
	}
	if s.String() != "15x8" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestSizeFlagUppercaseX(t *testing.T) {
	var s SizeFlag
	if err := s.Set("12X6.5"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if s.Width != 12 || s.Height != 6.5 {
		t.Fatalf("got %+v", s)
	}
}

func TestSizeFlagErrors(t *testing.T) {
	for _, in := range []string{"", "15", "x8", "15x", "axb", "-3x4", "0x5", "15x8abc", "1.5ex2"} {
		var s SizeFlag
		if err := s.Set(in); err == nil {
			t.Errorf("Set(%q) accepted", in)
		}
	}
}

func TestSizeFlagOr(t *testing.T) {
	var s SizeFlag
	def := render.Size{W: 20, H: 15}
	if got := s.Or(def); got != def {
		t.Fatalf("unset Or = %+v", got)
	}
	if err := s.Set("5x4"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.Or(def); got.W != 5 || got.H != 4 {
		t.Fatalf("set Or = %+v", got)
	}
}

func TestValidatePlot(t *testing.T) {
	ok := PlotCommon{Output: "x.png", DPI: 300}
	if err := ValidatePlot(&ok); err != nil {
		t.Fatalf("valid: %v", err)
	}
	noOut := PlotCommon{DPI: 300}
	if err := ValidatePlot(&noOut); err == nil {
		t.Error("empty output accepted")
	}
	badDPI := PlotCommon{Output: "x.png"}
	if err := ValidatePlot(&badDPI); err == nil {
		t.Error("zero dpi accepted")
	}
}
