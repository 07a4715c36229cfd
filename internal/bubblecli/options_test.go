// internal/bubblecli/options_test.go
package bubblecli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.Input != "hit_matrix.tsv" || o.Output != "bubble_plot.png" {
		t.Errorf("bad paths %+v", o)
	}
	if o.MinHits != 1 || o.MaxBubbles != 1000 {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestFlagsOK(t *testing.T) {
	o := mustParse(t, "--min-hits", "5", "--max-bubbles", "500", "--size", "25x20", "matrix.tsv")
	if o.MinHits != 5 || o.MaxBubbles != 500 || o.Input != "matrix.tsv" {
		t.Errorf("got %+v", o)
	}
	if !o.Size.IsSet() || o.Size.Width != 25 {
		t.Errorf("size not parsed: %+v", o.Size)
	}
}

func TestErrorZeroMinHits(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--min-hits", "0"}); err == nil {
		t.Fatalf("expected error for --min-hits below 1")
	}
}

func TestErrorNegativeMaxBubbles(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--max-bubbles", "-1"}); err == nil {
		t.Fatalf("expected error for negative --max-bubbles")
	}
}

func TestErrorBadDPI(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--dpi", "0"}); err == nil {
		t.Fatalf("expected error for non-positive --dpi")
	}
}
