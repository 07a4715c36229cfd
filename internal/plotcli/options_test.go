// internal/plotcli/options_test.go
package plotcli

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
	if o.Input != "hit_matrix.tsv" || o.Output != "hit_plot.png" {
		t.Errorf("bad paths %+v", o)
	}
	if o.Axis != AxisQuery || o.Metric != MetricHits || o.Type != TypeBar || o.Top != 0 {
		t.Errorf("bad defaults %+v", o)
	}
	if o.DPI != 300 || o.Size.IsSet() {
		t.Errorf("bad plot defaults %+v", o.PlotCommon)
	}
}

func TestGenomeAxisHorizontal(t *testing.T) {
	o := mustParse(t, "--axis", "genome", "--type", "horizontal", "--top", "15", "matrix.tsv")
	if o.Axis != AxisGenome || o.Type != TypeHorizontal || o.Top != 15 || o.Input != "matrix.tsv" {
		t.Errorf("got %+v", o)
	}
}

func TestSizeFlag(t *testing.T) {
	o := mustParse(t, "--size", "15x10")
	if !o.Size.IsSet() || o.Size.Width != 15 || o.Size.Height != 10 {
		t.Errorf("got %+v", o.Size)
	}
}

func TestErrorBadAxis(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--axis", "both"}); err == nil {
		t.Fatalf("expected error for invalid axis")
	}
}

func TestErrorBadMetric(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--metric", "mean"}); err == nil {
		t.Fatalf("expected error for invalid metric")
	}
}

func TestErrorBadType(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--type", "pie"}); err == nil {
		t.Fatalf("expected error for invalid type")
	}
}

func TestErrorBadSize(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--size", "15"}); err == nil {
		t.Fatalf("expected error for size without x separator")
	}
}

func TestErrorNegativeTop(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--top", "-1"}); err == nil {
		t.Fatalf("expected error for negative --top")
	}
}
