// internal/render/bubble_test.go
package render

import (
	"testing"

	"blasthits/internal/hits"
	"blasthits/internal/matrix"
)

func TestSelectCellsMinHits(t *testing.T) {
	m := matrix.Build([]hits.Record{
		{Query: "Q1", Subject: "G1", Hits: 5},
		{Query: "Q1", Subject: "G2", Hits: 1},
		{Query: "Q2", Subject: "G1", Hits: 3},
	})
	cells := SelectCells(m, 3, 0)
	if len(cells) != 2 {
		t.Fatalf("want 2 cells ≥ 3 hits, got %d", len(cells))
	}
	for _, c := range cells {
		if c.Count < 3 {
			t.Errorf("cell below threshold: %+v", c)
		}
	}
}

func TestSelectCellsCapKeepsHighest(t *testing.T) {
	m := matrix.Build([]hits.Record{
		{Query: "Q1", Subject: "G1", Hits: 5},
		{Query: "Q2", Subject: "G2", Hits: 10},
	})
	cells := SelectCells(m, 1, 1)
	if len(cells) != 1 {
		t.Fatalf("want exactly 1 bubble, got %d", len(cells))
	}
	if cells[0].Count != 10 {
		t.Fatalf("kept count %d, want 10", cells[0].Count)
	}
}

func TestSelectCellsSkipsZeros(t *testing.T) {
	m := matrix.Build([]hits.Record{
		{Query: "Q1", Subject: "G1", Hits: 2},
		{Query: "Q2", Subject: "G2", Hits: 4},
	})
	// The pivot created zero cells Q1/G2 and Q2/G1; min-hits 0 behaves as 1.
	cells := SelectCells(m, 0, 0)
	if len(cells) != 2 {
		t.Fatalf("want 2 nonzero cells, got %d", len(cells))
	}
}

func TestAutoBubbleSize(t *testing.T) {
	cases := []struct {
		queries, genomes int
		w, h             float64
	}{
		{10, 10, 20, 15},    // floors
		{200, 200, 50, 40},  // caps
		{100, 60, 30, 30},   // scaled
	}
	for _, tc := range cases {
		got := AutoBubbleSize(tc.queries, tc.genomes)
		if got.W != tc.w || got.H != tc.h {
			t.Errorf("AutoBubbleSize(%d, %d) = %+v, want %gx%g", tc.queries, tc.genomes, got, tc.w, tc.h)
		}
	}
}

func TestBubblePlotEmptyMatrix(t *testing.T) {
	m := matrix.New()
	p, err := BubblePlot(m, nil, nil, nil)
	if err != nil {
		t.Fatalf("empty bubble plot: %v", err)
	}
	if p == nil {
		t.Fatal("nil plot")
	}
}
