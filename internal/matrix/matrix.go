// internal/matrix/matrix.go

// Package matrix builds and filters the query × genome hit-count matrix.
package matrix

import (
	"sort"

	"blasthits/internal/hits"
)

// Matrix is a dense query × genome table of summed hit counts. Row and column
// labels keep first-seen order, which is also the tie-break order for the
// top-N filters.
type Matrix struct {
	Queries []string
	Genomes []string
	Cells   [][]int // [query][genome]

	qIndex map[string]int
	gIndex map[string]int
}

// New returns an empty matrix.
func New() *Matrix {
	return &Matrix{qIndex: map[string]int{}, gIndex: map[string]int{}}
}

// Add accumulates n hits for the (query, genome) pair, growing the axes as
// needed.
func (m *Matrix) Add(query, genome string, n int) {
	qi, ok := m.qIndex[query]
	if !ok {
		qi = len(m.Queries)
		m.qIndex[query] = qi
		m.Queries = append(m.Queries, query)
		m.Cells = append(m.Cells, make([]int, len(m.Genomes)))
	}
	gi, ok := m.gIndex[genome]
	if !ok {
		gi = len(m.Genomes)
		m.gIndex[genome] = gi
		m.Genomes = append(m.Genomes, genome)
		for i := range m.Cells {
			m.Cells[i] = append(m.Cells[i], 0)
		}
	}
	m.Cells[qi][gi] += n
}

// Get returns the cell value, 0 for unknown labels.
func (m *Matrix) Get(query, genome string) int {
	qi, ok := m.qIndex[query]
	if !ok {
		return 0
	}
	gi, ok := m.gIndex[genome]
	if !ok {
		return 0
	}
	return m.Cells[qi][gi]
}

// Build aggregates flat-table records into a matrix, grouping by
// (query, subject) with summation. The sum of all cells equals the sum of
// Hits over the input rows.
func Build(recs []hits.Record) *Matrix {
	m := New()
	for _, r := range recs {
		m.Add(r.Query, r.Subject, r.Hits)
	}
	return m
}

// QueryHits returns per-row totals.
func (m *Matrix) QueryHits() []int {
	out := make([]int, len(m.Queries))
	for i, row := range m.Cells {
		for _, v := range row {
			out[i] += v
		}
	}
	return out
}

// QueryPartners returns per-row counts of nonzero cells (unique genomes hit).
func (m *Matrix) QueryPartners() []int {
	out := make([]int, len(m.Queries))
	for i, row := range m.Cells {
		for _, v := range row {
			if v > 0 {
				out[i]++
			}
		}
	}
	return out
}

// GenomeHits returns per-column totals.
func (m *Matrix) GenomeHits() []int {
	out := make([]int, len(m.Genomes))
	for _, row := range m.Cells {
		for j, v := range row {
			out[j] += v
		}
	}
	return out
}

// GenomePartners returns per-column counts of nonzero cells (unique queries).
func (m *Matrix) GenomePartners() []int {
	out := make([]int, len(m.Genomes))
	for _, row := range m.Cells {
		for j, v := range row {
			if v > 0 {
				out[j]++
			}
		}
	}
	return out
}

// Total returns the sum of all cells.
func (m *Matrix) Total() int {
	n := 0
	for _, row := range m.Cells {
		for _, v := range row {
			n += v
		}
	}
	return n
}

// NonZero returns the number of nonzero cells.
func (m *Matrix) NonZero() int {
	n := 0
	for _, row := range m.Cells {
		for _, v := range row {
			if v > 0 {
				n++
			}
		}
	}
	return n
}

// keepRows returns a new matrix containing the given row indices, in the
// order supplied.
func (m *Matrix) keepRows(idx []int) *Matrix {
	out := New()
	out.Genomes = append([]string(nil), m.Genomes...)
	for j, g := range out.Genomes {
		out.gIndex[g] = j
	}
	for _, qi := range idx {
		out.qIndex[m.Queries[qi]] = len(out.Queries)
		out.Queries = append(out.Queries, m.Queries[qi])
		out.Cells = append(out.Cells, append([]int(nil), m.Cells[qi]...))
	}
	return out
}

// keepCols returns a new matrix containing the given column indices.
func (m *Matrix) keepCols(idx []int) *Matrix {
	out := New()
	out.Queries = append([]string(nil), m.Queries...)
	for i, q := range out.Queries {
		out.qIndex[q] = i
	}
	for _, gi := range idx {
		out.gIndex[m.Genomes[gi]] = len(out.Genomes)
		out.Genomes = append(out.Genomes, m.Genomes[gi])
	}
	out.Cells = make([][]int, len(m.Cells))
	for i, row := range m.Cells {
		kept := make([]int, 0, len(idx))
		for _, gi := range idx {
			kept = append(kept, row[gi])
		}
		out.Cells[i] = kept
	}
	return out
}

// FilterMinHits drops rows whose total is below min. Totals are computed on
// the matrix as it stands, not recomputed iteratively.
func (m *Matrix) FilterMinHits(min int) *Matrix {
	if min <= 0 {
		return m
	}
	totals := m.QueryHits()
	var keep []int
	for i := range m.Queries {
		if totals[i] >= min {
			keep = append(keep, i)
		}
	}
	return m.keepRows(keep)
}

// topIndices returns the indices of the n largest totals, ties broken by
// original order, with the kept set returned in original order.
func topIndices(totals []int, n int) []int {
	idx := make([]int, len(totals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return totals[idx[a]] > totals[idx[b]] })
	if n < len(idx) {
		idx = idx[:n]
	}
	sort.Ints(idx)
	return idx
}

// TopQueries keeps only the n queries with the highest totals.
func (m *Matrix) TopQueries(n int) *Matrix {
	if n <= 0 || n >= len(m.Queries) {
		return m
	}
	return m.keepRows(topIndices(m.QueryHits(), n))
}

// TopGenomes keeps only the n genomes with the highest column totals.
func (m *Matrix) TopGenomes(n int) *Matrix {
	if n <= 0 || n >= len(m.Genomes) {
		return m
	}
	return m.keepCols(topIndices(m.GenomeHits(), n))
}
