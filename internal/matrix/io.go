// internal/matrix/io.go
package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blasthits/internal/hits"
)

// CornerHeader is the first header cell of a matrix TSV.
const CornerHeader = "Query/Genome"

// Write emits the matrix as a TSV. With simplify=true row labels get the
// fixed query prefix stripped and column labels the fixed genome suffixes
// removed. Output is deterministic for a given matrix.
func (m *Matrix) Write(w io.Writer, simplify bool) error {
	cols := make([]string, 0, len(m.Genomes)+1)
	cols = append(cols, CornerHeader)
	for _, g := range m.Genomes {
		if simplify {
			g = hits.CleanGenome(g)
		}
		cols = append(cols, g)
	}
	if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
		return err
	}

	row := make([]string, 0, len(m.Genomes)+1)
	for i, q := range m.Queries {
		row = row[:0]
		if simplify {
			q = hits.SimplifyQuery(q)
		}
		row = append(row, q)
		for _, v := range m.Cells[i] {
			row = append(row, strconv.Itoa(v))
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// Read parses a matrix TSV written by Write (or any TSV whose first column is
// row labels and whose cells are integers). An input with only a header row
// yields an empty matrix.
func Read(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 1 {
		return nil, fmt.Errorf("matrix header is empty")
	}
	genomes := header[1:]

	m := New()
	for j, g := range genomes {
		m.gIndex[g] = j
	}
	m.Genomes = append(m.Genomes, genomes...)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(row) != len(genomes)+1 {
			return nil, fmt.Errorf("row %q: want %d cells, got %d", row[0], len(genomes), len(row)-1)
		}
		cells := make([]int, len(genomes))
		for j, s := range row[1:] {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("row %q: bad cell %q: %w", row[0], s, err)
			}
			cells[j] = v
		}
		m.qIndex[row[0]] = len(m.Queries)
		m.Queries = append(m.Queries, row[0])
		m.Cells = append(m.Cells, cells)
	}
	return m, nil
}
