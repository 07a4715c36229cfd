// internal/hits/table.go
package hits

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Header is the canonical flat-table header row. Keep this as the single
// source of truth; the matrix builder locates columns by these names.
const Header = "Query\tSubject\tHits"

// FullHeader is the extended header emitted with --full.
const FullHeader = Header + "\tBlastx evalue\tProtein Description\tCount\tTaxonomy\tTax ID\tRep ID\tChromosome\tUGA-SECIS\tFree Energy"

// WriteTable writes records as a flat TSV. With full=false only the
// Query/Subject/Hits triple is emitted.
func WriteTable(w io.Writer, recs []Record, full bool) error {
	header := Header
	if full {
		header = FullHeader
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, r := range recs {
		var err error
		if full {
			_, err = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				r.Query, r.Subject, r.Hits,
				r.Evalue, r.Description, r.ClusterSize,
				r.Taxonomy, r.TaxID, r.RepID,
				r.Chromosome, r.SECIS, r.FreeEnergy)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%s\t%d\n", r.Query, r.Subject, r.Hits)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadTable reads a flat TSV back into records. Columns are located by header
// name so both the 3-column and --full layouts round-trip. Rows with an
// unparseable hit count are skipped, best-effort; a missing required column is
// an error.
func ReadTable(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("flat table is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	qi, ok := col["Query"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "Query")
	}
	si, ok := col["Subject"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "Subject")
	}
	hi, ok := col["Hits"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "Hits")
	}

	var recs []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if qi >= len(row) || si >= len(row) || hi >= len(row) {
			continue
		}
		n, err := strconv.Atoi(row[hi])
		if err != nil || n < 0 {
			continue // malformed count, skip
		}
		recs = append(recs, Record{Query: row[qi], Subject: row[si], Hits: n})
	}
	return recs, nil
}
