// internal/pretty/parser.go

// Package pretty parses the ".pretty" text convention emitted by the upstream
// selenoprotein BLAST pipeline. The format is line-oriented: a marker line
// containing "newSP" opens a hit block, and labelled lines inside the block
// carry the fields of one hit. The parser is the only place that knows this
// convention; everything downstream works on hits.Record values.
package pretty

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/shenwei356/xopen"

	"blasthits/internal/hits"
)

var (
	blockMarker = regexp.MustCompile(`_\|\*\|.*newSP.*\|\*\|_`)
	secisRe     = regexp.MustCompile(`UGA-SECIS:\s*(\d+)`)
	energyRe    = regexp.MustCompile(`Free Energy\s*=\s*(-?[\d.]+)`)
)

// ParseReader scans one .pretty stream and returns the hits it contains.
// Blocks missing an evalue, query ID, or target are skipped; text before the
// first block marker is ignored. A stream with no markers yields no records
// and no error.
func ParseReader(r io.Reader) ([]hits.Record, error) {
	var (
		recs    []hits.Record
		cur     hits.Record
		inBlock bool
	)
	flush := func() {
		if inBlock && cur.Evalue != "" && cur.Query != "" && cur.Subject != "" {
			cur.Hits = 1
			recs = append(recs, cur)
		}
		cur = hits.Record{}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if blockMarker.MatchString(line) {
			flush()
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Blastx evalue:"):
			cur.Evalue = value(line)
		case strings.HasPrefix(line, "Query name:"):
			parseQueryName(value(line), &cur)
		case strings.HasPrefix(line, "Target:"):
			cur.Subject = filepath.Base(value(line))
		case strings.HasPrefix(line, "Chromosome:"):
			cur.Chromosome = value(line)
		default:
			if m := secisRe.FindStringSubmatch(line); m != nil {
				cur.SECIS = m[1]
			} else if m := energyRe.FindStringSubmatch(line); m != nil {
				cur.FreeEnergy = m[1]
			}
		}
	}
	if err := sc.Err(); err != nil {
		return recs, fmt.Errorf("scan: %w", err)
	}
	flush()
	return recs, nil
}

// value returns the trimmed text after the first colon of a labelled line.
func value(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest)
}

// parseQueryName splits the "Query name:" payload into its components. The
// first token is the query ID; "n=", "Tax=", "TaxID=" and "RepID=" tokens are
// positional markers and the protein description is the words between the ID
// and "n=" (or everything after the ID when no "n=" is present).
func parseQueryName(name string, rec *hits.Record) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return
	}
	rec.Query = parts[0]

	nIdx := -1
	for i, p := range parts {
		switch {
		case strings.HasPrefix(p, "n="):
			nIdx = i
			rec.ClusterSize = p
		case strings.HasPrefix(p, "Tax="):
			rec.Taxonomy = p
		case strings.HasPrefix(p, "TaxID="):
			rec.TaxID = p
		case strings.HasPrefix(p, "RepID="):
			rec.RepID = p
		}
	}
	if nIdx > 0 {
		rec.Description = strings.Join(parts[1:nIdx], " ")
	} else if len(parts) > 1 {
		rec.Description = strings.Join(parts[1:], " ")
	}
}

// ParseFile parses one .pretty file. Gzip-compressed input is handled
// transparently.
func ParseFile(path string) ([]hits.Record, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()
	return ParseReader(fh)
}

// List returns the sorted .pretty/.pretty.gz paths under dir.
func List(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("data folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data folder %s is not a directory", dir)
	}
	plain, err := filepath.Glob(filepath.Join(dir, "*.pretty"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	gz, err := filepath.Glob(filepath.Join(dir, "*.pretty.gz"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	files := append(plain, gz...)
	sort.Strings(files)
	return files, nil
}
