// internal/render/series.go
package render

import (
	"sort"

	"blasthits/internal/matrix"
)

// Series is one axis of a matrix summarized for plotting: entity names with
// their total hits and unique-partner counts, index-aligned.
type Series struct {
	Names    []string
	Hits     []int
	Partners []int
}

// QuerySeries summarizes the query axis (partners = genomes hit).
func QuerySeries(m *matrix.Matrix) Series {
	return Series{
		Names:    append([]string(nil), m.Queries...),
		Hits:     m.QueryHits(),
		Partners: m.QueryPartners(),
	}
}

// GenomeSeries summarizes the genome axis (partners = queries hitting it).
func GenomeSeries(m *matrix.Matrix) Series {
	return Series{
		Names:    append([]string(nil), m.Genomes...),
		Hits:     m.GenomeHits(),
		Partners: m.GenomePartners(),
	}
}

// Len returns the number of entities.
func (s Series) Len() int { return len(s.Names) }

// Sorted returns the series ordered by descending key (partner counts when
// byPartners, hit totals otherwise), ties broken by original order.
func (s Series) Sorted(byPartners bool) Series {
	key := s.Hits
	if byPartners {
		key = s.Partners
	}
	idx := make([]int, s.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return key[idx[a]] > key[idx[b]] })

	out := Series{
		Names:    make([]string, s.Len()),
		Hits:     make([]int, s.Len()),
		Partners: make([]int, s.Len()),
	}
	for i, j := range idx {
		out.Names[i] = s.Names[j]
		out.Hits[i] = s.Hits[j]
		out.Partners[i] = s.Partners[j]
	}
	return out
}

// Top truncates to the first n entities (0 = keep all).
func (s Series) Top(n int) Series {
	if n <= 0 || n >= s.Len() {
		return s
	}
	return Series{Names: s.Names[:n], Hits: s.Hits[:n], Partners: s.Partners[:n]}
}

// TotalHits sums the hit totals.
func (s Series) TotalHits() int {
	n := 0
	for _, v := range s.Hits {
		n += v
	}
	return n
}
