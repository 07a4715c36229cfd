// internal/hits/record.go
package hits

import "strings"

// Record is one BLAST hit extracted from a .pretty file: a query matched a
// subject genome. Hits is the number of matches the row accounts for (1 when
// freshly parsed; aggregation may sum rows later). The remaining fields carry
// the rest of the upstream hit block and are kept as raw strings.
type Record struct {
	Query   string
	Subject string
	Hits    int

	Evalue      string
	Description string
	ClusterSize string // the UniRef "n=" token
	Taxonomy    string // "Tax=" token
	TaxID       string // "TaxID=" token
	RepID       string // "RepID=" token
	Chromosome  string
	SECIS       string // UGA-SECIS distance
	FreeEnergy  string
}

// queryPrefix is the fixed UniRef accession prefix carried by query IDs.
const queryPrefix = "lcl|UniRef50_"

// SimplifyQuery strips the fixed accession prefix from a query ID for display.
func SimplifyQuery(name string) string {
	return strings.TrimPrefix(name, queryPrefix)
}

// CleanGenome strips the fixed genome-file suffixes from a subject name for
// display.
func CleanGenome(name string) string {
	if s := strings.TrimSuffix(name, ".mainGenome.fasta"); s != name {
		return s
	}
	return strings.TrimSuffix(name, ".fa")
}
