// internal/hits/table_test.go
package hits

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	recs := []Record{
		{Query: "lcl|UniRef50_Q1", Subject: "G1.fa", Hits: 1},
		{Query: "lcl|UniRef50_Q1", Subject: "G1.fa", Hits: 1}, // duplicates preserved
		{Query: "lcl|UniRef50_Q2", Subject: "G2.fa", Hits: 3},
	}
	var buf bytes.Buffer
	if err := WriteTable(&buf, recs, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), Header+"\n") {
		t.Fatalf("missing header: %q", buf.String())
	}

	got, err := ReadTable(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(recs) {
		t.Fatalf("want %d rows, got %d", len(recs), len(got))
	}
	for i := range recs {
		if got[i].Query != recs[i].Query || got[i].Subject != recs[i].Subject || got[i].Hits != recs[i].Hits {
			t.Errorf("row %d = %+v, want %+v", i, got[i], recs[i])
		}
	}
}

func TestFullColumnsRoundTrip(t *testing.T) {
	recs := []Record{{
		Query: "lcl|UniRef50_Q1", Subject: "G1.fa", Hits: 1,
		Evalue: "1e-30", Description: "some protein", ClusterSize: "n=18",
		Taxonomy: "Tax=Eukaryota", TaxID: "TaxID=2759", RepID: "RepID=X",
		Chromosome: "chr1", SECIS: "42", FreeEnergy: "-12.3",
	}}
	var buf bytes.Buffer
	if err := WriteTable(&buf, recs, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	// The reader finds Query/Subject/Hits by header name in the wide layout.
	got, err := ReadTable(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || got[0].Query != "lcl|UniRef50_Q1" || got[0].Hits != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestReadSkipsMalformedCounts(t *testing.T) {
	in := Header + "\nQ1\tG1\t5\nQ2\tG1\tnot-a-number\nQ3\tG1\t-1\nQ4\tG2\t2\n"
	got, err := ReadTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 well-formed rows, got %d", len(got))
	}
	if got[0].Query != "Q1" || got[1].Query != "Q4" {
		t.Errorf("kept rows %v", got)
	}
}

func TestReadHeaderOnly(t *testing.T) {
	got, err := ReadTable(strings.NewReader(Header + "\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty table, got %d rows", len(got))
	}
}

func TestReadMissingColumn(t *testing.T) {
	if _, err := ReadTable(strings.NewReader("Query\tHits\nQ1\t5\n")); err == nil {
		t.Fatal("expected error for missing Subject column")
	}
}

func TestReadEmptyInput(t *testing.T) {
	if _, err := ReadTable(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}
