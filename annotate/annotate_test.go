package annotate

import (
	"bytes"
	"errors"
	"github.com/dasnellings/svAnnotate/breakpoint"
	"github.com/dasnellings/svAnnotate/exons"
	"github.com/dasnellings/svAnnotate/genepred"
	"github.com/dasnellings/svAnnotate/link"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const coordsFile = "testdata/results_Socrates_paired_sample1_long_sc_l25_q5_m5_i95.txt.coords"

var expectedLines = []string{
	"sample1\texon_exon_junction\texon exon junction: [(geneA, 2, 3)]\tchr1\t400\t+\tchr1\t502\t-\t5\t6",
	"sample1\tcross_gene_link\tbreakpoint links two different genes: [geneB:1[1000-1100]] VS [geneC:1[50-60]]\tchr1\t1100\t+\tchr2\t50\t-\t3\t4",
	"sample1\tpartial_gene_link\tpartial gene link into [geneA:1[100-200]]\tchr1\t200\t+\tchr1\t5000\t-\t1\t1",
	"sample1\tno_gene_connection\tno gene connection for line\tchr1\t9000\t+\tchr1\t9500\t-\t2\t2",
	"sample1\tpartial_gene_link\tpartial gene link into [geneA:2[300-400]] (no gene connection: chromosome chrUn not annotated)\tchrUn\t100\t+\tchr1\t300\t-\t7\t7",
}

func testIndex(t *testing.T) *exons.Index {
	idx, err := LoadIndex("testdata/refGene.txt", "", genepred.LegacyDrop)
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.WithName = true
	opts.Name = DeriveName(coordsFile, DefaultNamePrefix, DefaultNameSuffix)
	return opts
}

func TestLoadIndexGtf(t *testing.T) {
	idx, err := LoadIndex("", "testdata/genes.gtf", genepred.LegacyDrop)
	if err != nil {
		t.Fatal(err)
	}
	want := []exons.Exon{
		{Chrom: "chr1", Start: 100, End: 200, Gene: "T1", Number: 1},
		{Chrom: "chr1", Start: 300, End: 400, Gene: "T1", Number: 2},
	}
	got := idx.Exons("chr1")
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}

	r, _ := breakpoint.ParseLine("chr1\t200\t+\tchr1\t300\t-")
	res := Record(idx, r, DefaultOptions())
	if res.Classification.String() != "exon exon junction: [(T1, 1, 2)]" {
		t.Error("problem annotating against a gtf model", res.Classification.String())
	}
}

func TestDeriveName(t *testing.T) {
	if got := DeriveName(coordsFile, DefaultNamePrefix, DefaultNameSuffix); got != "sample1" {
		t.Error("problem deriving name", got)
	}
	if got := DeriveName("/data/other.txt", DefaultNamePrefix, DefaultNameSuffix); got != "other.txt" {
		t.Error("names without the convention should be kept as the base name", got)
	}
}

func TestRecord(t *testing.T) {
	idx := testIndex(t)
	r, err := breakpoint.ParseLine("chr1\t400\t+\tchr1\t502\t-")
	if err != nil {
		t.Fatal(err)
	}
	res := Record(idx, r, DefaultOptions())
	if res.Classification.Kind != link.ExonJunction || res.MissingChrom1 || res.MissingChrom2 {
		t.Error("problem annotating junction", res)
	}

	r, _ = breakpoint.ParseLine("chrUn\t400\t+\tchrUn\t502\t-")
	res = Record(idx, r, DefaultOptions())
	if res.Classification.Kind != link.Unlinked || !res.MissingChrom1 || !res.MissingChrom2 {
		t.Error("unknown chromosomes should give an unlinked record", res)
	}
	if Detail(res) != "no gene connection for line (no gene connection: chromosome chrUn not annotated)" {
		t.Error("problem noting missing chromosome", Detail(res))
	}
}

func TestDetailMissingChromosome(t *testing.T) {
	idx := testIndex(t)
	r, _ := breakpoint.ParseLine("chrUn\t100\t+\tchr1\t300\t-")
	res := Record(idx, r, DefaultOptions())
	if res.Classification.Kind != link.PartialLink {
		t.Error("a missing chromosome should not hide the link on the other end", res.Classification.Kind)
	}
	if d := Detail(res); !strings.Contains(d, "no gene connection: chromosome chrUn not annotated") {
		t.Error("missing chromosome must be noted as no gene connection", d)
	}

	r, _ = breakpoint.ParseLine("chrUn\t100\t+\tchrM\t300\t-")
	res = Record(idx, r, DefaultOptions())
	if d := Detail(res); strings.Count(d, "no gene connection:") != 2 || !strings.Contains(d, "chrM") {
		t.Error("each distinct missing chromosome should be noted", d)
	}
}

func TestFormatLine(t *testing.T) {
	idx := testIndex(t)
	records, err := breakpoint.Read(coordsFile)
	if err != nil {
		t.Fatal(err)
	}
	opts := testOptions()
	for i := range records {
		if got := FormatLine(Record(idx, records[i], opts), opts); got != expectedLines[i] {
			t.Errorf("line %d:\nexpected: %s\nfound:    %s", i+1, expectedLines[i], got)
		}
	}

	opts.WithName = false
	if got := FormatLine(Record(idx, records[0], opts), opts); got != strings.TrimPrefix(expectedLines[0], "sample1\t") {
		t.Error("problem omitting name column", got)
	}
}

func TestGoAnnotateOrder(t *testing.T) {
	b := exons.NewBuilder()
	var records []breakpoint.Record
	for i := 0; i < 500; i++ {
		b.Add(exons.Exon{Chrom: "chr1", Start: i * 100, End: i*100 + 50, Gene: "g", Number: i + 1})
		records = append(records, breakpoint.Record{
			End1: breakpoint.End{Chrom: "chr1", Pos: i*100 + 50, Dir: exons.Plus},
			End2: breakpoint.End{Chrom: "chr1", Pos: i * 100, Dir: exons.Minus},
			Line: i + 1,
		})
	}
	idx := b.Build()

	for _, threads := range []int{0, 1, 4, 16} {
		var n int
		for res := range GoAnnotate(breakpoint.GoSendToChan(records), idx, DefaultOptions(), threads) {
			if res.Record.Line != n+1 {
				t.Fatalf("threads %d: expected record %d, got %d", threads, n+1, res.Record.Line)
			}
			j := res.Classification.Junctions
			if len(j) != 1 || j[0].Exon1 != n+1 || j[0].Exon2 != n+1 {
				t.Fatalf("threads %d: problem with record %d: %v", threads, n+1, j)
			}
			n++
		}
		if n != len(records) {
			t.Errorf("threads %d: expected %d results, got %d", threads, len(records), n)
		}
	}
}

func TestRun(t *testing.T) {
	idx := testIndex(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "out.txt")
	bedOutput := filepath.Join(dir, "neighbors.bed")

	summary, err := Run(coordsFile, output, idx, testOptions(), 3, bedOutput)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(expectedLines, "\n") + "\n"; string(data) != got {
		t.Errorf("expected:\n%s\nfound:\n%s", got, data)
	}

	if summary.Records != 5 || summary.Count(link.ExonJunction) != 1 || summary.Count(link.CrossGeneLink) != 1 ||
		summary.Count(link.PartialLink) != 2 || summary.Count(link.Unlinked) != 1 || summary.MissingChroms != 1 {
		t.Error("problem with summary", summary.String())
	}

	data, err = os.ReadFile(bedOutput)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 6 || lines[0] != "chr1\t300\t400\tgeneA:2" {
		t.Error("problem with neighbor bed output", lines)
	}
}

func TestRunMalformed(t *testing.T) {
	idx := testIndex(t)
	output := filepath.Join(t.TempDir(), "out.txt")
	_, err := Run("testdata/bad.coords", output, idx, DefaultOptions(), 1, "")
	var pe *breakpoint.ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Fatal("expected ParseError on line 2, got", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("no output should be created for malformed input")
	}
}

func TestWriteIndexBed(t *testing.T) {
	idx := testIndex(t)
	var buf bytes.Buffer
	WriteIndexBed(&buf, idx)
	want := "chr1\t100\t200\tgeneA:1\n" +
		"chr1\t300\t400\tgeneA:2\n" +
		"chr1\t500\t600\tgeneA:3\n" +
		"chr1\t1000\t1100\tgeneB:1\n" +
		"chr2\t50\t60\tgeneC:1\n"
	if buf.String() != want {
		t.Errorf("expected:\n%s\nfound:\n%s", want, buf.String())
	}
}

func TestRangeSearchOption(t *testing.T) {
	b := exons.NewBuilder()
	b.Add(exons.Exon{Chrom: "chr1", Start: 10, End: 205, Gene: "long", Number: 4})
	b.Add(exons.Exon{Chrom: "chr1", Start: 150, End: 160, Gene: "short", Number: 1})
	b.Add(exons.Exon{Chrom: "chr1", Start: 190, End: 198, Gene: "other", Number: 1})
	b.Add(exons.Exon{Chrom: "chr1", Start: 5000, End: 5100, Gene: "long", Number: 5})
	idx := b.Build()

	r, _ := breakpoint.ParseLine("chr1\t200\t+\tchr1\t5000\t-")
	opts := DefaultOptions()
	if res := Record(idx, r, opts); res.Classification.Kind != link.CrossGeneLink {
		t.Error("local scan should miss the long exon", res.Classification)
	}
	opts.Search = exons.RangeQuery
	res := Record(idx, r, opts)
	if res.Classification.Kind != link.ExonJunction || res.Classification.Junctions[0] != (link.Junction{Gene: "long", Exon1: 4, Exon2: 5}) {
		t.Error("range query should find the long exon", res.Classification)
	}
}
