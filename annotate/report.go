package annotate

import (
	"fmt"
	"github.com/dasnellings/svAnnotate/exons"
	"github.com/vertgenlab/gonomics/bed"
	"io"
	"strings"
)

// Detail is the human-readable description of res. Each end whose chromosome is
// absent from the gene model adds a "no gene connection" note naming it.
func Detail(res Result) string {
	s := new(strings.Builder)
	s.WriteString(res.Classification.String())
	if res.MissingChrom1 {
		fmt.Fprintf(s, " (no gene connection: chromosome %s not annotated)", res.Record.End1.Chrom)
	}
	if res.MissingChrom2 && (!res.MissingChrom1 || res.Record.End2.Chrom != res.Record.End1.Chrom) {
		fmt.Fprintf(s, " (no gene connection: chromosome %s not annotated)", res.Record.End2.Chrom)
	}
	return s.String()
}

// FormatLine renders res as a tab-delimited report line without the trailing newline:
// [name] label detail original-columns...
func FormatLine(res Result, opts Options) string {
	s := new(strings.Builder)
	if opts.WithName {
		s.WriteString(opts.Name)
		s.WriteByte('\t')
	}
	s.WriteString(res.Classification.Kind.Label())
	s.WriteByte('\t')
	s.WriteString(Detail(res))
	s.WriteByte('\t')
	s.WriteString(strings.Join(res.Record.Fields, "\t"))
	return s.String()
}

// WriteResult writes the report line for res to out.
func WriteResult(out io.Writer, res Result, opts Options) error {
	_, err := fmt.Fprintln(out, FormatLine(res, opts))
	return err
}

// ExonToBed converts an exon to a BED4 entry named gene:exonNumber.
func ExonToBed(e exons.Exon) bed.Bed {
	return bed.Bed{
		Chrom:             e.Chrom,
		ChromStart:        e.Start,
		ChromEnd:          e.End,
		Name:              fmt.Sprintf("%s:%d", e.Gene, e.Number),
		FieldsInitialized: 4,
	}
}

// WriteNeighborBed writes every exon found near either end of res as BED.
func WriteNeighborBed(out io.Writer, res Result) {
	for _, e := range res.Classification.Neighbors1 {
		bed.WriteBed(out, ExonToBed(e))
	}
	for _, e := range res.Classification.Neighbors2 {
		bed.WriteBed(out, ExonToBed(e))
	}
}

// WriteIndexBed writes every exon of idx as BED in index order.
func WriteIndexBed(out io.Writer, idx *exons.Index) {
	for _, chr := range idx.Chroms() {
		for _, e := range idx.Exons(chr) {
			bed.WriteBed(out, ExonToBed(e))
		}
	}
}
