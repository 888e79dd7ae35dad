package annotate

import (
	"github.com/dasnellings/svAnnotate/breakpoint"
	"github.com/dasnellings/svAnnotate/exons"
	"github.com/dasnellings/svAnnotate/genepred"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/gtf"
	"io"
)

// LoadIndex builds the exon index from a GTF file when gtfFile is set, otherwise
// from a genePred table. The exon policy applies to genePred input only.
func LoadIndex(genePredFile, gtfFile string, policy genepred.ExonPolicy) (*exons.Index, error) {
	if gtfFile != "" {
		b := exons.NewBuilder()
		b.AddGtf(gtf.Read(gtfFile))
		return b.Build(), nil
	}
	return genepred.BuildIndex(genePredFile, policy)
}

// Run annotates every record of the breakpoint file input and writes the report
// to output ("stdout" for standard out). When bedOutput is set, the exons found
// near each end are also written there as BED. The whole input is parsed before
// any line is written, so a malformed record produces no output.
func Run(input, output string, idx *exons.Index, opts Options, threads int, bedOutput string) (Summary, error) {
	var summary Summary
	records, err := breakpoint.Read(input)
	if err != nil {
		return summary, err
	}

	out := fileio.EasyCreate(output)
	var bedOut io.WriteCloser
	if bedOutput != "" {
		bedOut = fileio.EasyCreate(bedOutput)
	}

	results := GoAnnotate(breakpoint.GoSendToChan(records), idx, opts, threads)
	for res := range results {
		summary.Add(res)
		if err != nil {
			continue // drain
		}
		err = WriteResult(out, res, opts)
		if bedOut != nil {
			WriteNeighborBed(bedOut, res)
		}
	}

	if bedOut != nil {
		if closeErr := bedOut.Close(); err == nil {
			err = closeErr
		}
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return summary, err
}
