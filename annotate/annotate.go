// Package annotate searches the exon index around both ends of every breakpoint
// record, classifies the pair and writes the report.
package annotate

import (
	"github.com/dasnellings/svAnnotate/breakpoint"
	"github.com/dasnellings/svAnnotate/exons"
	"github.com/dasnellings/svAnnotate/link"
)

// Result is the annotation of a single breakpoint record.
type Result struct {
	Record         breakpoint.Record
	Classification link.Classification
	MissingChrom1  bool // chromosome of End1 has no entry in the index
	MissingChrom2  bool
}

// Record annotates one breakpoint record against idx.
func Record(idx *exons.Index, r breakpoint.Record, opts Options) Result {
	n1 := idx.FindNeighbors(r.End1.Chrom, r.End1.Pos, r.End1.Dir, opts.Margin, opts.Search)
	n2 := idx.FindNeighbors(r.End2.Chrom, r.End2.Pos, r.End2.Dir, opts.Margin, opts.Search)
	return Result{
		Record:         r,
		Classification: link.Classify(n1, n2),
		MissingChrom1:  !idx.Has(r.End1.Chrom),
		MissingChrom2:  !idx.Has(r.End2.Chrom),
	}
}

type job struct {
	r   breakpoint.Record
	ans chan<- Result
}

// GoAnnotate annotates records with the given number of threads. Results are
// delivered in the order records were received regardless of thread count.
func GoAnnotate(records <-chan breakpoint.Record, idx *exons.Index, opts Options, threads int) <-chan Result {
	if threads < 1 {
		threads = 1
	}
	out := make(chan Result, 1000)
	pending := make(chan chan Result, 1000)
	jobs := make(chan job, 1000)

	for i := 0; i < threads; i++ {
		go spawnThread(jobs, idx, opts)
	}

	// queue one result slot per record in input order
	go func() {
		for r := range records {
			ans := make(chan Result, 1)
			pending <- ans
			jobs <- job{r: r, ans: ans}
		}
		close(jobs)
		close(pending)
	}()

	go func() {
		for ans := range pending {
			out <- <-ans
		}
		close(out)
	}()

	return out
}

func spawnThread(jobs <-chan job, idx *exons.Index, opts Options) {
	for j := range jobs {
		j.ans <- Record(idx, j.r, opts)
	}
}
