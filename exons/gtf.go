package exons

import (
	"github.com/vertgenlab/gonomics/gtf"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"sort"
)

// AddGtf adds every transcript of the genes read by gtf.Read. Exons are numbered
// from 1 in ascending coordinate order, the same order a refGene row lists them,
// and are named by transcript ID (the refGene name column) or by gene name when
// the transcript has no ID. GTF starts are 1-based so they are shifted to 0-based.
// Genes are visited in sorted ID order so insertion order is reproducible.
func (b *Builder) AddGtf(genes map[string]*gtf.Gene) {
	var starts, ends []int
	var name string
	var tx []*gtf.Exon

	ids := maps.Keys(genes)
	slices.Sort(ids)
	for _, id := range ids {
		g := genes[id]
		for _, t := range g.Transcripts {
			name = t.TranscriptID
			if name == "" {
				name = g.GeneName
			}

			tx = append(tx[:0], t.Exons...)
			sort.SliceStable(tx, func(i, j int) bool { return tx[i].Start < tx[j].Start })

			starts, ends = starts[:0], ends[:0]
			for _, e := range tx {
				starts = append(starts, e.Start-1)
				ends = append(ends, e.End)
			}
			b.AddTranscript(t.Chr, name, starts, ends)
		}
	}
}
